// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/escalator/pkg/config"
	"github.com/gonewx/escalator/pkg/game"
	"github.com/gonewx/escalator/pkg/scenes"
	"github.com/gonewx/escalator/pkg/systems"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Simulation 模拟配置，为 nil 时从嵌入的 data/escalator.yaml 加载
	Simulation *config.SimulationConfig
	// Width, Height 初始窗口尺寸，<= 0 时使用默认值
	Width, Height int
	// AutoStart 启动后直接开始推进，不等待 "Start Mission"
	AutoStart bool
	// Seed 彩纸随机源种子
	Seed int64
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	session      *game.Session
	verbose      bool

	windowWidth, windowHeight int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// cfg.Simulation 为 nil 时需要先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sim := cfg.Simulation
	if sim == nil {
		var err error
		sim, err = config.LoadEmbeddedSimulationConfig()
		if err != nil {
			return nil, fmt.Errorf("模拟配置加载失败: %w", err)
		}
		log.Printf("[Config] loaded %s", config.SimulationConfigPath)
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = config.GameWindowWidth, config.GameWindowHeight
	}

	session := game.NewSession(sim, systems.Viewport{Width: float64(width), Height: float64(height)}, cfg.Seed)
	if cfg.AutoStart {
		session.Start()
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewEscalatorScene(session))

	log.Printf("[App] %dx%d, %d TPS, seed=%d", width, height, sim.TicksPerSecond(), cfg.Seed)

	return &App{
		sceneManager: sceneManager,
		session:      session,
		verbose:      cfg.Verbose,
		windowWidth:  width,
		windowHeight: height,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（频率由 TicksPerSecond 决定）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.windowWidth, a.windowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.windowWidth, a.windowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
//
// 逻辑尺寸等于窗口尺寸：扶梯几何按视口比例计算，窗口缩放时场景随之重新布局。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.windowWidth, a.windowHeight
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Session 返回当前会话
func (a *App) Session() *game.Session {
	return a.session
}

// TicksPerSecond 返回配置的 tick 频率
func (a *App) TicksPerSecond() int {
	return a.session.Config().TicksPerSecond()
}

// WindowSize 返回初始窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.windowWidth, a.windowHeight
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
