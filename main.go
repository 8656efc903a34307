package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/escalator/pkg/app"
	"github.com/gonewx/escalator/pkg/config"
	"github.com/gonewx/escalator/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "覆盖嵌入配置的 YAML 文件路径")
	width      = flag.Int("width", config.GameWindowWidth, "初始窗口宽度")
	height     = flag.Int("height", config.GameWindowHeight, "初始窗口高度")
	autoStart  = flag.Bool("autostart", false, "启动后直接开始，不等待 Start Mission")
	seed       = flag.Int64("seed", 0, "彩纸随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	var sim *config.SimulationConfig
	if *configPath != "" {
		cfg, err := config.LoadSimulationConfig(*configPath)
		if err != nil {
			log.Fatalf("配置加载失败: %v", err)
		}
		sim = cfg
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Simulation: sim,
		Width:      *width,
		Height:     *height,
		AutoStart:  *autoStart,
		Seed:       s,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(gameApp.TicksPerSecond())

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
