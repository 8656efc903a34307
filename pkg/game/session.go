package game

import (
	"log"
	"math/rand"

	"github.com/gonewx/escalator/pkg/components"
	"github.com/gonewx/escalator/pkg/config"
	"github.com/gonewx/escalator/pkg/systems"
)

// Session 一局扶梯模拟的可变状态
//
// Session 是整个程序唯一的可变状态单元：前端（ebiten 场景、终端界面、
// 截图工具）把按键和按钮操作交给它，按固定频率调用 Tick，
// 绘制时读取 State 快照。不是并发安全的，只能在驱动循环所在的 goroutine 使用。
type Session struct {
	cfg      *config.SimulationConfig
	viewport systems.Viewport
	keys     *systems.KeySet
	rng      *rand.Rand

	state components.SimulationState
	ticks uint64
}

// NewSession 创建处于默认状态（未开始）的会话
//
// 参数:
//   - cfg: 模拟配置，为 nil 时使用默认配置
//   - vp: 初始视口
//   - seed: 彩纸随机源种子，相同种子 + 相同输入序列得到相同结果
func NewSession(cfg *config.SimulationConfig, vp systems.Viewport, seed int64) *Session {
	if cfg == nil {
		cfg = config.DefaultSimulationConfig()
	}
	return &Session{
		cfg:      cfg,
		viewport: vp,
		keys:     systems.NewKeySet(),
		rng:      rand.New(rand.NewSource(seed)),
		state:    systems.NewState(cfg, vp),
	}
}

// Start 开始推进 tick
func (s *Session) Start() {
	if s.state.Started {
		return
	}
	s.state.Started = true
	log.Printf("[Session] mission started")
}

// Reset 恢复默认状态并停止推进，同时释放所有按键
func (s *Session) Reset() {
	s.state = systems.NewState(s.cfg, s.viewport)
	s.keys.Clear()
	log.Printf("[Session] mission reset")
}

// ToggleEscalator 直接切换扶梯运行状态（按钮操作，不经过边沿检测）
func (s *Session) ToggleEscalator() {
	s.state.EscalatorRunning = !s.state.EscalatorRunning
	log.Printf("[Session] escalator running=%v", s.state.EscalatorRunning)
}

// Resize 更新视口
//
// 未开始时角色重新放到新视口的一楼地面；进行中只更新视口，
// 下一个 tick 会把角色贴合到新的地面或扶梯上。
func (s *Session) Resize(width, height float64) {
	vp := systems.Viewport{Width: width, Height: height}
	if vp == s.viewport {
		return
	}
	s.viewport = vp
	if !s.state.Started {
		s.state.Position = systems.NewState(s.cfg, vp).Position
	}
}

// Press 记录按键按下
func (s *Session) Press(k systems.Key) {
	s.keys.Press(k)
}

// Release 记录按键抬起
func (s *Session) Release(k systems.Key) {
	s.keys.Release(k)
}

// Tick 用当前按键快照推进一个 tick；未开始时不做任何事
func (s *Session) Tick() {
	if !s.state.Started {
		return
	}

	wasCelebrating := s.state.Celebrating
	s.state = systems.Update(s.state, s.keys.Snapshot(), s.env())
	s.ticks++

	if s.state.Celebrating && !wasCelebrating {
		log.Printf("[Session] goal reached at tick %d (%.0f, %.0f), %d confetti",
			s.ticks, s.state.Position.X, s.state.Position.Y, len(s.state.Particles))
	}
}

// State 返回当前状态快照
func (s *Session) State() components.SimulationState {
	return s.state
}

// Ticks 返回已推进的 tick 数
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Keys 返回按键集合
func (s *Session) Keys() *systems.KeySet {
	return s.keys
}

// Viewport 返回当前视口
func (s *Session) Viewport() systems.Viewport {
	return s.viewport
}

// Config 返回模拟配置
func (s *Session) Config() *config.SimulationConfig {
	return s.cfg
}

// Footing 返回角色当前的站立状态，供状态栏显示
func (s *Session) Footing() systems.Footing {
	return systems.Classify(systems.NewEscalator(s.cfg, s.viewport), s.state.Position)
}

func (s *Session) env() systems.Env {
	return systems.Env{Config: s.cfg, Viewport: s.viewport, Rand: s.rng}
}
