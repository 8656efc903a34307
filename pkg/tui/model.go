package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gonewx/escalator/pkg/game"
	"github.com/gonewx/escalator/pkg/render"
	"github.com/gonewx/escalator/pkg/systems"
)

// statusLines 状态栏占用的终端行数
const statusLines = 2

// keyBindings 终端按键名到模拟按键的映射
var keyBindings = map[string]systems.Key{
	"a":     systems.KeyA,
	"d":     systems.KeyD,
	"left":  systems.KeyArrowLeft,
	"right": systems.KeyArrowRight,
	" ":     systems.KeySpace,
}

// Model bubbletea 模型
type Model struct {
	session  *game.Session
	renderer *systems.RenderSystem
	surface  *render.CellSurface
	hold     *HoldTracker
	interval time.Duration

	cols, rows int
}

// NewModel 创建终端模型
//
// 参数:
//   - session: 模拟会话
//   - holdTicks: 按键保持 tick 数（见 HoldTracker）
func NewModel(session *game.Session, holdTicks int) *Model {
	m := &Model{
		session:  session,
		renderer: systems.NewRenderSystem(session.Config()),
		hold:     NewHoldTracker(holdTicks),
		interval: time.Duration(session.Config().TickIntervalMs()) * time.Millisecond,
	}
	m.resize(80, 24+statusLines)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update 处理窗口尺寸、按键和 tick
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case TickMsg:
		m.session.Tick()
		m.hold.Tick(m.session.Keys())
		return m, tickCmd(m.interval)
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	if k, ok := keyBindings[key]; ok {
		m.hold.Press(m.session.Keys(), k)
		return nil
	}

	switch key {
	case "q", "esc", "ctrl+c":
		log.Printf("[TUI] quit after %d ticks", m.session.Ticks())
		return tea.Quit
	case "enter":
		m.session.Start()
	case "r":
		if m.session.State().Started {
			m.session.Reset()
			m.hold.Clear()
		}
	case "t":
		if m.session.State().Started {
			m.session.ToggleEscalator()
		}
	}
	return nil
}

// resize 按终端尺寸重建字符表面，视口换算为逻辑像素
func (m *Model) resize(width, height int) {
	cols := width
	rows := height - statusLines
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == m.cols && rows == m.rows {
		return
	}

	m.cols, m.rows = cols, rows
	m.surface = render.NewCellSurface(cols, rows)
	pw, ph := m.surface.Size()
	m.session.Resize(float64(pw), float64(ph))
	log.Printf("[TUI] terminal %dx%d cells, viewport %dx%d px", cols, rows, pw, ph)
}

// View 绘制场景和状态栏
func (m *Model) View() string {
	m.surface.Reset()
	state := m.session.State()
	m.renderer.Draw(m.surface, state)

	var b strings.Builder
	b.WriteString(m.surface.String())
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m *Model) statusBar() string {
	state := m.session.State()

	mission := labelStyle.Render("READY")
	if state.Started {
		mission = labelStyle.Render("MISSION")
	}

	escalator := runningStyle.Render("ESCALATOR RUNNING")
	if !state.EscalatorRunning {
		escalator = stoppedStyle.Render("ESCALATOR STOPPED")
	}

	parts := []string{
		mission,
		escalator,
		m.session.Footing().String(),
		fmt.Sprintf("x=%.0f y=%.0f", state.Position.X, state.Position.Y),
	}
	if state.Angry {
		parts = append(parts, angryStyle.Render("ANGRY"))
	}
	if state.Celebrating {
		parts = append(parts, victoryStyle.Render(fmt.Sprintf("%s %d", m.session.Config().Labels.VictoryTitle, len(state.Particles))))
	}

	return statusStyle.Render(" " + strings.Join(parts, " | ") + " ")
}

func (m *Model) helpLine() string {
	if !m.session.State().Started {
		return "enter: start mission  q: quit"
	}
	return "a/d ←/→: move  space: toggle escalator  t: stop/start  r: reset  q: quit"
}
