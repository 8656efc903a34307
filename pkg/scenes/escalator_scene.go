package scenes

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/escalator/pkg/game"
	"github.com/gonewx/escalator/pkg/render"
	"github.com/gonewx/escalator/pkg/systems"
	"github.com/gonewx/escalator/pkg/utils"
)

// EscalatorScene 扶梯场景：把 ebiten 的键盘/指针输入交给 Session，
// 每个 tick 推进一次模拟，并用 RenderSystem 绘制当前状态和按钮。
type EscalatorScene struct {
	session  *game.Session
	renderer *systems.RenderSystem
	surface  *render.EbitenSurface
	touch    *touchKeys

	width, height int
}

// NewEscalatorScene 创建扶梯场景
func NewEscalatorScene(session *game.Session) *EscalatorScene {
	vp := session.Viewport()
	return &EscalatorScene{
		session:  session,
		renderer: systems.NewRenderSystem(session.Config()),
		surface:  render.NewEbitenSurface(),
		touch:    newTouchKeys(),
		width:    int(vp.Width),
		height:   int(vp.Height),
	}
}

// Resize 实现 game.Resizable，视口跟随窗口
func (s *EscalatorScene) Resize(width, height int) {
	s.width, s.height = width, height
	s.session.Resize(float64(width), float64(height))
	log.Printf("[Scene] viewport resized to %dx%d", width, height)
}

// Update 处理输入并推进一个 tick
//
// 模拟按 tick 计量（速度单位是像素/tick），不使用 deltaTime。
func (s *EscalatorScene) Update(deltaTime float64) {
	ev := pollKeyboard()
	for _, k := range ev.pressed {
		s.session.Press(k)
	}
	for _, k := range ev.released {
		s.session.Release(k)
	}

	for _, action := range pollShortcuts() {
		s.apply(action)
	}

	s.handlePointer()
	s.session.Tick()
}

func (s *EscalatorScene) handlePointer() {
	buttons := LayoutButtons(s.session.State(), float64(s.width))

	if clicked, x, y := utils.IsJustTouchedOrClicked(); clicked {
		if b, ok := HitButton(buttons, float64(x), float64(y)); ok {
			s.apply(b.Action)
			buttons = LayoutButtons(s.session.State(), float64(s.width))
		}
	}

	s.touch.Sync(s.session.Keys(), s.heldDirections(buttons, utils.HeldPointers(utils.IsMobile())))
}

// heldDirections 按住位置（不在按钮上）对应的方向键
func (s *EscalatorScene) heldDirections(buttons []Button, points []image.Point) map[systems.Key]bool {
	want := make(map[systems.Key]bool)
	for _, p := range points {
		if _, onButton := HitButton(buttons, float64(p.X), float64(p.Y)); onButton {
			continue
		}
		switch utils.DirectionForX(p.X, s.width) {
		case utils.DirectionLeft:
			want[systems.KeyArrowLeft] = true
		case utils.DirectionRight:
			want[systems.KeyArrowRight] = true
		}
	}
	return want
}

// apply 执行按钮或快捷键操作；当前不可见的按钮操作被忽略
func (s *EscalatorScene) apply(action ButtonAction) {
	started := s.session.State().Started
	switch action {
	case ActionStart:
		if !started {
			s.session.Start()
		}
	case ActionReset:
		if started {
			s.session.Reset()
			s.touch.Clear()
		}
	case ActionToggle:
		if started {
			s.session.ToggleEscalator()
		}
	}
}

// Draw 绘制场景和按钮
func (s *EscalatorScene) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	s.surface.SetTarget(screen)
	state := s.session.State()

	s.renderer.Draw(s.surface, state)

	hx, hy := utils.GetPointerPosition()
	DrawButtons(s.surface, LayoutButtons(state, float64(s.width)), float64(hx), float64(hy))
}
