package scenes

import (
	"image"
	"testing"

	"github.com/gonewx/escalator/pkg/components"
	"github.com/gonewx/escalator/pkg/config"
	"github.com/gonewx/escalator/pkg/game"
	"github.com/gonewx/escalator/pkg/render"
	"github.com/gonewx/escalator/pkg/systems"
)

func newTestScene() *EscalatorScene {
	session := game.NewSession(config.DefaultSimulationConfig(), systems.Viewport{Width: 900, Height: 600}, 1)
	return NewEscalatorScene(session)
}

func TestLayoutButtons(t *testing.T) {
	tests := []struct {
		name       string
		state      components.SimulationState
		wantLabels []string
	}{
		{"未开始", components.SimulationState{}, []string{"Start Mission"}},
		{"进行中且扶梯运行", components.SimulationState{Started: true, EscalatorRunning: true}, []string{"Reset Mission", "STOP ESCALATOR"}},
		{"进行中且扶梯停止", components.SimulationState{Started: true}, []string{"Reset Mission", "START ESCALATOR"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buttons := LayoutButtons(tt.state, 900)
			if len(buttons) != len(tt.wantLabels) {
				t.Fatalf("got %d buttons, want %d", len(buttons), len(tt.wantLabels))
			}
			for i, b := range buttons {
				if b.Label != tt.wantLabels[i] {
					t.Errorf("button %d label = %q, want %q", i, b.Label, tt.wantLabels[i])
				}
			}
		})
	}
}

func TestLayoutButtons_ToggleColours(t *testing.T) {
	running := LayoutButtons(components.SimulationState{Started: true, EscalatorRunning: true}, 900)[1]
	if running.Fill != buttonRed {
		t.Errorf("running toggle fill = %v, want red", running.Fill)
	}
	stopped := LayoutButtons(components.SimulationState{Started: true}, 900)[1]
	if stopped.Fill != buttonGreen {
		t.Errorf("stopped toggle fill = %v, want green", stopped.Fill)
	}

	// 右上角对齐
	if right := stopped.X + stopped.Width; right != 900-config.ButtonMargin {
		t.Errorf("toggle right edge = %g, want %g", right, 900-config.ButtonMargin)
	}
}

func TestHitButton(t *testing.T) {
	buttons := LayoutButtons(components.SimulationState{Started: true, EscalatorRunning: true}, 900)

	tests := []struct {
		name   string
		x, y   float64
		want   ButtonAction
		wantOK bool
	}{
		{"重置按钮", 20, 20, ActionReset, true},
		{"开关按钮", 880, 30, ActionToggle, true},
		{"按钮之间", 450, 30, 0, false},
		{"按钮下方", 20, 100, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := HitButton(buttons, tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("HitButton(%g, %g) ok = %v, want %v", tt.x, tt.y, ok, tt.wantOK)
			}
			if ok && b.Action != tt.want {
				t.Errorf("action = %s, want %s", b.Action, tt.want)
			}
		})
	}
}

func TestDrawButtons_Hover(t *testing.T) {
	buttons := LayoutButtons(components.SimulationState{}, 900)

	plain := render.NewGGSurface(300, 100)
	DrawButtons(plain, buttons, -1, -1)
	hovered := render.NewGGSurface(300, 100)
	DrawButtons(hovered, buttons, 20, 20)

	// 取按钮内远离文字的像素
	r1, g1, b1, _ := plain.Image().At(20, 20).RGBA()
	r2, g2, b2, _ := hovered.Image().At(20, 20).RGBA()
	if r1 == r2 && g1 == g2 && b1 == b2 {
		t.Error("hovered button should use the hover colour")
	}
	wr, wg, wb, _ := buttonBlue.RGBA()
	if r1 != wr || g1 != wg || b1 != wb {
		t.Errorf("plain start button colour = %x %x %x, want blue", r1>>8, g1>>8, b1>>8)
	}
}

func TestEscalatorScene_Apply(t *testing.T) {
	scene := newTestScene()

	// 未开始时重置和开关按钮不可见，操作被忽略
	scene.apply(ActionToggle)
	if !scene.session.State().EscalatorRunning {
		t.Error("toggle before start should be ignored")
	}

	scene.apply(ActionStart)
	if !scene.session.State().Started {
		t.Fatal("start action did not start the session")
	}

	scene.apply(ActionToggle)
	if scene.session.State().EscalatorRunning {
		t.Error("toggle action should stop the escalator")
	}

	scene.apply(ActionReset)
	st := scene.session.State()
	if st.Started || !st.EscalatorRunning {
		t.Errorf("reset action should restore defaults, got %+v", st)
	}
}

func TestEscalatorScene_HeldDirections(t *testing.T) {
	scene := newTestScene()
	buttons := LayoutButtons(scene.session.State(), 900)

	tests := []struct {
		name   string
		points []image.Point
		want   map[systems.Key]bool
	}{
		{"无触摸", nil, map[systems.Key]bool{}},
		{"左侧", []image.Point{{X: 100, Y: 400}}, map[systems.Key]bool{systems.KeyArrowLeft: true}},
		{"右侧", []image.Point{{X: 800, Y: 400}}, map[systems.Key]bool{systems.KeyArrowRight: true}},
		{"中间", []image.Point{{X: 450, Y: 400}}, map[systems.Key]bool{}},
		{"按在按钮上不算移动", []image.Point{{X: 20, Y: 20}}, map[systems.Key]bool{}},
		{"双指", []image.Point{{X: 100, Y: 400}, {X: 800, Y: 400}}, map[systems.Key]bool{systems.KeyArrowLeft: true, systems.KeyArrowRight: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scene.heldDirections(buttons, tt.points)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k := range tt.want {
				if !got[k] {
					t.Errorf("missing %q in %v", k, got)
				}
			}
		})
	}
}

func TestTouchKeys_Sync(t *testing.T) {
	keys := systems.NewKeySet()
	tk := newTouchKeys()

	tk.Sync(keys, map[systems.Key]bool{systems.KeyArrowLeft: true})
	if !keys.Snapshot().Left {
		t.Fatal("touching the left zone should hold left")
	}

	tk.Sync(keys, map[systems.Key]bool{systems.KeyArrowRight: true})
	in := keys.Snapshot()
	if in.Left || !in.Right {
		t.Errorf("moving the finger to the right zone should switch direction, got %+v", in)
	}

	tk.Sync(keys, nil)
	if keys.Len() != 0 {
		t.Error("lifting the finger should release every touch key")
	}
}

func TestEscalatorScene_Resize(t *testing.T) {
	scene := newTestScene()
	scene.Resize(1200, 700)

	if scene.session.Viewport() != (systems.Viewport{Width: 1200, Height: 700}) {
		t.Errorf("session viewport = %+v", scene.session.Viewport())
	}
	if got := LayoutButtons(components.SimulationState{Started: true}, float64(scene.width))[1].X; got != 1200-config.ButtonMargin-config.ToggleButtonWidth {
		t.Errorf("toggle button x = %g after resize", got)
	}
}
