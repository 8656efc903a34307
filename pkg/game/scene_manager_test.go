package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// resizableScene 记录收到的尺寸
type resizableScene struct {
	MockScene
	width, height int
	resizes       int
}

func (r *resizableScene) Resize(width, height int) {
	r.width, r.height = width, height
	r.resizes++
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no scene initially")
	}
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(0.016)
	// 场景自己处理 nil 目标，这里只验证转发
	sm.Draw(nil)

	if !mockScene.updateCalled || mockScene.deltaTime != 0.016 {
		t.Error("Scene's Update method was not called with the delta")
	}
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerNoScene verifies that Update and Draw handle a nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
	sm.Resize(800, 600)
}

func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.Update(0.016)
	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if !scene1.updateCalled || !scene2.updateCalled {
		t.Error("both scenes should have been updated once active")
	}
	if sm.GetCurrentScene() != scene2 {
		t.Error("current scene should be scene2")
	}
}

func TestSceneManagerResize(t *testing.T) {
	tests := []struct {
		name        string
		resizes     [][2]int
		wantResizes int
		wantSize    [2]int
	}{
		{"单次", [][2]int{{800, 600}}, 1, [2]int{800, 600}},
		{"重复尺寸不转发", [][2]int{{800, 600}, {800, 600}}, 1, [2]int{800, 600}},
		{"尺寸变化", [][2]int{{800, 600}, {1024, 768}}, 2, [2]int{1024, 768}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			scene := &resizableScene{}
			sm.SwitchTo(scene)
			for _, r := range tt.resizes {
				sm.Resize(r[0], r[1])
			}
			if scene.resizes != tt.wantResizes {
				t.Errorf("resizes = %d, want %d", scene.resizes, tt.wantResizes)
			}
			if [2]int{scene.width, scene.height} != tt.wantSize {
				t.Errorf("size = %dx%d, want %v", scene.width, scene.height, tt.wantSize)
			}
		})
	}
}

// TestSceneManagerSwitchForwardsSize 新场景立即收到当前尺寸
func TestSceneManagerSwitchForwardsSize(t *testing.T) {
	sm := NewSceneManager()
	sm.Resize(640, 480)

	scene := &resizableScene{}
	sm.SwitchTo(scene)
	if scene.width != 640 || scene.height != 480 {
		t.Errorf("new scene got %dx%d, want 640x480", scene.width, scene.height)
	}
}
