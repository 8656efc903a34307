package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景实现后会收到窗口尺寸变化
//
// 尺寸是逻辑像素（ebiten Layout 的 outside size）。
type Resizable interface {
	Resize(width, height int)
}
