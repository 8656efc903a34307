// Package utils 提供通用工具函数
package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// HeldPointers 返回当前所有按住的指针位置
//
// 包含全部活动触摸点；includeMouse 为 true 时鼠标左键按住也算一个指针
// （桌面端模拟移动模式时使用）。
func HeldPointers(includeMouse bool) []image.Point {
	var points []image.Point
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		points = append(points, image.Pt(x, y))
	}
	if includeMouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, image.Pt(x, y))
	}
	return points
}

// PointerDirection 按住位置对应的移动方向
type PointerDirection int

const (
	// DirectionNone 屏幕中间三分之一，不移动
	DirectionNone PointerDirection = iota
	// DirectionLeft 屏幕左侧三分之一
	DirectionLeft
	// DirectionRight 屏幕右侧三分之一
	DirectionRight
)

// DirectionForX 把按住位置的 X 坐标映射为移动方向
//
// 屏幕横向三等分：左侧向左，右侧向右，中间不动。
// width <= 0 时总是返回 DirectionNone。
func DirectionForX(x, width int) PointerDirection {
	if width <= 0 {
		return DirectionNone
	}
	switch {
	case x*3 < width:
		return DirectionLeft
	case x*3 >= width*2:
		return DirectionRight
	default:
		return DirectionNone
	}
}
