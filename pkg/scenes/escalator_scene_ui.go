package scenes

import (
	"image/color"

	"github.com/gonewx/escalator/pkg/components"
	"github.com/gonewx/escalator/pkg/config"
	"github.com/gonewx/escalator/pkg/render"
)

// ButtonAction 按钮对应的会话操作
type ButtonAction int

const (
	ActionStart ButtonAction = iota
	ActionReset
	ActionToggle
)

// String 返回操作名称（日志用）
func (a ButtonAction) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionReset:
		return "reset"
	case ActionToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// Button 场景内绘制的矩形按钮
type Button struct {
	Action ButtonAction
	Label  string

	X, Y, Width, Height float64

	Fill  color.Color
	Hover color.Color
}

var (
	buttonBlue      = color.RGBA{0x25, 0x63, 0xeb, 0xff}
	buttonBlueHover = color.RGBA{0x1d, 0x4e, 0xd8, 0xff}
	buttonGray      = color.RGBA{0x6b, 0x72, 0x80, 0xff}
	buttonGrayHover = color.RGBA{0x4b, 0x55, 0x63, 0xff}

	// 运行中显示红色的停止按钮，停止时显示绿色的启动按钮
	buttonRed        = color.RGBA{0xef, 0x44, 0x44, 0xff}
	buttonRedHover   = color.RGBA{0xdc, 0x26, 0x26, 0xff}
	buttonGreen      = color.RGBA{0x22, 0xc5, 0x5e, 0xff}
	buttonGreenHover = color.RGBA{0x16, 0xa3, 0x4a, 0xff}

	buttonShadow = color.NRGBA{0, 0, 0, 64}
)

// LayoutButtons 根据状态返回当前可见的按钮
//
// 未开始：左上角 "Start Mission"。
// 进行中：左上角 "Reset Mission"，右上角扶梯开关。
func LayoutButtons(s components.SimulationState, viewportWidth float64) []Button {
	left := Button{
		X:      config.ButtonMargin,
		Y:      config.ButtonMargin,
		Width:  config.StartButtonWidth,
		Height: config.ButtonHeight,
	}

	if !s.Started {
		left.Action = ActionStart
		left.Label = "Start Mission"
		left.Fill, left.Hover = buttonBlue, buttonBlueHover
		return []Button{left}
	}

	left.Action = ActionReset
	left.Label = "Reset Mission"
	left.Fill, left.Hover = buttonGray, buttonGrayHover

	toggle := Button{
		Action: ActionToggle,
		X:      viewportWidth - config.ButtonMargin - config.ToggleButtonWidth,
		Y:      config.ButtonMargin,
		Width:  config.ToggleButtonWidth,
		Height: config.ButtonHeight,
	}
	if s.EscalatorRunning {
		toggle.Label = "STOP ESCALATOR"
		toggle.Fill, toggle.Hover = buttonRed, buttonRedHover
	} else {
		toggle.Label = "START ESCALATOR"
		toggle.Fill, toggle.Hover = buttonGreen, buttonGreenHover
	}

	return []Button{left, toggle}
}

// Contains 点是否落在按钮内
func (b Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// HitButton 返回 (x, y) 处的按钮
func HitButton(buttons []Button, x, y float64) (Button, bool) {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// DrawButtons 绘制按钮，hoverX/hoverY 处的按钮使用悬停颜色
func DrawButtons(surface render.Surface, buttons []Button, hoverX, hoverY float64) {
	for _, b := range buttons {
		fill := b.Fill
		if b.Contains(hoverX, hoverY) {
			fill = b.Hover
		}

		surface.FillRect(b.X+2, b.Y+3, b.Width, b.Height, buttonShadow)
		surface.FillRect(b.X, b.Y, b.Width, b.Height, fill)
		surface.DrawText(b.Label, b.X+b.Width/2, b.Y+b.Height/2+config.ButtonFontSize/3, render.TextStyle{
			Size:   config.ButtonFontSize,
			Weight: render.FontBold,
			Align:  render.AlignCenter,
			Color:  color.White,
		})
	}
}
