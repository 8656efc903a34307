// Package render 提供与后端无关的 2D 绘制表面
//
// 场景绘制只依赖 Surface 接口，具体后端：
//   - EbitenSurface: 游戏窗口（ebiten vector + text/v2）
//   - GGSurface: 离屏光栅（fogleman/gg），用于截图工具和测试
//   - CellSurface: 终端字符画（半块字符 + lipgloss 着色）
package render

import (
	"image"
	"image/color"
)

// Align 文字水平对齐方式
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// FontWeight 字重
type FontWeight int

const (
	FontRegular FontWeight = iota
	FontBold
)

// TextStyle 文字样式
type TextStyle struct {
	Size   float64
	Weight FontWeight
	Align  Align
	Color  color.Color
}

// Surface 场景绘制目标
//
// 坐标单位为逻辑像素，原点在左上角。
// 所有方法都不返回错误：绘制失败的后端应静默忽略。
type Surface interface {
	// Size 返回表面尺寸（像素）
	Size() (width, height int)

	// FillRect 填充矩形
	FillRect(x, y, w, h float64, c color.Color)

	// StrokeRect 描边矩形
	StrokeRect(x, y, w, h, lineWidth float64, c color.Color)

	// StrokeLine 画线段
	StrokeLine(x1, y1, x2, y2, lineWidth float64, c color.Color)

	// DrawImage 在 (x, y) 处绘制预渲染的图层
	// 同一个 image.Image 指针在多帧间复用，后端可以缓存转换结果
	DrawImage(img image.Image, x, y float64)

	// DrawText 绘制单行文字，y 为基线位置
	DrawText(s string, x, y float64, style TextStyle)
}
