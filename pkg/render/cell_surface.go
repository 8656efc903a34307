package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// 终端一个字符格对应的逻辑像素尺寸
// 每格用半块字符 "▀" 表示上下两个像素块，前景色为上半、背景色为下半
const (
	CellPixelWidth  = 8
	CellPixelHeight = 16
)

const halfBlock = "▀"

type cellText struct {
	col, row int
	text     string
	color    color.Color
}

// CellSurface 终端字符画表面
//
// 图形先光栅化到内部 GGSurface，String() 时按格采样转换为带颜色的半块字符；
// 文字不进入光栅，而是直接以字符形式叠加在对应格子上，保证在终端里可读。
type CellSurface struct {
	cols, rows int
	raster     *GGSurface
	texts      []cellText
	background color.Color
}

// NewCellSurface 创建 cols x rows 个字符格的表面
func NewCellSurface(cols, rows int) *CellSurface {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	cs := &CellSurface{
		cols:       cols,
		rows:       rows,
		raster:     NewGGSurface(cols*CellPixelWidth, rows*CellPixelHeight),
		background: color.Black,
	}
	cs.Reset()
	return cs
}

// Grid 返回字符格数量
func (cs *CellSurface) Grid() (cols, rows int) {
	return cs.cols, cs.rows
}

// Reset 清空光栅和文字，准备绘制下一帧
func (cs *CellSurface) Reset() {
	cs.raster.Clear(cs.background)
	cs.texts = cs.texts[:0]
}

func (cs *CellSurface) Size() (int, int) {
	return cs.raster.Size()
}

func (cs *CellSurface) FillRect(x, y, w, h float64, c color.Color) {
	cs.raster.FillRect(x, y, w, h, c)
}

func (cs *CellSurface) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	cs.raster.StrokeRect(x, y, w, h, lineWidth, c)
}

func (cs *CellSurface) StrokeLine(x1, y1, x2, y2, lineWidth float64, c color.Color) {
	cs.raster.StrokeLine(x1, y1, x2, y2, lineWidth, c)
}

func (cs *CellSurface) DrawImage(img image.Image, x, y float64) {
	cs.raster.DrawImage(img, x, y)
}

func (cs *CellSurface) DrawText(str string, x, y float64, style TextStyle) {
	runes := []rune(str)
	col := int(x / CellPixelWidth)
	switch style.Align {
	case AlignCenter:
		col -= len(runes) / 2
	case AlignRight:
		col -= len(runes)
	}
	row := int(y / CellPixelHeight)
	if row < 0 || row >= cs.rows {
		return
	}
	cs.texts = append(cs.texts, cellText{col: col, row: row, text: str, color: style.Color})
}

// String 将当前帧转换为终端字符串（每行一个换行）
func (cs *CellSurface) String() string {
	img := cs.raster.Image()
	overlay := cs.overlayGrid()

	var sb strings.Builder
	for row := 0; row < cs.rows; row++ {
		var run strings.Builder
		var runStyle lipgloss.Style
		runKey := ""

		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(runStyle.Render(run.String()))
				run.Reset()
			}
		}

		for col := 0; col < cs.cols; col++ {
			top := averageBlock(img, col*CellPixelWidth, row*CellPixelHeight, CellPixelWidth, CellPixelHeight/2)
			bottom := averageBlock(img, col*CellPixelWidth, row*CellPixelHeight+CellPixelHeight/2, CellPixelWidth, CellPixelHeight/2)

			glyph := halfBlock
			fg := top
			if ov, ok := overlay[[2]int{col, row}]; ok {
				glyph = string(ov.r)
				fg = ov.color
			}

			key := fg + bottom
			if key != runKey {
				flush()
				runKey = key
				runStyle = lipgloss.NewStyle().
					Foreground(lipgloss.Color(fg)).
					Background(lipgloss.Color(bottom))
			}
			run.WriteString(glyph)
		}
		flush()
		if row < cs.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

type overlayRune struct {
	r     rune
	color string
}

func (cs *CellSurface) overlayGrid() map[[2]int]overlayRune {
	grid := make(map[[2]int]overlayRune)
	for _, t := range cs.texts {
		hex := toHex(t.color)
		for i, r := range []rune(t.text) {
			col := t.col + i
			if col < 0 || col >= cs.cols {
				continue
			}
			grid[[2]int{col, t.row}] = overlayRune{r: r, color: hex}
		}
	}
	return grid
}

// averageBlock 对一个像素块做 2x2 采样平均，返回 "#rrggbb"
func averageBlock(img image.Image, x, y, w, h int) string {
	samples := [4][2]int{
		{x + w/4, y + h/4},
		{x + 3*w/4, y + h/4},
		{x + w/4, y + 3*h/4},
		{x + 3*w/4, y + 3*h/4},
	}
	var r, g, b float64
	for _, p := range samples {
		c, _ := colorful.MakeColor(img.At(p[0], p[1]))
		r += c.R
		g += c.G
		b += c.B
	}
	return colorful.Color{R: r / 4, G: g / 4, B: b / 4}.Clamped().Hex()
}

func toHex(c color.Color) string {
	if c == nil {
		return "#ffffff"
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		// 完全透明
		return "#000000"
	}
	return cc.Clamped().Hex()
}
