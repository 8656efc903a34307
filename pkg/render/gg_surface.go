package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"github.com/fogleman/gg"
)

// GGSurface 基于 fogleman/gg 的离屏光栅表面
//
// 截图工具、终端前端和渲染测试都通过它得到像素结果，不需要图形窗口。
type GGSurface struct {
	dc *gg.Context
}

// NewGGSurface 创建指定尺寸的离屏表面，初始为透明
func NewGGSurface(width, height int) *GGSurface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &GGSurface{dc: gg.NewContext(width, height)}
}

// Context 返回底层 gg.Context（用于预渲染图层）
func (s *GGSurface) Context() *gg.Context {
	return s.dc
}

// Image 返回当前像素结果
func (s *GGSurface) Image() image.Image {
	return s.dc.Image()
}

// Clear 用指定颜色清屏
func (s *GGSurface) Clear(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

// EncodePNG 将当前像素编码为 PNG
func (s *GGSurface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG 保存为 PNG 文件
func (s *GGSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save png %s: %w", path, err)
	}
	return nil
}

func (s *GGSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *GGSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *GGSurface) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(lineWidth)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Stroke()
}

func (s *GGSurface) StrokeLine(x1, y1, x2, y2, lineWidth float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(lineWidth)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

func (s *GGSurface) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	s.dc.DrawImage(img, int(x), int(y))
}

func (s *GGSurface) DrawText(str string, x, y float64, style TextStyle) {
	face, err := TrueTypeFace(style.Size, style.Weight)
	if err != nil {
		log.Printf("[Render] font unavailable: %v", err)
		return
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(style.Color)
	s.dc.DrawStringAnchored(str, x, y, anchorX(style.Align), 0)
}

// anchorX 对齐方式对应的 gg 水平锚点
func anchorX(a Align) float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}
