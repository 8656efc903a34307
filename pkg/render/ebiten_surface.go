package render

import (
	"bytes"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// maxCachedLayers 缓存的预渲染图层上限；窗口缩放会不断生成新图层
const maxCachedLayers = 8

// EbitenSurface 绘制到 ebiten 屏幕的表面
//
// 每帧 Draw 开始时调用 SetTarget(screen)。未设置目标时所有绘制静默忽略。
type EbitenSurface struct {
	target  *ebiten.Image
	layers  map[image.Image]*ebiten.Image
	sources map[FontWeight]*text.GoTextFaceSource
}

// NewEbitenSurface 创建 ebiten 表面
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{
		layers:  make(map[image.Image]*ebiten.Image),
		sources: make(map[FontWeight]*text.GoTextFaceSource),
	}
}

// SetTarget 设置本帧的绘制目标
func (s *EbitenSurface) SetTarget(target *ebiten.Image) {
	s.target = target
}

func (s *EbitenSurface) Size() (int, int) {
	if s.target == nil {
		return 0, 0
	}
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), c, true)
}

func (s *EbitenSurface) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeRect(s.target, float32(x), float32(y), float32(w), float32(h), float32(lineWidth), c, true)
}

func (s *EbitenSurface) StrokeLine(x1, y1, x2, y2, lineWidth float64, c color.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeLine(s.target, float32(x1), float32(y1), float32(x2), float32(y2), float32(lineWidth), c, true)
}

func (s *EbitenSurface) DrawImage(img image.Image, x, y float64) {
	if s.target == nil || img == nil {
		return
	}

	layer, ok := s.layers[img]
	if !ok {
		if len(s.layers) >= maxCachedLayers {
			s.releaseLayers()
		}
		layer = ebiten.NewImageFromImage(img)
		s.layers[img] = layer
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.target.DrawImage(layer, op)
}

func (s *EbitenSurface) releaseLayers() {
	for key, layer := range s.layers {
		layer.Deallocate()
		delete(s.layers, key)
	}
}

func (s *EbitenSurface) DrawText(str string, x, y float64, style TextStyle) {
	if s.target == nil {
		return
	}

	source := s.faceSource(style.Weight)
	if source == nil {
		return
	}
	face := &text.GoTextFace{
		Source:    source,
		Size:      style.Size,
		Direction: text.DirectionLeftToRight,
	}

	op := &text.DrawOptions{}
	// text/v2 以行框顶部定位，这里换算为基线
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(style.Color)
	switch style.Align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(s.target, str, face, op)
}

func (s *EbitenSurface) faceSource(weight FontWeight) *text.GoTextFaceSource {
	if source, ok := s.sources[weight]; ok {
		return source
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(FontData(weight)))
	if err != nil {
		log.Printf("[Render] failed to create font source: %v", err)
		s.sources[weight] = nil
		return nil
	}
	s.sources[weight] = source
	return source
}
