package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestGGSurface_FillRect(t *testing.T) {
	s := NewGGSurface(20, 10)
	s.Clear(color.White)
	s.FillRect(5, 2, 4, 4, color.RGBA{R: 255, A: 255})

	r, g, b, _ := s.Image().At(6, 3).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("expected red pixel inside rect, got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = s.Image().At(15, 8).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("expected white pixel outside rect, got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestGGSurface_SizeClampsToOne(t *testing.T) {
	s := NewGGSurface(0, -5)
	w, h := s.Size()
	if w != 1 || h != 1 {
		t.Errorf("expected 1x1 surface, got %dx%d", w, h)
	}
}

func TestGGSurface_DrawText(t *testing.T) {
	s := NewGGSurface(200, 60)
	s.Clear(color.White)
	s.DrawText("VICTORY!", 100, 40, TextStyle{Size: 32, Weight: FontBold, Align: AlignCenter, Color: color.Black})

	dark := 0
	img := s.Image()
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if r>>8 < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("expected text to produce dark pixels")
	}
}

func TestGGSurface_DrawImage(t *testing.T) {
	layer := NewGGSurface(4, 4)
	layer.Clear(color.RGBA{B: 255, A: 255})

	s := NewGGSurface(10, 10)
	s.Clear(color.White)
	s.DrawImage(layer.Image(), 3, 3)
	s.DrawImage(nil, 0, 0)

	_, _, b, _ := s.Image().At(4, 4).RGBA()
	if b>>8 != 255 {
		t.Errorf("expected blue pixel from layer, got b=%d", b>>8)
	}
}

func TestGGSurface_EncodePNG(t *testing.T) {
	s := NewGGSurface(8, 8)
	s.Clear(color.Black)

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("invalid png: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("expected width 8, got %d", img.Bounds().Dx())
	}
}

func TestTrueTypeFace_Cached(t *testing.T) {
	a, err := TrueTypeFace(16, FontRegular)
	if err != nil {
		t.Fatalf("TrueTypeFace failed: %v", err)
	}
	b, err := TrueTypeFace(16, FontRegular)
	if err != nil {
		t.Fatalf("TrueTypeFace failed: %v", err)
	}
	if a != b {
		t.Error("expected cached face for same size/weight")
	}
	c, err := TrueTypeFace(16, FontBold)
	if err != nil {
		t.Fatalf("TrueTypeFace failed: %v", err)
	}
	if a == c {
		t.Error("expected a different face for bold")
	}
}
