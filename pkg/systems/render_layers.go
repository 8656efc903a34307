package systems

import (
	"image"
	"image/color"
	"log"

	"github.com/fogleman/gg"

	"github.com/gonewx/escalator/pkg/config"
	"github.com/gonewx/escalator/pkg/render"
)

// 静态图层只依赖视口尺寸：背景 + 扶梯主体在台阶之下，扶手 + 终点标志在台阶之上。
// 渐变用 gg 预渲染一次，之后每帧直接贴图。

var (
	bgTop    = color.RGBA{0xe8, 0xe8, 0xe8, 0xff}
	bgMid    = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	bgBottom = color.RGBA{0xd8, 0xd8, 0xd8, 0xff}

	floorTile = color.NRGBA{200, 200, 200, 77}
	floorLine = color.NRGBA{150, 150, 150, 128}

	bodyShadow = color.NRGBA{0, 0, 0, 77}
	bodyLight  = color.RGBA{0x88, 0x88, 0x88, 0xff}
	bodyMid    = color.RGBA{0x66, 0x66, 0x66, 0xff}
	bodyDark   = color.RGBA{0x44, 0x44, 0x44, 0xff}

	handrail = color.RGBA{0x33, 0x33, 0x33, 0xff}

	signBlue   = color.RGBA{0x1a, 0x23, 0x7e, 0xff}
	doorFrame  = color.RGBA{0x8d, 0x6e, 0x63, 0xff}
	doorHandle = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

// StaticLayers 一个视口尺寸下的预渲染图层
type StaticLayers struct {
	// Backdrop 背景、楼层、光照和扶梯主体
	Backdrop image.Image
	// Fixtures 扶手和终点标志
	Fixtures image.Image
}

// LayerCache 按视口尺寸缓存静态图层
type LayerCache struct {
	width, height int
	layers        StaticLayers
}

// Get 返回指定视口的静态图层，尺寸变化时重新绘制
func (c *LayerCache) Get(cfg *config.SimulationConfig, width, height int) StaticLayers {
	if c.layers.Backdrop != nil && c.width == width && c.height == height {
		return c.layers
	}

	esc := NewEscalator(cfg, Viewport{Width: float64(width), Height: float64(height)})
	c.width, c.height = width, height
	c.layers = StaticLayers{
		Backdrop: PaintBackdrop(esc, width, height),
		Fixtures: PaintFixtures(esc, cfg.Labels.Sign, width, height),
	}
	log.Printf("[Render] static layers rebuilt for %dx%d", width, height)
	return c.layers
}

// PaintBackdrop 绘制背景层
func PaintBackdrop(esc Escalator, width, height int) image.Image {
	dc := gg.NewContext(width, height)
	w, h := float64(width), float64(height)

	bg := gg.NewLinearGradient(0, 0, 0, h)
	bg.AddColorStop(0, bgTop)
	bg.AddColorStop(0.5, bgMid)
	bg.AddColorStop(1, bgBottom)
	dc.SetFillStyle(bg)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	// 一楼和二楼的地砖
	dc.SetColor(floorTile)
	for x := 0.0; x < w; x += 40 {
		dc.DrawRectangle(x, h-20, 20, 20)
		dc.DrawRectangle(x, esc.TopFloorY-20, 20, 20)
	}
	dc.Fill()

	dc.SetColor(floorLine)
	dc.SetLineWidth(2)
	dc.DrawLine(0, h-20, w, h-20)
	dc.Stroke()
	dc.DrawLine(0, esc.TopFloorY-20, w, esc.TopFloorY-20)
	dc.Stroke()

	light := gg.NewRadialGradient(w/2, 100, 0, w/2, 100, 300)
	light.AddColorStop(0, color.NRGBA{255, 255, 255, 26})
	light.AddColorStop(1, color.NRGBA{255, 255, 255, 0})
	dc.SetFillStyle(light)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	// 扶梯主体：阴影 + 沿扶梯方向的渐变
	dc.MoveTo(esc.Start.X, esc.Start.Y)
	dc.LineTo(esc.End.X, esc.End.Y)
	dc.LineTo(esc.End.X, esc.End.Y+esc.Width)
	dc.LineTo(esc.Start.X, esc.Start.Y+esc.Width)
	dc.ClosePath()
	dc.SetColor(bodyShadow)
	dc.FillPreserve()

	body := gg.NewLinearGradient(esc.Start.X, esc.Start.Y, esc.End.X, esc.End.Y)
	body.AddColorStop(0, bodyLight)
	body.AddColorStop(0.5, bodyMid)
	body.AddColorStop(1, bodyDark)
	dc.SetFillStyle(body)
	dc.Fill()

	return dc.Image()
}

// PaintFixtures 绘制台阶之上的固定物：扶手和终点标志
func PaintFixtures(esc Escalator, label string, width, height int) image.Image {
	dc := gg.NewContext(width, height)

	dc.SetColor(handrail)
	dc.SetLineWidth(config.HandrailWidth)
	dc.DrawLine(esc.Start.X, esc.Start.Y-config.HandrailOffset, esc.End.X, esc.End.Y-config.HandrailOffset)
	dc.Stroke()
	dc.DrawLine(esc.Start.X, esc.Start.Y+esc.Width+config.HandrailOffset, esc.End.X, esc.End.Y+esc.Width+config.HandrailOffset)
	dc.Stroke()

	paintGoalSign(dc, esc, label)

	return dc.Image()
}

// paintGoalSign 终点标志：白底蓝框、地球徽标、文字、门框和门把手
func paintGoalSign(dc *gg.Context, esc Escalator, label string) {
	sx := esc.End.X - config.SignOffsetX
	sy := esc.End.Y - config.SignOffsetY
	sw, sh := config.SignWidth, config.SignHeight

	dc.SetColor(color.White)
	dc.DrawRectangle(sx, sy, sw, sh)
	dc.Fill()

	dc.SetColor(signBlue)
	dc.SetLineWidth(4)
	dc.DrawRectangle(sx, sy, sw, sh)
	dc.Stroke()

	// 地球徽标
	dc.DrawCircle(sx+30, sy+30, 20)
	dc.Fill()
	dc.SetColor(color.White)
	dc.SetLineWidth(2)
	dc.DrawCircle(sx+30, sy+30, 20)
	dc.Stroke()
	dc.DrawLine(sx+10, sy+30, sx+50, sy+30)
	dc.Stroke()
	dc.DrawLine(sx+30, sy+10, sx+30, sy+50)
	dc.Stroke()

	if face, err := render.TrueTypeFace(config.SignFontSize, render.FontBold); err == nil {
		dc.SetFontFace(face)
		dc.SetColor(signBlue)
		dc.DrawStringAnchored(label, sx+sw/2, sy+45, 0.5, 0)
	} else {
		log.Printf("[Render] sign label skipped: %v", err)
	}

	// 门框
	dc.SetColor(doorFrame)
	dc.DrawRectangle(sx-10, sy-10, sw+20, 10)
	dc.DrawRectangle(sx-10, sy+sh, sw+20, 10)
	dc.DrawRectangle(sx-10, sy-10, 10, sh+20)
	dc.DrawRectangle(sx+sw, sy-10, 10, sh+20)
	dc.Fill()

	dc.SetColor(doorHandle)
	dc.DrawRectangle(sx+sw-20, sy+sh/2-5, 8, 10)
	dc.Fill()
}
