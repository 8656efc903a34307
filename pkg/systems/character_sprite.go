package systems

import (
	"image/color"

	"github.com/gonewx/escalator/pkg/components"
	"github.com/gonewx/escalator/pkg/render"
)

// spriteRect 像素风角色的一个色块，坐标相对角色脚底中心
type spriteRect struct {
	dx, dy, w, h float64
	fill         color.Color
	// stroke 非 nil 时只描边
	stroke    color.Color
	lineWidth float64
}

var (
	skin         = color.RGBA{0xff, 0xdb, 0xac, 0xff}
	skinEdge     = color.RGBA{0xe6, 0xc2, 0x99, 0xff}
	suit         = color.RGBA{0x1a, 0x23, 0x7e, 0xff}
	lapel        = color.RGBA{0x28, 0x35, 0x93, 0xff}
	tie          = color.RGBA{0xd3, 0x2f, 0x2f, 0xff}
	tieKnot      = color.RGBA{0xb7, 0x1c, 0x1c, 0xff}
	shoes        = color.RGBA{0x2d, 0x18, 0x10, 0xff}
	hair         = color.RGBA{0xff, 0xed, 0x4e, 0xff}
	hairWave     = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	hairEdge     = color.RGBA{0xe6, 0xc2, 0x00, 0xff}
	brow         = color.RGBA{0x8d, 0x6e, 0x63, 0xff}
	angryRed     = color.RGBA{0xff, 0x66, 0x66, 0xff}
	spriteShadow = color.NRGBA{0, 0, 0, 77}
)

// characterBody 表情之外的身体部分，按绘制顺序排列
var characterBody = []spriteRect{
	{dx: -10, dy: -6, w: 24, h: 16, fill: spriteShadow},
	{dx: -8, dy: -8, w: 16, h: 6, fill: shoes},
	{dx: -12, dy: -20, w: 24, h: 12, fill: suit},
	{dx: -14, dy: -35, w: 28, h: 15, fill: suit},
	{dx: -12, dy: -33, w: 4, h: 8, fill: lapel},
	{dx: 8, dy: -33, w: 4, h: 8, fill: lapel},
	{dx: -8, dy: -30, w: 16, h: 6, fill: color.White},
	{dx: -2, dy: -25, w: 4, h: 12, fill: tie},
	{dx: -3, dy: -28, w: 6, h: 4, fill: tieKnot},

	// 头部
	{dx: -16, dy: -55, w: 32, h: 24, fill: skin},
	{dx: -16, dy: -55, w: 32, h: 24, stroke: skinEdge, lineWidth: 2},
	{dx: -18, dy: -60, w: 36, h: 8, fill: hair},
	{dx: -16, dy: -62, w: 32, h: 4, fill: hairWave},
	{dx: -18, dy: -60, w: 36, h: 8, stroke: hairEdge, lineWidth: 1},
	{dx: -16, dy: -62, w: 32, h: 4, stroke: hairEdge, lineWidth: 1},

	// 眼睛
	{dx: -10, dy: -48, w: 4, h: 3, fill: color.White},
	{dx: 6, dy: -48, w: 4, h: 3, fill: color.White},
	{dx: -9, dy: -47, w: 2, h: 2, fill: color.Black},
	{dx: 7, dy: -47, w: 2, h: 2, fill: color.Black},
	{dx: -8, dy: -48, w: 1, h: 1, fill: color.White},
	{dx: 8, dy: -48, w: 1, h: 1, fill: color.White},

	{dx: -12, dy: -52, w: 8, h: 2, fill: brow},
	{dx: 4, dy: -52, w: 8, h: 2, fill: brow},
	{dx: -2, dy: -45, w: 4, h: 3, fill: skin},
	{dx: -18, dy: -50, w: 3, h: 6, fill: skin},
	{dx: 15, dy: -50, w: 3, h: 6, fill: skin},
}

var calmFace = []spriteRect{
	{dx: -3, dy: -40, w: 6, h: 1, fill: color.Black},
}

// angryFace 皱眉、压低的黑色眉毛和涨红的脸颊
var angryFace = []spriteRect{
	{dx: -4, dy: -40, w: 8, h: 2, fill: color.Black},
	{dx: -12, dy: -54, w: 6, h: 2, fill: color.Black},
	{dx: 6, dy: -54, w: 6, h: 2, fill: color.Black},
	{dx: -16, dy: -48, w: 3, h: 3, fill: angryRed},
	{dx: 13, dy: -48, w: 3, h: 3, fill: angryRed},
}

var characterHands = []spriteRect{
	{dx: -20, dy: -20, w: 6, h: 6, fill: skin},
	{dx: 14, dy: -20, w: 6, h: 6, fill: skin},
	{dx: -20, dy: -20, w: 6, h: 6, stroke: skinEdge, lineWidth: 1},
	{dx: 14, dy: -20, w: 6, h: 6, stroke: skinEdge, lineWidth: 1},
}

// characterParts 返回角色在指定表情下的全部色块
func characterParts(angry bool) [][]spriteRect {
	face := calmFace
	if angry {
		face = angryFace
	}
	return [][]spriteRect{characterBody, face, characterHands}
}

func drawCharacter(surface render.Surface, pos components.Vec2, angry bool) {
	for _, group := range characterParts(angry) {
		for _, r := range group {
			x, y := pos.X+r.dx, pos.Y+r.dy
			if r.stroke != nil {
				surface.StrokeRect(x, y, r.w, r.h, r.lineWidth, r.stroke)
				continue
			}
			surface.FillRect(x, y, r.w, r.h, r.fill)
		}
	}
}
