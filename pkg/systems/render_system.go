package systems

import (
	"image/color"
	"math"

	"github.com/gonewx/escalator/pkg/components"
	"github.com/gonewx/escalator/pkg/config"
	"github.com/gonewx/escalator/pkg/render"
)

// RenderSystem 根据模拟状态绘制整个场景
//
// 绘制是状态和视口的纯函数：不修改状态、不返回错误，
// 对同一状态快照重复绘制结果相同。唯一的内部状态是静态图层缓存。
//
// 图层顺序：背景/扶梯主体 → 台阶 → 扶手/终点标志 → 角色 → 彩纸 → 庆祝文字
type RenderSystem struct {
	cfg    *config.SimulationConfig
	layers LayerCache
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(cfg *config.SimulationConfig) *RenderSystem {
	return &RenderSystem{cfg: cfg}
}

var (
	stepShadow    = color.NRGBA{0, 0, 0, 51}
	stepFace      = color.RGBA{0x88, 0x88, 0x88, 0xff}
	stepHighlight = color.NRGBA{255, 255, 255, 77}
	stepOutline   = color.RGBA{0x33, 0x33, 0x33, 0xff}
	stepRidge     = color.RGBA{0x55, 0x55, 0x55, 0xff}

	victoryGold = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

// Draw 把状态绘制到 surface
//
// surface 为 nil 或尺寸为零时视为没有绘制目标，本帧静默跳过。
func (rs *RenderSystem) Draw(surface render.Surface, s components.SimulationState) {
	if surface == nil {
		return
	}
	width, height := surface.Size()
	if width <= 0 || height <= 0 {
		return
	}

	esc := NewEscalator(rs.cfg, Viewport{Width: float64(width), Height: float64(height)})
	layers := rs.layers.Get(rs.cfg, width, height)

	surface.DrawImage(layers.Backdrop, 0, 0)
	drawSteps(surface, esc, s.AnimationOffset)
	surface.DrawImage(layers.Fixtures, 0, 0)
	drawCharacter(surface, s.Position, s.Angry)

	if s.Celebrating {
		rs.drawCelebration(surface, s, float64(width))
	}
}

// StepPositions 返回当前动画偏移下可见台阶的左上锚点（台阶中心 X，顶边 Y）
//
// 台阶沿扶梯线段等距排列，进度超出 [-0.1, 1.1] 的台阶不绘制。
func StepPositions(esc Escalator, offset float64) []components.Vec2 {
	length := esc.Length()
	if length <= 0 {
		return nil
	}

	stepCount := int(math.Ceil(length/config.StepSpacing)) + config.StepExtra
	positions := make([]components.Vec2, 0, stepCount+2)
	for i := -2; i < stepCount; i++ {
		progress := (float64(i)*config.StepSpacing - offset) / length
		if progress < -0.1 || progress > 1.1 {
			continue
		}
		positions = append(positions, esc.PointAt(progress))
	}
	return positions
}

func drawSteps(surface render.Surface, esc Escalator, offset float64) {
	stepW := config.StepWidth
	stepH := esc.Width / 4

	for _, p := range StepPositions(esc, offset) {
		left := p.X - stepW/2

		surface.FillRect(left+2, p.Y+2, stepW, stepH, stepShadow)
		surface.FillRect(left, p.Y, stepW, stepH, stepFace)
		surface.FillRect(left, p.Y, stepW, 2, stepHighlight)
		surface.StrokeRect(left, p.Y, stepW, stepH, 1, stepOutline)

		// 台阶纹路
		for j := 1; j < 3; j++ {
			ridgeX := left + stepW*float64(j)/3
			surface.StrokeLine(ridgeX, p.Y, ridgeX, p.Y+stepH, 1, stepRidge)
		}
	}
}

func (rs *RenderSystem) drawCelebration(surface render.Surface, s components.SimulationState, width float64) {
	palette := rs.cfg.Palette()
	for _, p := range s.Particles {
		c := color.Color(color.White)
		if int(p.Color) < len(palette) {
			c = palette[p.Color]
		}
		surface.FillRect(p.Position.X, p.Position.Y, config.ParticleSize, config.ParticleSize, c)
	}

	surface.DrawText(rs.cfg.Labels.VictoryTitle, width/2, config.VictoryTitleY, render.TextStyle{
		Size:   config.VictoryTitleSize,
		Weight: render.FontBold,
		Align:  render.AlignCenter,
		Color:  victoryGold,
	})
	surface.DrawText(rs.cfg.Labels.VictoryMessage, width/2, config.VictoryMessageY, render.TextStyle{
		Size:   config.VictoryMessageSize,
		Weight: render.FontBold,
		Align:  render.AlignCenter,
		Color:  color.White,
	})
}

// Render 用一次性的 RenderSystem 绘制单帧
//
// 不缓存静态图层，适合截图这类只画一帧的调用方；
// 逐帧绘制的前端应持有 RenderSystem。
func Render(surface render.Surface, s components.SimulationState, cfg *config.SimulationConfig) {
	NewRenderSystem(cfg).Draw(surface, s)
}
