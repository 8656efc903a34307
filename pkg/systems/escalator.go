package systems

import (
	"math"

	"github.com/gonewx/escalator/pkg/components"
	"github.com/gonewx/escalator/pkg/config"
)

// Viewport 绘制区域尺寸（像素）
type Viewport struct {
	Width  float64
	Height float64
}

// Sanitized 返回可安全计算几何的视口
//
// 宽度至少为 2*edgeMargin+1，保证角色的 X 钳制区间非空；
// 高度至少为 1。零尺寸视口会被放大而不是报错。
func (v Viewport) Sanitized(edgeMargin float64) Viewport {
	minWidth := 2*edgeMargin + 1
	if math.IsNaN(v.Width) || v.Width < minWidth {
		v.Width = minWidth
	}
	if math.IsNaN(v.Height) || v.Height < 1 {
		v.Height = 1
	}
	return v
}

// Escalator 由视口尺寸推导出的扶梯几何，每 tick 重新计算，不持久化
//
// Start 为底端（左下），End 为顶端（右上）。屏幕坐标 Y 轴向下，
// 因此扶梯斜率为负。
type Escalator struct {
	Start components.Vec2
	End   components.Vec2
	Width float64

	// FloorY 一楼地面高度（与扶梯底端同高）
	FloorY float64
	// TopFloorY 二楼地面高度（与扶梯顶端同高）
	TopFloorY float64

	tolerance      float64
	topLevelOffset float64
}

// NewEscalator 根据配置和视口计算扶梯几何
func NewEscalator(cfg *config.SimulationConfig, vp Viewport) Escalator {
	vp = vp.Sanitized(cfg.Character.EdgeMargin)
	e := cfg.Escalator

	start := components.Vec2{X: vp.Width * e.StartXRatio, Y: vp.Height - e.BottomInset}
	end := components.Vec2{X: vp.Width * e.EndXRatio, Y: vp.Height * e.EndYRatio}

	return Escalator{
		Start:          start,
		End:            end,
		Width:          e.Width,
		FloorY:         start.Y,
		TopFloorY:      end.Y,
		tolerance:      e.Tolerance,
		topLevelOffset: e.TopLevelOffset,
	}
}

// Slope 扶梯斜率 dy/dx
func (esc Escalator) Slope() float64 {
	dx := esc.End.X - esc.Start.X
	if dx == 0 {
		return 0
	}
	return (esc.End.Y - esc.Start.Y) / dx
}

// LineY 返回扶梯所在直线在 x 处的 Y 坐标（线性插值，不截断到线段）
func (esc Escalator) LineY(x float64) float64 {
	return esc.Start.Y + esc.Slope()*(x-esc.Start.X)
}

// Contains 角色是否站在扶梯上
//
// X 在扶梯水平跨度内，且 Y 与扶梯线的距离小于容差。
func (esc Escalator) Contains(p components.Vec2) bool {
	return p.X >= esc.Start.X &&
		p.X <= esc.End.X &&
		math.Abs(p.Y-esc.LineY(p.X)) < esc.tolerance
}

// FloorYAt 不在扶梯上时角色应站立的楼层高度
//
// X 超过扶梯顶端附近的阈值时站在二楼，否则站在一楼。
func (esc Escalator) FloorYAt(x float64) float64 {
	if x >= esc.End.X-esc.topLevelOffset {
		return esc.TopFloorY
	}
	return esc.FloorY
}

// Length 扶梯线段长度
func (esc Escalator) Length() float64 {
	return esc.End.Sub(esc.Start).Len()
}

// PointAt 返回线段上进度为 progress 的点（0 为底端，1 为顶端）
func (esc Escalator) PointAt(progress float64) components.Vec2 {
	return components.Lerp(esc.Start, esc.End, progress)
}

// InGoalWindow 位置是否处于终点判定窗口内
func (esc Escalator) InGoalWindow(p components.Vec2, goal config.GoalConfig) bool {
	return p.X >= esc.End.X-goal.OffsetX && p.Y <= esc.End.Y+goal.OffsetY
}

// ClampX 将 X 钳制在 [edgeMargin, width-edgeMargin]
func ClampX(x, edgeMargin float64, vp Viewport) float64 {
	lo := edgeMargin
	hi := vp.Width - edgeMargin
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(hi, x))
}
