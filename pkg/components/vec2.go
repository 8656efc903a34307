package components

import "math"

// Vec2 二维坐标/速度（像素，屏幕坐标系，Y 轴向下）
type Vec2 struct {
	X float64
	Y float64
}

// Add 返回 v+o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 返回 v-o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 返回 v*k
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len 向量长度
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Lerp 在 a、b 之间线性插值，t 不做截断
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
