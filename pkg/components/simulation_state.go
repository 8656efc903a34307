package components

// SimulationState 扶梯模拟的完整状态快照
//
// 按值传递：systems.Update 接收旧状态返回新状态，
// Particles 切片在更新时总是重新分配，旧快照不会被修改。
type SimulationState struct {
	// Started 是否正在推进 tick（Start 置 true，Reset 置 false）
	Started bool

	Position Vec2
	Velocity Vec2

	EscalatorSpeed   float64
	EscalatorRunning bool

	// Angry 角色站在停止的扶梯上
	Angry bool

	// AnimationOffset 台阶动画偏移，始终在 [0, stepCycleLength) 内
	AnimationOffset float64

	// TogglePressed 上一 tick 切换键是否按下（边沿检测记忆）
	TogglePressed bool

	Celebrating bool
	// GoalLatched 本次到达终点已经触发过庆祝，离开终点窗口后复位
	GoalLatched bool
	Particles   []Particle
}

// CloneParticles 返回粒子切片的独立副本
func (s SimulationState) CloneParticles() []Particle {
	if s.Particles == nil {
		return nil
	}
	out := make([]Particle, len(s.Particles))
	copy(out, s.Particles)
	return out
}
