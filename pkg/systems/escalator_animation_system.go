package systems

import (
	"math"

	"github.com/gonewx/escalator/pkg/components"
	"github.com/gonewx/escalator/pkg/config"
)

// WrapOffset 将偏移量规范化到 [0, cycle)，负数同样适用
func WrapOffset(offset, cycle float64) float64 {
	if cycle <= 0 {
		return 0
	}
	wrapped := math.Mod(math.Mod(offset, cycle)+cycle, cycle)
	// offset 为极小负数时 Mod(...)+cycle 可能舍入为 cycle
	if wrapped >= cycle {
		wrapped = 0
	}
	return wrapped
}

// stepEscalatorAnimation 推进台阶动画
//
// 运行时偏移量每 tick 减少 speed*AnimationFactor（台阶向上移动），
// 停止时保持不变；无论是否运行都规范化到 [0, stepCycleLength)。
func stepEscalatorAnimation(s components.SimulationState, e config.EscalatorConfig) components.SimulationState {
	if s.EscalatorRunning {
		s.AnimationOffset -= s.EscalatorSpeed * e.AnimationFactor
	}
	s.AnimationOffset = WrapOffset(s.AnimationOffset, e.StepCycleLength)
	return s
}
