package systems

import (
	"github.com/gonewx/escalator/pkg/components"
	"github.com/gonewx/escalator/pkg/config"
)

// Footing 角色当前的站立状态
type Footing int

const (
	// FootingFloor 站在一楼或二楼地面
	FootingFloor Footing = iota
	// FootingEscalator 站在扶梯上
	FootingEscalator
)

// String 返回站立状态名称
func (f Footing) String() string {
	switch f {
	case FootingEscalator:
		return "ON_ESCALATOR"
	default:
		return "ON_FLOOR"
	}
}

// Classify 根据移动前的位置判定站立状态
func Classify(esc Escalator, p components.Vec2) Footing {
	if esc.Contains(p) {
		return FootingEscalator
	}
	return FootingFloor
}

// WalkVelocity 由方向键计算新的水平速度
//
// 左键优先于右键；没有方向键时按摩擦系数衰减。
func WalkVelocity(vx float64, in Input, c config.CharacterConfig) float64 {
	switch {
	case in.Left:
		return -c.WalkSpeed
	case in.Right:
		return c.WalkSpeed
	default:
		return vx * c.Friction
	}
}

// IsAngry 角色站在停止的扶梯上时生气
func IsAngry(footing Footing, running bool) bool {
	return footing == FootingEscalator && !running
}

// stepMovement 位置更新状态机：速度、切换键、积分、楼层/扶梯约束
//
// footing 是本 tick 开始时（移动前）判定的站立状态，整个 tick 内不变。
func stepMovement(s components.SimulationState, in Input, footing Footing, esc Escalator, env Env) components.SimulationState {
	char := env.Config.Character

	s.Velocity.X = WalkVelocity(s.Velocity.X, in, char)
	// 地面和扶梯上都没有纵向运动
	s.Velocity.Y = 0

	if footing == FootingFloor {
		s.Position.Y = esc.FloorYAt(s.Position.X)
	}

	edge := EdgeDetector{Previous: s.TogglePressed}
	if edge.Fire(in.Toggle) {
		s.EscalatorRunning = !s.EscalatorRunning
	}
	s.TogglePressed = edge.Previous

	s.Position.X += s.Velocity.X
	s.Position.X = ClampX(s.Position.X, char.EdgeMargin, env.viewport())

	if footing == FootingEscalator {
		s.Position.Y = esc.LineY(s.Position.X)
	} else {
		s.Position.Y = esc.FloorYAt(s.Position.X)
	}

	return s
}

// stepConveyance 扶梯运行时的输送位移与终点判定
//
// 输送位移与玩家速度无关，只在角色站在运行中的扶梯上时生效。
func stepConveyance(s components.SimulationState, footing Footing, esc Escalator, env Env) components.SimulationState {
	cfg := env.Config

	if footing == FootingEscalator && s.EscalatorRunning {
		s.Position.X += s.EscalatorSpeed * cfg.Escalator.DriftFactor
		s.Position.X = ClampX(s.Position.X, cfg.Character.EdgeMargin, env.viewport())
		s.Position.Y = esc.LineY(s.Position.X)

		if esc.InGoalWindow(s.Position, cfg.Goal) && !s.Celebrating && !s.GoalLatched {
			s.Celebrating = true
			s.GoalLatched = true
			s.Particles = SpawnConfetti(env.Rand, cfg.Confetti, s.Position)
		}
	}

	if !esc.InGoalWindow(s.Position, cfg.Goal) {
		s.GoalLatched = false
	}

	return s
}
