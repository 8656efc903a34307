package systems

import (
	"math/rand"

	"github.com/gonewx/escalator/pkg/components"
	"github.com/gonewx/escalator/pkg/config"
)

// Env 一个 tick 所需的外部环境（只读配置、视口、随机源）
type Env struct {
	Config   *config.SimulationConfig
	Viewport Viewport
	// Rand 彩纸随机源；为 nil 时 SpawnConfetti 使用固定种子
	Rand *rand.Rand
}

func (env Env) viewport() Viewport {
	return env.Viewport.Sanitized(env.Config.Character.EdgeMargin)
}

// NewState 返回挂载/重置时的默认状态
//
// 角色站在一楼地面 (StartX, floorY)，速度为零，扶梯运行中，未开始推进。
func NewState(cfg *config.SimulationConfig, vp Viewport) components.SimulationState {
	esc := NewEscalator(cfg, vp)
	return components.SimulationState{
		Started:          false,
		Position:         components.Vec2{X: cfg.Character.StartX, Y: esc.FloorY},
		Velocity:         components.Vec2{},
		EscalatorSpeed:   cfg.Escalator.Speed,
		EscalatorRunning: true,
	}
}

// Update 推进模拟一个 tick：update(state, input) -> state
//
// 纯函数：不修改 prev（粒子切片总是重新分配），不读取任何全局状态。
// 未开始（Started=false）时原样返回。
//
// 单个 tick 的顺序：
//  1. 用移动前的位置判定站立状态（整个 tick 使用同一判定）
//  2. 方向键/摩擦 -> 速度；切换键边沿检测；X 积分并钳制；Y 贴合地面或扶梯
//  3. 台阶动画偏移
//  4. 生气状态
//  5. 扶梯输送位移与终点判定（可能生成彩纸）
//  6. 彩纸粒子推进
func Update(prev components.SimulationState, in Input, env Env) components.SimulationState {
	if !prev.Started {
		return prev
	}

	s := prev
	s.Particles = prev.CloneParticles()

	esc := NewEscalator(env.Config, env.Viewport)
	footing := Classify(esc, s.Position)

	s = stepMovement(s, in, footing, esc, env)
	s = stepEscalatorAnimation(s, env.Config.Escalator)
	s.Angry = IsAngry(footing, s.EscalatorRunning)
	s = stepConveyance(s, footing, esc, env)
	s = stepCelebration(s, env.Config.Confetti)

	return s
}
