package systems

import (
	"math/rand"

	"github.com/gonewx/escalator/pkg/components"
	"github.com/gonewx/escalator/pkg/config"
)

// SpawnConfetti 在 origin 处生成一批庆祝彩纸
//
// 随机源由调用方注入，固定种子可复现同一批粒子。
//
// 参数:
//   - rng: 随机源，为 nil 时使用固定种子 1
//   - c: 彩纸配置（数量、速度范围、寿命范围）
//   - origin: 生成位置（角色当前位置）
//
// 返回:
//   - []components.Particle: 恰好 c.Count 个粒子
//     vx ∈ [-spread/2, spread/2)
//     vy ∈ [-spread/2-bias, spread/2-bias)
//     life ∈ [LifeMin, LifeMax)
func SpawnConfetti(rng *rand.Rand, c config.ConfettiConfig, origin components.Vec2) []components.Particle {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	lifeSpan := c.LifeMax - c.LifeMin
	if lifeSpan < 1 {
		lifeSpan = 1
	}

	particles := make([]components.Particle, 0, c.Count)
	for i := 0; i < c.Count; i++ {
		particles = append(particles, components.Particle{
			Position: origin,
			Velocity: components.Vec2{
				X: (rng.Float64() - 0.5) * c.SpeedSpread,
				// 略微向上偏
				Y: (rng.Float64()-0.5)*c.SpeedSpread - c.UpwardBias,
			},
			Color: components.ConfettiColor(rng.Intn(components.ConfettiColorCount)),
			Life:  c.LifeMin + rng.Intn(lifeSpan),
		})
	}
	return particles
}

// UpdateParticles 推进所有粒子一个 tick 并移除死亡粒子
//
// 位置按速度积分，纵向速度加上重力，寿命减一。
// 返回新切片，不修改输入。
func UpdateParticles(particles []components.Particle, gravity float64) []components.Particle {
	alive := make([]components.Particle, 0, len(particles))
	for _, p := range particles {
		p.Position = p.Position.Add(p.Velocity)
		p.Velocity.Y += gravity
		p.Life--
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	return alive
}

// stepCelebration 庆祝期间推进粒子，粒子全部消失时结束庆祝
func stepCelebration(s components.SimulationState, c config.ConfettiConfig) components.SimulationState {
	if !s.Celebrating {
		return s
	}

	s.Particles = UpdateParticles(s.Particles, c.Gravity)
	if len(s.Particles) == 0 {
		s.Celebrating = false
		s.Particles = nil
	}
	return s
}
