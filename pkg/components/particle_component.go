package components

// ConfettiColor 彩纸颜色，取值为调色板下标 [0, 6)
type ConfettiColor uint8

const (
	ConfettiCoral ConfettiColor = iota
	ConfettiTeal
	ConfettiSky
	ConfettiSage
	ConfettiSun
	ConfettiPink

	// ConfettiColorCount 调色板颜色数量
	ConfettiColorCount = 6
)

var confettiColorNames = [ConfettiColorCount]string{
	"coral", "teal", "sky", "sage", "sun", "pink",
}

// String 返回颜色名称
func (c ConfettiColor) String() string {
	if int(c) < len(confettiColorNames) {
		return confettiColorNames[c]
	}
	return "unknown"
}

// Particle 单个庆祝彩纸粒子
//
// 纯数据结构，由 systems.UpdateParticles 每 tick 推进，
// Life <= 0 时被移除。
type Particle struct {
	// Position 左上角坐标（绘制为 4x4 方块）
	Position Vec2
	// Velocity 每 tick 位移，Y 分量每 tick 受重力加速
	Velocity Vec2
	Color    ConfettiColor
	// Life 剩余寿命（tick）
	Life int
}

// Alive 粒子是否仍然存活
func (p Particle) Alive() bool {
	return p.Life > 0
}
