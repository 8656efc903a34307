package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/escalator/pkg/embedded"
)

// SimulationConfigPath 嵌入资源中的配置文件路径
const SimulationConfigPath = "data/escalator.yaml"

// SimulationConfig 扶梯模拟的全部可调参数
//
// 所有速度、距离都以"像素/tick"或"像素"为单位，模拟按固定 tick 推进，
// 不使用 deltaTime 缩放。
//
// 配置文件位置: data/escalator.yaml
type SimulationConfig struct {
	Tick      TickConfig      `yaml:"tick"`
	Character CharacterConfig `yaml:"character"`
	Escalator EscalatorConfig `yaml:"escalator"`
	Goal      GoalConfig      `yaml:"goal"`
	Confetti  ConfettiConfig  `yaml:"confetti"`
	Labels    LabelConfig     `yaml:"labels"`

	// palette 是 Confetti.Palette 解析后的颜色，由 Validate 填充
	palette []color.RGBA
}

// TickConfig 调度节拍配置
type TickConfig struct {
	// IntervalMs 两次 tick 之间的墙钟间隔（毫秒）
	IntervalMs int `yaml:"intervalMs"`
}

// CharacterConfig 角色移动配置
type CharacterConfig struct {
	// WalkSpeed 按住方向键时的水平速度（像素/tick）
	WalkSpeed float64 `yaml:"walkSpeed"`
	// Friction 无方向键时每 tick 的速度衰减系数
	Friction float64 `yaml:"friction"`
	// EdgeMargin 角色 X 坐标距离视口左右边缘的最小距离
	EdgeMargin float64 `yaml:"edgeMargin"`
	// StartX 初始 X 坐标（Y 由地面高度决定）
	StartX float64 `yaml:"startX"`
}

// EscalatorConfig 扶梯几何与运行配置
//
// 几何按视口比例计算：
//
//	start = (width*StartXRatio, height-BottomInset)
//	end   = (width*EndXRatio,   height*EndYRatio)
type EscalatorConfig struct {
	Speed       float64 `yaml:"speed"`
	StartXRatio float64 `yaml:"startXRatio"`
	EndXRatio   float64 `yaml:"endXRatio"`
	BottomInset float64 `yaml:"bottomInset"`
	EndYRatio   float64 `yaml:"endYRatio"`
	Width       float64 `yaml:"width"`

	// Tolerance 判定角色是否站在扶梯上的纵向容差
	Tolerance float64 `yaml:"tolerance"`
	// TopLevelOffset 角色 X 超过 end.X-TopLevelOffset 时站在二楼
	TopLevelOffset float64 `yaml:"topLevelOffset"`

	// StepCycleLength 台阶动画的循环长度（台阶间距）
	StepCycleLength float64 `yaml:"stepCycleLength"`
	// AnimationFactor 每 tick 动画偏移量 = Speed*AnimationFactor
	AnimationFactor float64 `yaml:"animationFactor"`
	// DriftFactor 每 tick 输送位移 = Speed*DriftFactor
	DriftFactor float64 `yaml:"driftFactor"`
}

// GoalConfig 终点判定窗口（相对扶梯顶端）
type GoalConfig struct {
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
}

// ConfettiConfig 庆祝彩纸粒子配置
type ConfettiConfig struct {
	Count       int      `yaml:"count"`
	Gravity     float64  `yaml:"gravity"`
	SpeedSpread float64  `yaml:"speedSpread"`
	UpwardBias  float64  `yaml:"upwardBias"`
	LifeMin     int      `yaml:"lifeMin"`
	LifeMax     int      `yaml:"lifeMax"`
	Palette     []string `yaml:"palette"`
}

// LabelConfig 场景中出现的文字
type LabelConfig struct {
	Sign           string `yaml:"sign"`
	VictoryTitle   string `yaml:"victoryTitle"`
	VictoryMessage string `yaml:"victoryMessage"`
}

// PaletteSize 彩纸颜色数量
const PaletteSize = 6

// DefaultSimulationConfig 返回内置默认配置
func DefaultSimulationConfig() *SimulationConfig {
	cfg := &SimulationConfig{
		Tick: TickConfig{IntervalMs: 16},
		Character: CharacterConfig{
			WalkSpeed:  3,
			Friction:   0.8,
			EdgeMargin: 20,
			StartX:     50,
		},
		Escalator: EscalatorConfig{
			Speed:           2,
			StartXRatio:     0.2,
			EndXRatio:       0.8,
			BottomInset:     50,
			EndYRatio:       0.3,
			Width:           80,
			Tolerance:       30,
			TopLevelOffset:  50,
			StepCycleLength: 40,
			AnimationFactor: 0.5,
			DriftFactor:     0.8,
		},
		Goal: GoalConfig{OffsetX: 50, OffsetY: 50},
		Confetti: ConfettiConfig{
			Count:       50,
			Gravity:     0.2,
			SpeedSpread: 8,
			UpwardBias:  2,
			LifeMin:     60,
			LifeMax:     100,
			Palette:     []string{"#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4", "#feca57", "#ff9ff3"},
		},
		Labels: LabelConfig{
			Sign:           "UNITED NATIONS",
			VictoryTitle:   "VICTORY!",
			VictoryMessage: "Trump has reached the UN!",
		},
	}
	// 默认值一定合法
	_ = cfg.Validate()
	return cfg
}

// ParseSimulationConfig 解析 YAML 配置
//
// 未出现在 YAML 中的字段保留默认值。
//
// 参数:
//   - data: YAML 文本
//
// 返回:
//   - *SimulationConfig: 校验通过的配置
//   - error: 解析或校验失败
func ParseSimulationConfig(data []byte) (*SimulationConfig, error) {
	cfg := DefaultSimulationConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	return cfg, nil
}

// LoadSimulationConfig 从磁盘加载配置文件
//
// 参数:
//   - path: 配置文件路径（如 "data/escalator.yaml"）
func LoadSimulationConfig(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}
	return ParseSimulationConfig(data)
}

// LoadEmbeddedSimulationConfig 从嵌入资源加载 data/escalator.yaml
//
// 需要先调用 embedded.Init()。
func LoadEmbeddedSimulationConfig() (*SimulationConfig, error) {
	data, err := embedded.ReadFile(SimulationConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded simulation config: %w", err)
	}
	return ParseSimulationConfig(data)
}

// Validate 验证配置有效性并解析调色板
//
// 检查：
//   - 速度、间隔等为正数
//   - 扶梯起点在终点左侧
//   - 摩擦系数在 [0, 1) 内，保证松开按键后速度衰减
//   - 彩纸寿命范围合法，调色板恰好 6 个合法十六进制颜色
func (c *SimulationConfig) Validate() error {
	if c.Tick.IntervalMs <= 0 {
		return fmt.Errorf("tick interval must be positive, got %d", c.Tick.IntervalMs)
	}

	if c.Character.WalkSpeed <= 0 {
		return fmt.Errorf("walk speed must be positive, got %.2f", c.Character.WalkSpeed)
	}
	if c.Character.Friction < 0 || c.Character.Friction >= 1 {
		return fmt.Errorf("friction must be in [0, 1), got %.2f", c.Character.Friction)
	}
	if c.Character.EdgeMargin < 0 {
		return fmt.Errorf("edge margin must be >= 0, got %.1f", c.Character.EdgeMargin)
	}

	e := c.Escalator
	if e.Speed < 0 {
		return fmt.Errorf("escalator speed must be >= 0, got %.2f", e.Speed)
	}
	if e.StartXRatio < 0 || e.EndXRatio > 1 || e.StartXRatio >= e.EndXRatio {
		return fmt.Errorf("escalator x ratios invalid: start(%.2f) end(%.2f)", e.StartXRatio, e.EndXRatio)
	}
	if e.EndYRatio < 0 || e.EndYRatio > 1 {
		return fmt.Errorf("escalator endYRatio must be in [0, 1], got %.2f", e.EndYRatio)
	}
	if e.StepCycleLength <= 0 {
		return fmt.Errorf("step cycle length must be positive, got %.1f", e.StepCycleLength)
	}
	if e.Tolerance <= 0 {
		return fmt.Errorf("escalator tolerance must be positive, got %.1f", e.Tolerance)
	}

	f := c.Confetti
	if f.Count <= 0 {
		return fmt.Errorf("confetti count must be positive, got %d", f.Count)
	}
	if f.LifeMin <= 0 || f.LifeMax <= f.LifeMin {
		return fmt.Errorf("confetti life range invalid: min(%d) max(%d)", f.LifeMin, f.LifeMax)
	}
	if len(f.Palette) != PaletteSize {
		return fmt.Errorf("confetti palette must have %d colors, got %d", PaletteSize, len(f.Palette))
	}

	palette := make([]color.RGBA, 0, len(f.Palette))
	for i, hex := range f.Palette {
		parsed, err := ParseHexColor(hex)
		if err != nil {
			return fmt.Errorf("confetti palette[%d]: %w", i, err)
		}
		palette = append(palette, parsed)
	}
	c.palette = palette

	return nil
}

// Palette 返回解析后的彩纸调色板
// 必须在 Validate 成功之后调用
func (c *SimulationConfig) Palette() []color.RGBA {
	return c.palette
}

// TickIntervalMs 返回 tick 间隔
func (c *SimulationConfig) TickIntervalMs() int {
	return c.Tick.IntervalMs
}

// TicksPerSecond 由 tick 间隔换算出 ebiten 的 TPS
func (c *SimulationConfig) TicksPerSecond() int {
	tps := 1000 / c.Tick.IntervalMs
	if tps < 1 {
		return 1
	}
	return tps
}

// ParseHexColor 解析 "#rrggbb" 颜色
func ParseHexColor(hex string) (color.RGBA, error) {
	parsed, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := parsed.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustHexColor 用于包内常量颜色，解析失败时 panic
func MustHexColor(hex string) color.RGBA {
	c, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
