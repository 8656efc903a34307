package config

// 布局配置常量
// 本文件定义了场景中与视口无关的布局参数：默认窗口、按钮、角色精灵尺寸等。
// 与视口相关的扶梯几何在 SimulationConfig 中按比例配置。

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 默认窗口宽度（与原版画布后备尺寸一致）
	GameWindowWidth = 1000

	// GameWindowHeight 默认窗口高度
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Escalator"
)

// Button Configuration (按钮配置)
// 按钮锚定在视口左上角/右上角，距离边缘 ButtonMargin
const (
	ButtonMargin = 16.0
	ButtonHeight = 40.0

	// StartButtonWidth "Start Mission" / "Reset Mission" 按钮宽度
	StartButtonWidth = 150.0

	// ToggleButtonWidth "STOP ESCALATOR" / "START ESCALATOR" 按钮宽度
	ToggleButtonWidth = 180.0

	ButtonFontSize = 16.0
)

// Escalator Rendering (扶梯绘制参数)
const (
	StepWidth   = 30.0
	StepSpacing = 40.0
	// StepExtra 台阶数量在覆盖整段扶梯之外额外多画的数量，保证动画平滑
	StepExtra = 3

	HandrailOffset = 10.0
	HandrailWidth  = 6.0
)

// Goal Marker (终点标志)
const (
	SignWidth    = 200.0
	SignHeight   = 60.0
	SignOffsetX  = 100.0 // 标志左边缘 = end.X - SignOffsetX
	SignOffsetY  = 80.0  // 标志上边缘 = end.Y - SignOffsetY
	SignFontSize = 16.0
)

// Celebration Overlay (庆祝文字)
const (
	ParticleSize       = 4.0
	VictoryTitleY      = 100.0
	VictoryTitleSize   = 32.0
	VictoryMessageY    = 140.0
	VictoryMessageSize = 20.0
)
