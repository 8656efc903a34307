// Package tui 提供扶梯模拟的终端前端（bubbletea）
//
// 场景通过 render.CellSurface 绘制成半块字符画，底部一行 lipgloss 状态栏。
// 终端只有按键按下事件、没有抬起事件，按住由 HoldTracker 用自动重复模拟。
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg 驱动一个模拟 tick
type TickMsg time.Time

// tickCmd 按固定间隔发送 TickMsg
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
