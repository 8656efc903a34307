package tui

import "github.com/gonewx/escalator/pkg/systems"

// DefaultHoldTicks 没有重复事件时按键保持按下的 tick 数
//
// 终端自动重复的首次延迟通常在 250~500ms，取略大于它的值，
// 松开按键后角色最多再多走这么多 tick。
const DefaultHoldTicks = 30

// HoldTracker 把终端的重复按键事件转换为按住/抬起
//
// 每次按键（包括自动重复）把该键的剩余时间重置为 hold 个 tick；
// 倒计时归零时视为抬起。
type HoldTracker struct {
	hold      int
	remaining map[systems.Key]int
}

// NewHoldTracker 创建按键保持跟踪器，hold <= 0 时使用 DefaultHoldTicks
func NewHoldTracker(hold int) *HoldTracker {
	if hold <= 0 {
		hold = DefaultHoldTicks
	}
	return &HoldTracker{
		hold:      hold,
		remaining: make(map[systems.Key]int),
	}
}

// Press 按下（或重复）一个键
func (h *HoldTracker) Press(keys *systems.KeySet, k systems.Key) {
	keys.Press(k)
	h.remaining[k] = h.hold
}

// Tick 推进倒计时，释放超时的键
func (h *HoldTracker) Tick(keys *systems.KeySet) {
	for k, n := range h.remaining {
		n--
		if n <= 0 {
			keys.Release(k)
			delete(h.remaining, k)
			continue
		}
		h.remaining[k] = n
	}
}

// Clear 忘记所有按住的键
func (h *HoldTracker) Clear() {
	for k := range h.remaining {
		delete(h.remaining, k)
	}
}

// Held 返回当前按住的键数
func (h *HoldTracker) Held() int {
	return len(h.remaining)
}
