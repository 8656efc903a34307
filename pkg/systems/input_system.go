package systems

import "strings"

// Key 逻辑按键标识（小写，与浏览器 KeyboardEvent.key 的小写形式一致）
type Key string

const (
	KeyA          Key = "a"
	KeyD          Key = "d"
	KeyArrowLeft  Key = "arrowleft"
	KeyArrowRight Key = "arrowright"
	KeySpace      Key = " "
)

// 固定按键绑定：每个移动动作绑定两个物理键，切换扶梯绑定一个
var (
	leftKeys   = []Key{KeyA, KeyArrowLeft}
	rightKeys  = []Key{KeyD, KeyArrowRight}
	toggleKeys = []Key{KeySpace}
)

// NormalizeKey 将按键名称规范化为小写
func NormalizeKey(name string) Key {
	return Key(strings.ToLower(name))
}

// Input 一个 tick 开始时采样到的输入快照
type Input struct {
	Left   bool
	Right  bool
	Toggle bool
}

// KeySet 当前按住的按键集合
//
// key-down 添加，key-up 删除，重复的 key-down 是幂等的。
// 不做防抖。非绑定按键也会被记录，但 Snapshot 只读取绑定按键。
type KeySet struct {
	held map[Key]struct{}
}

// NewKeySet 创建空的按键集合
func NewKeySet() *KeySet {
	return &KeySet{held: make(map[Key]struct{})}
}

// Press 记录按键按下
func (ks *KeySet) Press(k Key) {
	ks.held[k] = struct{}{}
}

// Release 记录按键抬起
func (ks *KeySet) Release(k Key) {
	delete(ks.held, k)
}

// Clear 抬起所有按键（窗口失焦、重置时使用）
func (ks *KeySet) Clear() {
	for k := range ks.held {
		delete(ks.held, k)
	}
}

// Held 按键是否处于按下状态
func (ks *KeySet) Held(k Key) bool {
	_, ok := ks.held[k]
	return ok
}

// Len 当前按下的按键数量
func (ks *KeySet) Len() int {
	return len(ks.held)
}

// Snapshot 读取一次绑定动作的按下状态
func (ks *KeySet) Snapshot() Input {
	return Input{
		Left:   ks.anyHeld(leftKeys),
		Right:  ks.anyHeld(rightKeys),
		Toggle: ks.anyHeld(toggleKeys),
	}
}

func (ks *KeySet) anyHeld(keys []Key) bool {
	for _, k := range keys {
		if ks.Held(k) {
			return true
		}
	}
	return false
}

// EdgeDetector 离散输入边沿检测器
//
// 只有"本 tick 按下且上一 tick 未按下"时 Fire 返回 true，
// 按住不放不会重复触发。
type EdgeDetector struct {
	Previous bool
}

// Fire 输入当前按键状态，返回是否为按下沿
func (d *EdgeDetector) Fire(heldNow bool) bool {
	fired := heldNow && !d.Previous
	d.Previous = heldNow
	return fired
}
