package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/escalator/pkg/systems"
)

// keyBindings ebiten 按键到模拟按键标识的映射，其余按键忽略
var keyBindings = map[ebiten.Key]systems.Key{
	ebiten.KeyA:          systems.KeyA,
	ebiten.KeyD:          systems.KeyD,
	ebiten.KeyArrowLeft:  systems.KeyArrowLeft,
	ebiten.KeyArrowRight: systems.KeyArrowRight,
	ebiten.KeySpace:      systems.KeySpace,
}

// shortcut 按钮的键盘快捷键
type shortcut struct {
	key    ebiten.Key
	action ButtonAction
}

var shortcuts = []shortcut{
	{ebiten.KeyEnter, ActionStart},
	{ebiten.KeyR, ActionReset},
	{ebiten.KeyT, ActionToggle},
}

// keyEvents 一帧内的按键沿
type keyEvents struct {
	pressed  []systems.Key
	released []systems.Key
}

// pollKeyboard 读取本帧的按下/抬起沿
func pollKeyboard() keyEvents {
	var ev keyEvents
	for ek, k := range keyBindings {
		if inpututil.IsKeyJustPressed(ek) {
			ev.pressed = append(ev.pressed, k)
		}
		if inpututil.IsKeyJustReleased(ek) {
			ev.released = append(ev.released, k)
		}
	}
	return ev
}

// pollShortcuts 返回本帧触发的快捷键操作
func pollShortcuts() []ButtonAction {
	var actions []ButtonAction
	for _, sc := range shortcuts {
		if inpututil.IsKeyJustPressed(sc.key) {
			actions = append(actions, sc.action)
		}
	}
	return actions
}

// touchKeys 由按住位置推导出的方向键
//
// 触摸左侧三分之一等同按住左方向键，右侧三分之一等同按住右方向键。
type touchKeys struct {
	held map[systems.Key]bool
}

func newTouchKeys() *touchKeys {
	return &touchKeys{held: make(map[systems.Key]bool)}
}

// Sync 把本帧应按住的方向键同步到 keys，只在变化时按下/抬起
func (tk *touchKeys) Sync(keys *systems.KeySet, want map[systems.Key]bool) {
	for k := range tk.held {
		if !want[k] {
			keys.Release(k)
			delete(tk.held, k)
		}
	}
	for k := range want {
		if !tk.held[k] {
			keys.Press(k)
			tk.held[k] = true
		}
	}
}

// Clear 忘记所有触摸按键（会话重置后按键集合已被清空）
func (tk *touchKeys) Clear() {
	for k := range tk.held {
		delete(tk.held, k)
	}
}
