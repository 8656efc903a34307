package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gonewx/escalator/pkg/game"
	"github.com/gonewx/escalator/pkg/systems"
)

// Step 脚本中的一段：按住 Keys 推进 Ticks 个 tick
type Step struct {
	Keys  []systems.Key
	Ticks int
}

var scriptKeys = map[string][]systems.Key{
	"idle":   nil,
	"left":   {systems.KeyArrowLeft},
	"right":  {systems.KeyArrowRight},
	"toggle": {systems.KeySpace},
}

// ParseScript 解析 "按键:tick数,按键:tick数" 形式的输入脚本
//
// 按键可以用 "+" 组合，如 "right+toggle:1"。
func ParseScript(s string) ([]Step, error) {
	var steps []Step
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, count, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("step %q: missing ':<ticks>'", part)
		}
		ticks, err := strconv.Atoi(count)
		if err != nil || ticks <= 0 {
			return nil, fmt.Errorf("step %q: invalid tick count", part)
		}

		var keys []systems.Key
		for _, k := range strings.Split(name, "+") {
			mapped, known := scriptKeys[strings.ToLower(strings.TrimSpace(k))]
			if !known {
				return nil, fmt.Errorf("step %q: unknown key %q", part, k)
			}
			keys = append(keys, mapped...)
		}
		steps = append(steps, Step{Keys: keys, Ticks: ticks})
	}

	if len(steps) == 0 {
		return nil, fmt.Errorf("empty script")
	}
	return steps, nil
}

// Run 依次执行脚本；每段开始时按下该段的键，结束时全部抬起
func Run(session *game.Session, steps []Step) {
	for _, step := range steps {
		for _, k := range step.Keys {
			session.Press(k)
		}
		for i := 0; i < step.Ticks; i++ {
			session.Tick()
		}
		for _, k := range step.Keys {
			session.Release(k)
		}
	}
}
