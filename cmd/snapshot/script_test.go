package main

import (
	"testing"

	"github.com/gonewx/escalator/pkg/config"
	"github.com/gonewx/escalator/pkg/game"
	"github.com/gonewx/escalator/pkg/systems"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name      string
		script    string
		wantSteps int
		wantErr   bool
	}{
		{"单段", "right:10", 1, false},
		{"多段", "right:60, idle:120,toggle:1", 3, false},
		{"组合键", "left+toggle:2", 1, false},
		{"空脚本", "", 0, true},
		{"缺少次数", "right", 0, true},
		{"次数非法", "right:abc", 0, true},
		{"次数为零", "right:0", 0, true},
		{"未知按键", "jump:3", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := ParseScript(tt.script)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScript(%q) error = %v, wantErr %v", tt.script, err, tt.wantErr)
			}
			if len(steps) != tt.wantSteps {
				t.Errorf("got %d steps, want %d", len(steps), tt.wantSteps)
			}
		})
	}
}

func TestRun_ReachesGoal(t *testing.T) {
	steps, err := ParseScript("right:200")
	if err != nil {
		t.Fatal(err)
	}

	session := game.NewSession(config.DefaultSimulationConfig(), systems.Viewport{Width: 1000, Height: 600}, 1)
	session.Start()
	Run(session, steps)

	if session.Ticks() != 200 {
		t.Errorf("ticks = %d, want 200", session.Ticks())
	}
	if !session.State().Celebrating {
		t.Error("walking right for 200 ticks should reach the goal")
	}
	if session.Keys().Len() != 0 {
		t.Error("keys should be released after the script")
	}
}
