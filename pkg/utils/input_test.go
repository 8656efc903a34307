package utils

import "testing"

func TestDirectionForX(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		width int
		want  PointerDirection
	}{
		{"左侧边缘", 0, 900, DirectionLeft},
		{"左侧三分之一内", 299, 900, DirectionLeft},
		{"中间起点", 300, 900, DirectionNone},
		{"中间", 450, 900, DirectionNone},
		{"右侧起点", 600, 900, DirectionRight},
		{"右侧边缘", 899, 900, DirectionRight},
		{"零宽度", 10, 0, DirectionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirectionForX(tt.x, tt.width); got != tt.want {
				t.Errorf("DirectionForX(%d, %d) = %v, want %v", tt.x, tt.width, got, tt.want)
			}
		})
	}
}
