package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/escalator/pkg/embedded"
)

func TestDefaultSimulationConfig(t *testing.T) {
	cfg := DefaultSimulationConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Confetti.Count != 50 {
		t.Errorf("expected confetti count 50, got %d", cfg.Confetti.Count)
	}
	if cfg.Escalator.StepCycleLength != 40 {
		t.Errorf("expected step cycle 40, got %f", cfg.Escalator.StepCycleLength)
	}
	if len(cfg.Palette()) != PaletteSize {
		t.Fatalf("expected %d palette colors, got %d", PaletteSize, len(cfg.Palette()))
	}
	want := color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}
	if cfg.Palette()[0] != want {
		t.Errorf("palette[0] = %v, want %v", cfg.Palette()[0], want)
	}
}

func TestParseSimulationConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *SimulationConfig)
	}{
		{
			name: "部分覆盖保留默认值",
			yamlContent: `
character:
  walkSpeed: 5
escalator:
  speed: 4
`,
			validate: func(t *testing.T, cfg *SimulationConfig) {
				if cfg.Character.WalkSpeed != 5 {
					t.Errorf("expected walkSpeed 5, got %f", cfg.Character.WalkSpeed)
				}
				if cfg.Escalator.Speed != 4 {
					t.Errorf("expected escalator speed 4, got %f", cfg.Escalator.Speed)
				}
				if cfg.Character.Friction != 0.8 {
					t.Errorf("expected default friction 0.8, got %f", cfg.Character.Friction)
				}
				if cfg.Labels.VictoryTitle != "VICTORY!" {
					t.Errorf("expected default title, got %q", cfg.Labels.VictoryTitle)
				}
			},
		},
		{
			name:        "空文档",
			yamlContent: ``,
			validate: func(t *testing.T, cfg *SimulationConfig) {
				if cfg.Tick.IntervalMs != 16 {
					t.Errorf("expected 16ms interval, got %d", cfg.Tick.IntervalMs)
				}
			},
		},
		{
			name: "摩擦系数越界",
			yamlContent: `
character:
  friction: 1.2
`,
			wantErr:     true,
			errContains: "friction",
		},
		{
			name: "扶梯起点在终点右侧",
			yamlContent: `
escalator:
  startXRatio: 0.9
  endXRatio: 0.5
`,
			wantErr:     true,
			errContains: "x ratios",
		},
		{
			name: "调色板数量不对",
			yamlContent: `
confetti:
  palette: ["#ffffff", "#000000"]
`,
			wantErr:     true,
			errContains: "palette",
		},
		{
			name: "调色板颜色非法",
			yamlContent: `
confetti:
  palette: ["#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4", "#feca57", "pink"]
`,
			wantErr:     true,
			errContains: "palette[5]",
		},
		{
			name: "寿命范围非法",
			yamlContent: `
confetti:
  lifeMin: 100
  lifeMax: 60
`,
			wantErr:     true,
			errContains: "life range",
		},
		{
			name:        "YAML 语法错误",
			yamlContent: "tick: [",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseSimulationConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadSimulationConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "escalator.yaml")
	content := `
confetti:
  count: 12
  gravity: 0.5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadSimulationConfig(path)
	if err != nil {
		t.Fatalf("LoadSimulationConfig failed: %v", err)
	}
	if cfg.Confetti.Count != 12 {
		t.Errorf("expected count 12, got %d", cfg.Confetti.Count)
	}
	if cfg.Confetti.Gravity != 0.5 {
		t.Errorf("expected gravity 0.5, got %f", cfg.Confetti.Gravity)
	}
}

func TestLoadSimulationConfig_Missing(t *testing.T) {
	_, err := LoadSimulationConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadSimulationConfig_ShippedFile(t *testing.T) {
	cfg, err := LoadSimulationConfig(filepath.Join("..", "..", "data", "escalator.yaml"))
	if err != nil {
		t.Fatalf("shipped config should load: %v", err)
	}
	def := DefaultSimulationConfig()
	if cfg.Escalator != def.Escalator {
		t.Errorf("shipped escalator config differs from defaults: %+v vs %+v", cfg.Escalator, def.Escalator)
	}
	if cfg.Character != def.Character {
		t.Errorf("shipped character config differs from defaults: %+v vs %+v", cfg.Character, def.Character)
	}
}

func TestTicksPerSecond(t *testing.T) {
	tests := []struct {
		interval int
		want     int
	}{
		{16, 62},
		{10, 100},
		{2000, 1},
	}
	for _, tt := range tests {
		cfg := DefaultSimulationConfig()
		cfg.Tick.IntervalMs = tt.interval
		if got := cfg.TicksPerSecond(); got != tt.want {
			t.Errorf("TicksPerSecond(%d) = %d, want %d", tt.interval, got, tt.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#1a237e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (color.RGBA{R: 0x1a, G: 0x23, B: 0x7e, A: 0xff}) {
		t.Errorf("unexpected color %v", c)
	}
	if _, err := ParseHexColor("blue"); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestLoadEmbeddedSimulationConfig(t *testing.T) {
	embedded.Init(os.DirFS("../.."))
	defer embedded.Init(nil)

	cfg, err := LoadEmbeddedSimulationConfig()
	if err != nil {
		t.Fatalf("LoadEmbeddedSimulationConfig failed: %v", err)
	}
	if cfg.Confetti.Count != 50 {
		t.Errorf("confetti count = %d, want 50", cfg.Confetti.Count)
	}

	embedded.Init(nil)
	if _, err := LoadEmbeddedSimulationConfig(); err == nil {
		t.Error("expected an error before embedded.Init")
	}
}
