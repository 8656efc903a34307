// snapshot 无窗口运行扶梯模拟并把某一帧保存为 PNG
//
// 输入脚本是逗号分隔的 "按键:tick数" 序列，按键为 idle/left/right/toggle，
// 例如 "right:60,idle:120,toggle:1,idle:20"。
//
// 用法:
//
//	go run ./cmd/snapshot --script right:200 --out goal.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/gonewx/escalator/pkg/config"
	"github.com/gonewx/escalator/pkg/game"
	"github.com/gonewx/escalator/pkg/render"
	"github.com/gonewx/escalator/pkg/systems"
)

var (
	configPath = flag.String("config", "", "配置文件路径（为空时使用默认配置）")
	script     = flag.String("script", "right:200", "输入脚本")
	outPath    = flag.String("out", "escalator.png", "输出 PNG 路径")
	width      = flag.Int("width", config.GameWindowWidth, "画面宽度")
	height     = flag.Int("height", config.GameWindowHeight, "画面高度")
	seed       = flag.Int64("seed", 1, "彩纸随机种子")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetFlags(0)
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultSimulationConfig()
	if *configPath != "" {
		loaded, err := config.LoadSimulationConfig(*configPath)
		if err != nil {
			log.Fatalf("配置加载失败: %v", err)
		}
		cfg = loaded
	}

	steps, err := ParseScript(*script)
	if err != nil {
		log.Fatalf("脚本解析失败: %v", err)
	}

	session := game.NewSession(cfg, systems.Viewport{Width: float64(*width), Height: float64(*height)}, *seed)
	session.Start()
	log.Printf("[Snapshot] %d steps, %dx%d, seed=%d", len(steps), *width, *height, *seed)

	Run(session, steps)

	surface := render.NewGGSurface(*width, *height)
	systems.Render(surface, session.State(), cfg)
	if err := surface.SavePNG(*outPath); err != nil {
		log.Fatalf("保存失败: %v", err)
	}

	state := session.State()
	fmt.Printf("%d ticks -> %s (x=%.1f y=%.1f footing=%s celebrating=%v confetti=%d)\n",
		session.Ticks(), *outPath, state.Position.X, state.Position.Y,
		session.Footing(), state.Celebrating, len(state.Particles))
}
