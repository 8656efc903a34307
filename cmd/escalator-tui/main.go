// escalator-tui 在终端里运行扶梯模拟
//
// 用法:
//
//	go run ./cmd/escalator-tui [--hold 30] [--log tui.log] [--autostart] [--seed 42]
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gonewx/escalator/pkg/config"
	"github.com/gonewx/escalator/pkg/game"
	"github.com/gonewx/escalator/pkg/systems"
	"github.com/gonewx/escalator/pkg/tui"
)

var (
	configPath = flag.String("config", "data/escalator.yaml", "配置文件路径（不存在时使用默认配置）")
	holdTicks  = flag.Int("hold", tui.DefaultHoldTicks, "终端按键无重复时保持按下的 tick 数")
	logPath    = flag.String("log", "", "日志文件路径（为空时丢弃日志）")
	autoStart  = flag.Bool("autostart", false, "启动后直接开始")
	seed       = flag.Int64("seed", 0, "彩纸随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	// 终端本身是显示区域，日志只能写文件
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "escalator")
		if err != nil {
			log.Fatalf("无法打开日志文件: %v", err)
		}
		defer f.Close()
	}

	cfg, err := config.LoadSimulationConfig(*configPath)
	if err != nil {
		log.Printf("[TUI] %v, using defaults", err)
		cfg = config.DefaultSimulationConfig()
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	session := game.NewSession(cfg, systems.Viewport{Width: config.GameWindowWidth, Height: config.GameWindowHeight}, s)
	if *autoStart {
		session.Start()
	}

	p := tea.NewProgram(tui.NewModel(session, *holdTicks), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		// 日志可能被丢弃，错误直接写 stderr
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
