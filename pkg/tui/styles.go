package tui

import "github.com/charmbracelet/lipgloss"

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")).Bold(true)
	stoppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	angryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6666")).Bold(true)
	victoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd700")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
