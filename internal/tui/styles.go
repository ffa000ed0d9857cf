package tui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorNavy   = lipgloss.Color("#1E2A44")
	ColorBlue   = lipgloss.Color("39")
	ColorGreen  = lipgloss.Color("42")
	ColorYellow = lipgloss.Color("220")
	ColorRed    = lipgloss.Color("196")
	ColorGray   = lipgloss.Color("245")
	ColorWhite  = lipgloss.Color("15")
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(ColorWhite).MarginBottom(1)
	sectionStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorGray).Padding(0, 1)
	chartTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	labelStyle      = lipgloss.NewStyle().Foreground(ColorGray).Width(22)
	helpStyle       = lipgloss.NewStyle().Foreground(ColorGray)
	successStyle    = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	errorStyle      = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	buttonStyle     = lipgloss.NewStyle().Foreground(ColorWhite).Background(ColorNavy).Padding(0, 2).MarginRight(2)
)
