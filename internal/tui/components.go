package tui

import (
	"net/url"
	"strings"

	"github.com/tinytelemetry/salesdash/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderBranding renders "Sales!" with a green to light blue gradient
func renderBranding() string {
	colors := []string{
		"#49E209",
		"#35DD2F",
		"#21D955",
		"#0DD47B",
		"#00D0A1",
		"#00CAC7",
	}

	chars := []string{"S", "a", "l", "e", "s", "!"}

	var result string
	for i, char := range chars {
		style := lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(lipgloss.Color(colors[i])).Bold(true)
		result += style.Render(char)
	}

	return result
}

// breadcrumb renders the last few visited pages, oldest first.
func (a *App) breadcrumb(limit int) string {
	hist := a.session.History()
	if len(hist) > limit {
		hist = hist[len(hist)-limit:]
	}
	names := make([]string, len(hist))
	for i, p := range hist {
		names[i] = p.Title()
	}
	return strings.Join(names, " › ")
}

// serviceHost shortens the base URL for the status line.
func serviceHost(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return base
	}
	return u.Host
}

// renderStatusLine renders the status/help line at the bottom of the screen
func (a *App) renderStatusLine(w int) string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	narrow := w < 80
	medium := w < 120

	var leftText string
	switch {
	case narrow:
		leftText = "[" + a.session.Page().Title() + "]"
	case medium:
		leftText = "[" + a.breadcrumb(2) + "]"
	default:
		leftText = "[" + a.breadcrumb(4) + "]"
	}

	bindings := append([]key.Binding{}, a.active().Help()...)
	if !narrow {
		bindings = append(bindings, a.keys.GoHome, a.keys.GoPredict, a.keys.GoForecast)
	}
	bindings = append(bindings, a.keys.ForceQuit)
	statusText := a.help.ShortHelpView(bindings)

	var rightParts []string
	if a.anyPageLoading() {
		loadingStyle := lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorYellow)
		rightParts = append(rightParts, loadingStyle.Render(spinnerFrameNow()+" loading"))
	}
	if a.lastErr != "" {
		errStyle := lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(lipgloss.Color("#FF6666"))
		rightParts = append(rightParts, errStyle.Render("✖ "+a.lastErr))
	}
	if !narrow {
		rightParts = append(rightParts, serviceHost(a.deps.BaseURL))
	}
	if w >= 30 {
		rightParts = append(rightParts, renderBranding())
	}
	rightText := strings.Join(rightParts, "  ")

	leftWidth := lipgloss.Width(leftText) + 2
	rightWidth := lipgloss.Width(rightText) + 2
	if leftWidth+rightWidth >= w {
		if w < 20 {
			return baseStyle.Width(w).Render(leftText)
		}
		leftWidth = min(leftWidth, w/3)
		rightWidth = min(rightWidth, w/3)
	}
	centerWidth := max(0, w-leftWidth-rightWidth)

	leftStyle := baseStyle.Align(lipgloss.Left).Width(leftWidth).MaxHeight(1)
	centerStyle := baseStyle.Align(lipgloss.Center).Width(centerWidth).MaxHeight(1)
	rightStyle := baseStyle.Align(lipgloss.Right).Width(rightWidth).MaxHeight(1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		leftStyle.Render(leftText),
		centerStyle.Render(statusText),
		rightStyle.Render(rightText),
	)
}

// pageHeading is the terminal window title for p.
func pageHeading(p model.Page) string {
	return "Sales Dashboard · " + p.Title()
}
