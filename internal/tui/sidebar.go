package tui

import (
	"fmt"

	"github.com/tinytelemetry/salesdash/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 34

var pageIcons = map[model.Page]string{
	model.PageHome:          "🏠",
	model.PagePredictSales:  "🔮",
	model.PageForecastSales: "📈",
}

// pageKey returns the global jump binding for p.
func (k KeyMap) pageKey(p model.Page) key.Binding {
	switch p {
	case model.PagePredictSales:
		return k.GoPredict
	case model.PageForecastSales:
		return k.GoForecast
	default:
		return k.GoHome
	}
}

func (a *App) buildSidebarLines() []string {
	lines := make([]string, 0, len(model.Pages)+2)
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Navigation"), "")

	for _, pg := range model.Pages {
		label := fmt.Sprintf("  %s %s", pageIcons[pg], pg.Title())
		if a.session.Page() == pg {
			label = fmt.Sprintf("> %s %s", pageIcons[pg], pg.Title())
			label = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true).Render(label)
		}
		hint := helpStyle.Render(" " + a.keys.pageKey(pg).Help().Key)
		lines = append(lines, label+hint)
	}
	return lines
}

// renderSidebar renders page navigation in the left sidebar. Home has none.
func (a *App) renderSidebar(height int) string {
	style := lipgloss.NewStyle().
		Width(sidebarWidth-2).
		Height(height).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Padding(0, 1)

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, a.buildSidebarLines()...))
}

// renderBackHint is the always-present way back to the home page.
func renderBackHint(k KeyMap) string {
	return buttonStyle.Render("🏠 Back to Home") + helpStyle.Render(k.Back.Help().Key)
}
