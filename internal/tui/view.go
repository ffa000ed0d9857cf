package tui

import (
	"github.com/tinytelemetry/salesdash/internal/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth  = 60
	minHeight = 16
)

// contentWidth returns the width available for the page, accounting for sidebar.
func (a *App) contentWidth() int {
	if a.sidebarVisible() {
		return a.width - sidebarWidth
	}
	return a.width
}

func (a *App) sidebarVisible() bool {
	return a.session.Page() != model.PageHome
}

// View renders the active page. It is a pure function of the current state;
// rendering never starts a request.
func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "Initializing dashboard..."
	}
	if a.height < minHeight || a.width < minWidth {
		return "Terminal too small. Resize to at least 60x16."
	}

	contentWidth := a.contentWidth()
	statusLineHeight := 1
	pageHeight := a.height - statusLineHeight

	page := lipgloss.NewStyle().
		Width(contentWidth).
		Height(pageHeight).
		MaxHeight(pageHeight).
		Render(a.active().View(contentWidth, pageHeight))

	contentArea := lipgloss.JoinVertical(lipgloss.Left, page, a.renderStatusLine(contentWidth))

	if !a.sidebarVisible() {
		return contentArea
	}
	sidebar := a.renderSidebar(a.height - 2)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, contentArea)
}
