package tui

import (
	"github.com/tinytelemetry/salesdash/internal/model"
	"github.com/tinytelemetry/salesdash/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Page represents a top-level screen in the TUI (home, predict, forecast).
// View must not start requests; fetching happens only from Init and Handle.
type Page interface {
	ID() model.Page
	Init() tea.Cmd                                // runs each time the page becomes active
	Update(msg tea.Msg) (tea.Cmd, *session.Event) // input handling; may emit one event
	Handle(ev session.Event) tea.Cmd              // receives dispatched submit events
	View(width, height int) string
	Loading() bool
	Help() []key.Binding
}
