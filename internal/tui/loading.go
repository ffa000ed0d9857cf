package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 120 * time.Millisecond

// spinnerFrame selects a frame from the wall clock so the indicator animates
// on every re-render without holding frame state.
func spinnerFrame(now time.Time) string {
	return spinnerFrames[now.UnixMilli()/spinnerInterval.Milliseconds()%int64(len(spinnerFrames))]
}

func spinnerFrameNow() string {
	return spinnerFrame(time.Now())
}

// SpinnerTickMsg triggers a re-render for loading spinners.
type SpinnerTickMsg struct{}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(_ time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

// handleSpinnerTick re-schedules spinner ticks while any page is loading.
func (a *App) handleSpinnerTick() tea.Cmd {
	if a.anyPageLoading() {
		return spinnerTick()
	}
	a.spinning = false
	return nil
}

// anyPageLoading returns true if any page has a fetch in flight.
func (a *App) anyPageLoading() bool {
	for _, p := range a.pages {
		if p.Loading() {
			return true
		}
	}
	return false
}

// startSpinnerIfNeeded schedules the first tick when a fetch has just
// started. At most one tick chain runs at a time.
func (a *App) startSpinnerIfNeeded() tea.Cmd {
	if a.spinning || !a.anyPageLoading() {
		return nil
	}
	a.spinning = true
	return spinnerTick()
}
