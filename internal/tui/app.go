package tui

import (
	"github.com/tinytelemetry/salesdash/internal/model"
	"github.com/tinytelemetry/salesdash/internal/salesapi"
	"github.com/tinytelemetry/salesdash/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// App is the top-level Bubble Tea model. It owns the session and routes
// every user action through session.Dispatch before touching a page.
type App struct {
	session *session.Session
	pages   map[model.Page]Page
	deps    Deps
	keys    KeyMap
	help    help.Model

	width    int
	height   int
	spinning bool
	lastErr  string
}

// NewApp creates the dashboard with its three pages, starting on Home.
func NewApp(deps Deps) *App {
	deps = deps.withDefaults()
	a := &App{
		session: session.New(),
		deps:    deps,
		keys:    deps.Keys,
		help:    help.New(),
	}
	a.pages = map[model.Page]Page{
		model.PageHome:          newHomePage(deps),
		model.PagePredictSales:  newPredictPage(deps),
		model.PageForecastSales: newForecastPage(deps),
	}
	return a
}

// Session exposes the page state, mainly for tests and the status line.
func (a *App) Session() *session.Session {
	return a.session
}

func (a *App) active() Page {
	return a.pages[a.session.Page()]
}

func (a *App) Init() tea.Cmd {
	return a.after(tea.Batch(a.active().Init(), tea.SetWindowTitle(pageHeading(a.session.Page()))), nil)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case SpinnerTickMsg:
		return a, a.handleSpinnerTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.ForceQuit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.GoHome):
			return a, a.after(nil, emit(session.NavigateTo(model.PageHome)))
		case key.Matches(msg, a.keys.GoPredict):
			return a, a.after(nil, emit(session.NavigateTo(model.PagePredictSales)))
		case key.Matches(msg, a.keys.GoForecast):
			return a, a.after(nil, emit(session.NavigateTo(model.PageForecastSales)))
		}
		if a.session.Page() == model.PageHome && key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}

	case pageMsg:
		// Results go to the page that asked, even if the user moved on.
		a.noteResult(msg)
		p := a.pages[msg.targetPage()]
		cmd, ev := p.Update(msg)
		return a, a.after(cmd, ev)
	}

	cmd, ev := a.active().Update(msg)
	return a, a.after(cmd, ev)
}

// after dispatches ev (if any) and starts the spinner when a fetch began.
func (a *App) after(cmd tea.Cmd, ev *session.Event) tea.Cmd {
	cmds := []tea.Cmd{cmd}
	if ev != nil {
		cmds = append(cmds, a.dispatch(*ev))
	}
	cmds = append(cmds, a.startSpinnerIfNeeded())
	return tea.Batch(cmds...)
}

// dispatch is the single entry point for user events.
func (a *App) dispatch(ev session.Event) tea.Cmd {
	changed, err := a.session.Dispatch(ev)
	if err != nil {
		a.deps.Logger.Warn("event rejected", "action", ev.Action.String(), "error", err)
		return nil
	}
	a.deps.Logger.Debug("event", "action", ev.Action.String(), "page", a.session.Page().String())

	if ev.Action == session.ActionNavigate {
		if !changed {
			return nil
		}
		return tea.Batch(a.active().Init(), tea.SetWindowTitle(pageHeading(a.session.Page())))
	}
	return a.active().Handle(ev)
}

func (a *App) noteResult(msg pageMsg) {
	var err error
	switch m := msg.(type) {
	case infoLoadedMsg:
		err = m.err
	case predictionLoadedMsg:
		err = m.err
	case forecastLoadedMsg:
		err = m.err
	case chartExportedMsg:
		if m.err != nil {
			a.lastErr = "export failed"
			return
		}
	}
	if err != nil {
		a.lastErr = salesapi.Describe(err)
		a.deps.Logger.Warn("fetch failed", "page", msg.targetPage().String(), "error", err)
		return
	}
	a.lastErr = ""
}
