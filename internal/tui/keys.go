package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all dashboard key bindings with built-in help text.
type KeyMap struct {
	// Global
	ForceQuit  key.Binding
	GoHome     key.Binding
	GoPredict  key.Binding
	GoForecast key.Binding

	// Home page
	Quit         key.Binding
	HomePredict  key.Binding
	HomeForecast key.Binding

	// Forms
	Back      key.Binding
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Export    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		GoHome: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "home"),
		),
		GoPredict: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "predict"),
		),
		GoForecast: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "forecast"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		HomePredict: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "predict sales"),
		),
		HomeForecast: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "forecast national sales"),
		),

		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to home"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev field"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save chart png"),
		),
	}
}
