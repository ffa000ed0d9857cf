package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/tinytelemetry/salesdash/internal/model"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// form is a column of labelled text inputs with one focused field.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm() form {
	return form{}
}

func (f *form) add(label, value string, charLimit int) {
	ti := textinput.New()
	ti.Prompt = "▸ "
	ti.CharLimit = charLimit
	ti.Width = max(charLimit, 12)
	ti.SetValue(value)
	ti.Cursor.SetMode(cursor.CursorStatic)
	f.labels = append(f.labels, label)
	f.inputs = append(f.inputs, ti)
}

// focusField moves focus to field i, blurring the others.
func (f *form) focusField(i int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.focus = (i%len(f.inputs) + len(f.inputs)) % len(f.inputs)
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
			continue
		}
		f.inputs[j].Blur()
	}
	return cmd
}

func (f *form) next() tea.Cmd { return f.focusField(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.focusField(f.focus - 1) }

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// update forwards msg to the focused input only.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	rows := make([]string, 0, len(f.inputs))
	for i, in := range f.inputs {
		label := labelStyle.Render(f.labels[i])
		if i == f.focus {
			label = labelStyle.Foreground(ColorBlue).Render(f.labels[i])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, in.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// parseDate reads a form date in the wire layout.
func parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	d, err := time.Parse(model.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must look like YYYY-MM-DD", field)
	}
	return d, nil
}
