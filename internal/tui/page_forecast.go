package tui

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/salesdash/internal/forecast"
	"github.com/tinytelemetry/salesdash/internal/model"
	"github.com/tinytelemetry/salesdash/internal/salesapi"
	"github.com/tinytelemetry/salesdash/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// forecastPage asks for a start date and renders the national forecast as a
// table and a line chart.
type forecastPage struct {
	deps    Deps
	form    form
	loading bool
	formErr string

	series  model.ForecastSeries
	summary forecast.Summary
	lastReq model.ForecastRequest
	err     error

	exporting  bool
	exportPath string
	exportErr  error
}

func newForecastPage(deps Deps) *forecastPage {
	p := &forecastPage{deps: deps, form: newForm()}
	p.form.add("Forecast Start Date", deps.Now().Format(model.DateLayout), len(model.DateLayout))
	p.form.focusField(0)
	return p
}

func (p *forecastPage) ID() model.Page { return model.PageForecastSales }
func (p *forecastPage) Loading() bool  { return p.loading || p.exporting }

func (p *forecastPage) Init() tea.Cmd {
	return p.form.focusField(0)
}

func (p *forecastPage) Update(msg tea.Msg) (tea.Cmd, *session.Event) {
	switch msg := msg.(type) {
	case forecastLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.err = msg.err
			return nil, nil
		}
		p.series = msg.series
		p.summary = forecast.Summarize(msg.series)
		p.lastReq = msg.req
		p.err = nil
		p.exportPath = ""
		p.exportErr = nil
		return nil, nil

	case chartExportedMsg:
		p.exporting = false
		p.exportPath = msg.path
		p.exportErr = msg.err
		return nil, nil

	case tea.KeyMsg:
		k := p.deps.Keys
		switch {
		case key.Matches(msg, k.Back):
			return nil, emit(session.NavigateTo(model.PageHome))
		case key.Matches(msg, k.Submit):
			return nil, p.submit()
		case key.Matches(msg, k.Export):
			return p.export(), nil
		case key.Matches(msg, k.NextField), key.Matches(msg, k.PrevField):
			return nil, nil
		}
	}
	return p.form.update(msg), nil
}

func (p *forecastPage) submit() *session.Event {
	if p.loading {
		return nil
	}
	start, err := parseDate("forecast start date", p.form.value(0))
	if err != nil {
		p.formErr = err.Error()
		return nil
	}
	p.formErr = ""
	return emit(session.Event{Action: session.ActionSubmitForecast, Payload: model.ForecastRequest{StartDate: start}})
}

func (p *forecastPage) export() tea.Cmd {
	if p.exporting || len(p.series.Values()) == 0 {
		return nil
	}
	p.exporting = true
	p.exportErr = nil
	return exportChartCmd(p.deps.ExportDir, p.lastReq, p.series)
}

func (p *forecastPage) Handle(ev session.Event) tea.Cmd {
	req, ok := ev.Payload.(model.ForecastRequest)
	if !ok || ev.Action != session.ActionSubmitForecast {
		return nil
	}
	p.loading = true
	p.deps.Logger.Info("forecast requested", "date", req.StartDate.Format(model.DateLayout))
	return fetchForecastCmd(p.deps, req)
}

func (p *forecastPage) Help() []key.Binding {
	k := p.deps.Keys
	if len(p.series) > 0 {
		return []key.Binding{k.Submit, k.Export, k.Back}
	}
	return []key.Binding{k.Submit, k.Back}
}

func (p *forecastPage) View(width, height int) string {
	innerWidth := max(20, width-4)

	var b strings.Builder
	b.WriteString(titleStyle.Render("📈 Forecast National Sales for the Next 7 Days"))
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(p.form.view()))
	b.WriteString("\n")
	b.WriteString(buttonStyle.Render("Forecast") + helpStyle.Render(p.deps.Keys.Submit.Help().Key))
	b.WriteString("\n\n")

	if p.formErr != "" {
		b.WriteString(errorStyle.Render(p.formErr))
		b.WriteString("\n")
	}
	if p.loading {
		b.WriteString(helpStyle.Render(spinnerFrameNow() + " Fetching forecast..."))
		b.WriteString("\n")
	}
	if p.err != nil {
		b.WriteString(errorStyle.Render("Error fetching forecast"))
		b.WriteString(" " + helpStyle.Render("("+salesapi.Describe(p.err)+")"))
		b.WriteString("\n")
	}
	switch {
	case p.exporting:
		b.WriteString(helpStyle.Render(spinnerFrameNow() + " Saving chart..."))
		b.WriteString("\n")
	case p.exportErr != nil:
		b.WriteString(errorStyle.Render("Chart export failed: " + p.exportErr.Error()))
		b.WriteString("\n")
	case p.exportPath != "":
		b.WriteString(successStyle.Render("Chart saved to " + p.exportPath))
		b.WriteString("\n")
	}

	header := b.String()
	footer := renderBackHint(p.deps.Keys)

	if len(p.series) > 0 {
		resultsHeight := height - 2 - lipgloss.Height(header) - lipgloss.Height(footer) - 1
		header += p.renderResults(innerWidth, resultsHeight) + "\n"
	}

	return lipgloss.NewStyle().Padding(1, 2).MaxWidth(width).MaxHeight(height).Render(header + "\n" + footer)
}

// renderResults lays out the summary, table and chart for the last
// successful forecast.
func (p *forecastPage) renderResults(width, height int) string {
	heading := "Forecasted Sales for the Next 7 Days:"
	if p.summary.Count > 0 {
		heading += helpStyle.Render(fmt.Sprintf("  min %s · max %s · mean %s",
			formatStat(p.summary.Min), formatStat(p.summary.Max), formatStat(p.summary.Mean)))
	}

	tbl := renderForecastTable(p.series)
	tableWidth := lipgloss.Width(tbl)

	chartWidth := width - tableWidth - 2
	chartHeight := min(max(height-1, 6), 20)
	var chart string
	if chartWidth >= minChartWidth && height > 4 {
		chart = renderForecastChart(p.series, p.lastReq.StartDate, chartWidth, chartHeight)
	}

	body := tbl
	if chart != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, tbl, "  ", chart)
	}
	return lipgloss.JoinVertical(lipgloss.Left, heading, body)
}

func formatStat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
