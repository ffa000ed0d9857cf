package tui

import (
	"strings"

	"github.com/tinytelemetry/salesdash/internal/model"
	"github.com/tinytelemetry/salesdash/internal/salesapi"
	"github.com/tinytelemetry/salesdash/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// homePage shows the service metadata and the two entry points.
type homePage struct {
	deps    Deps
	info    *model.ServiceInfo
	err     error
	loading bool
}

func newHomePage(deps Deps) *homePage {
	return &homePage{deps: deps}
}

func (p *homePage) ID() model.Page { return model.PageHome }
func (p *homePage) Loading() bool  { return p.loading }

// Init fetches the service info once per visit.
func (p *homePage) Init() tea.Cmd {
	if p.loading {
		return nil
	}
	p.loading = true
	return fetchInfoCmd(p.deps)
}

func (p *homePage) Update(msg tea.Msg) (tea.Cmd, *session.Event) {
	switch msg := msg.(type) {
	case infoLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.err = msg.err
			p.info = nil
			return nil, nil
		}
		info := msg.info
		p.info = &info
		p.err = nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.deps.Keys.HomePredict):
			return nil, emit(session.NavigateTo(model.PagePredictSales))
		case key.Matches(msg, p.deps.Keys.HomeForecast):
			return nil, emit(session.NavigateTo(model.PageForecastSales))
		}
	}
	return nil, nil
}

// Handle ignores submit events; Home has no form.
func (p *homePage) Handle(session.Event) tea.Cmd { return nil }

func (p *homePage) Help() []key.Binding {
	k := p.deps.Keys
	return []key.Binding{k.HomePredict, k.HomeForecast, k.Quit}
}

func (p *homePage) View(width, height int) string {
	textWidth := max(20, width-4)
	wrap := lipgloss.NewStyle().Width(textWidth)

	var b strings.Builder
	b.WriteString(titleStyle.Render("📊 Welcome to the Sales Prediction App"))
	b.WriteString("\n")

	switch {
	case p.info != nil:
		b.WriteString(wrap.Render(p.info.Description))
		b.WriteString("\n\n")
		b.WriteString("Github Link: " + p.info.RepoLink)
		b.WriteString("\n\n")
	case p.loading:
		b.WriteString(helpStyle.Render(spinnerFrameNow() + " Loading service info..."))
		b.WriteString("\n\n")
	case p.err != nil:
		b.WriteString(helpStyle.Render("Service info unavailable: " + salesapi.Describe(p.err)))
		b.WriteString("\n\n")
	}

	b.WriteString("This interactive app allows you to:\n")
	b.WriteString("  • " + lipgloss.NewStyle().Bold(true).Render("Predict sales") + " for specific stores and items.\n")
	b.WriteString("  • " + lipgloss.NewStyle().Bold(true).Render("Forecast national sales") + " for the upcoming week.\n")
	b.WriteString("\n")

	k := p.deps.Keys
	predict := buttonStyle.Render("🔮 Predict Sales") + helpStyle.Render(k.HomePredict.Help().Key)
	fc := buttonStyle.Render("📈 Forecast National Sales") + helpStyle.Render(k.HomeForecast.Help().Key)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, predict, "    ", fc))

	return lipgloss.NewStyle().Padding(1, 2).MaxHeight(height).Render(b.String())
}
