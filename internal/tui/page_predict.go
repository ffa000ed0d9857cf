package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tinytelemetry/salesdash/internal/model"
	"github.com/tinytelemetry/salesdash/internal/salesapi"
	"github.com/tinytelemetry/salesdash/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldItem = iota
	fieldStore
	fieldDate
)

// predictPage collects an item/store/date and shows one predicted volume.
type predictPage struct {
	deps    Deps
	form    form
	loading bool
	formErr string

	// Last successful result and the request that produced it. A failed
	// fetch sets err and leaves these alone.
	result  *model.PredictionResult
	lastReq model.PredictionRequest
	err     error
}

func newPredictPage(deps Deps) *predictPage {
	p := &predictPage{deps: deps, form: newForm()}
	p.form.add("Item ID", deps.ItemID, 32)
	p.form.add("Store ID", deps.StoreID, 16)
	p.form.add("Date", deps.Now().Format(model.DateLayout), len(model.DateLayout))
	p.form.focusField(fieldItem)
	return p
}

func (p *predictPage) ID() model.Page { return model.PagePredictSales }
func (p *predictPage) Loading() bool  { return p.loading }

func (p *predictPage) Init() tea.Cmd {
	return p.form.focusField(p.form.focus)
}

func (p *predictPage) Update(msg tea.Msg) (tea.Cmd, *session.Event) {
	switch msg := msg.(type) {
	case predictionLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.err = msg.err
			return nil, nil
		}
		res := msg.result
		p.result = &res
		p.lastReq = msg.req
		p.err = nil
		return nil, nil

	case tea.KeyMsg:
		k := p.deps.Keys
		switch {
		case key.Matches(msg, k.Back):
			return nil, emit(session.NavigateTo(model.PageHome))
		case key.Matches(msg, k.Submit):
			return nil, p.submit()
		case key.Matches(msg, k.NextField):
			return p.form.next(), nil
		case key.Matches(msg, k.PrevField):
			return p.form.prev(), nil
		}
	}
	return p.form.update(msg), nil
}

// submit validates the form and builds the submit event. Submissions while a
// request is in flight are dropped.
func (p *predictPage) submit() *session.Event {
	if p.loading {
		return nil
	}
	req, err := p.request()
	if err != nil {
		p.formErr = err.Error()
		return nil
	}
	p.formErr = ""
	return emit(session.Event{Action: session.ActionSubmitPredict, Payload: req})
}

func (p *predictPage) request() (model.PredictionRequest, error) {
	item := p.form.value(fieldItem)
	store := p.form.value(fieldStore)
	if item == "" {
		return model.PredictionRequest{}, errors.New("item ID is required")
	}
	if store == "" {
		return model.PredictionRequest{}, errors.New("store ID is required")
	}
	d, err := parseDate("date", p.form.value(fieldDate))
	if err != nil {
		return model.PredictionRequest{}, err
	}
	return model.PredictionRequest{ItemID: item, StoreID: store, Date: d}, nil
}

func (p *predictPage) Handle(ev session.Event) tea.Cmd {
	req, ok := ev.Payload.(model.PredictionRequest)
	if !ok || ev.Action != session.ActionSubmitPredict {
		return nil
	}
	p.loading = true
	p.deps.Logger.Info("prediction requested", "item_id", req.ItemID, "store_id", req.StoreID, "date", req.Date.Format(model.DateLayout))
	return fetchPredictionCmd(p.deps, req)
}

func (p *predictPage) Help() []key.Binding {
	k := p.deps.Keys
	return []key.Binding{k.Submit, k.NextField, k.Back}
}

func (p *predictPage) View(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🔮 Predict Sales for Store and Item"))
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(p.form.view()))
	b.WriteString("\n")
	b.WriteString(buttonStyle.Render("Predict") + helpStyle.Render(p.deps.Keys.Submit.Help().Key))
	b.WriteString("\n\n")

	if p.formErr != "" {
		b.WriteString(errorStyle.Render(p.formErr))
		b.WriteString("\n")
	}
	if p.loading {
		b.WriteString(helpStyle.Render(spinnerFrameNow() + " Fetching prediction..."))
		b.WriteString("\n")
	}
	if p.result != nil {
		b.WriteString(successStyle.Render("Predicted Sales Volume: " + model.FormatVolume(p.result.Volume, model.MissingPrediction)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("item %s · store %s · %s",
			p.lastReq.ItemID, p.lastReq.StoreID, p.lastReq.Date.Format(model.DateLayout))))
		b.WriteString("\n")
	}
	if p.err != nil {
		b.WriteString(errorStyle.Render("Error fetching prediction"))
		b.WriteString(" " + helpStyle.Render("("+salesapi.Describe(p.err)+")"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderBackHint(p.deps.Keys))

	return lipgloss.NewStyle().Padding(1, 2).MaxWidth(width).MaxHeight(height).Render(b.String())
}
