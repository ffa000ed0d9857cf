package tui

import (
	"strings"
	"testing"

	"github.com/tinytelemetry/salesdash/internal/model"
	"github.com/tinytelemetry/salesdash/internal/salesapi"
	"github.com/tinytelemetry/salesdash/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

var pageHeadings = map[model.Page]string{
	model.PageHome:          "Welcome to the Sales Prediction App",
	model.PagePredictSales:  "Predict Sales for Store and Item",
	model.PageForecastSales: "Forecast National Sales for the Next 7 Days",
}

func TestNavigate_RendersTargetPage(t *testing.T) {
	t.Parallel()

	for _, target := range []model.Page{model.PagePredictSales, model.PageForecastSales, model.PageHome} {
		t.Run(target.String(), func(t *testing.T) {
			t.Parallel()

			a := newTestApp(t, &countingAPI{})
			if target == model.PageHome {
				a.dispatch(session.NavigateTo(model.PageForecastSales))
			}
			a.dispatch(session.NavigateTo(target))

			if got := a.Session().Page(); got != target {
				t.Fatalf("page = %s, want %s", got, target)
			}
			view := a.View()
			for pg, heading := range pageHeadings {
				has := strings.Contains(view, heading)
				if pg == target && !has {
					t.Fatalf("view for %s missing heading %q", target, heading)
				}
				if pg != target && has {
					t.Fatalf("view for %s also rendered %s heading", target, pg)
				}
			}
		})
	}
}

func TestNavigate_UnknownPageRejected(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, &countingAPI{})
	a.dispatch(session.NavigateTo(model.PagePredictSales))

	if cmd := a.dispatch(session.NavigateTo(model.Page(42))); cmd != nil {
		t.Fatal("dispatch of unknown page returned a command")
	}
	if got := a.Session().Page(); got != model.PagePredictSales {
		t.Fatalf("page = %s, want predict_sales", got)
	}
}

func TestGlobalKeys_JumpBetweenPages(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, &countingAPI{})

	press(a, tea.KeyMsg{Type: tea.KeyF3})
	if got := a.Session().Page(); got != model.PageForecastSales {
		t.Fatalf("after F3 page = %s, want forecast_sales", got)
	}
	press(a, tea.KeyMsg{Type: tea.KeyF2})
	if got := a.Session().Page(); got != model.PagePredictSales {
		t.Fatalf("after F2 page = %s, want predict_sales", got)
	}
	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	if got := a.Session().Page(); got != model.PageHome {
		t.Fatalf("after esc page = %s, want home", got)
	}

	want := []model.Page{model.PageHome, model.PageForecastSales, model.PagePredictSales, model.PageHome}
	got := a.Session().History()
	if len(got) != len(want) {
		t.Fatalf("history = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("history[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestHomeKeys_NavigateAndQuit(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, &countingAPI{})

	press(a, runes("f"))
	if got := a.Session().Page(); got != model.PageForecastSales {
		t.Fatalf("after f page = %s, want forecast_sales", got)
	}

	// Printable keys belong to the form inputs off the home page.
	press(a, tea.KeyMsg{Type: tea.KeyF2})
	if cmd := press(a, runes("q")); cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatal("q quit from the predict form")
		}
	}
	p := a.pages[model.PagePredictSales].(*predictPage)
	if got := p.form.inputs[fieldItem].Value(); got != model.DefaultItemID+"q" {
		t.Fatalf("item input = %q, want typed q appended", got)
	}

	press(a, tea.KeyMsg{Type: tea.KeyF1})
	cmd := press(a, runes("q"))
	if cmd == nil {
		t.Fatal("q on home returned no command")
	}
	if _, quit := cmd().(tea.QuitMsg); !quit {
		t.Fatal("q on home did not quit")
	}
}

func TestHome_ShowsServiceInfo(t *testing.T) {
	t.Parallel()

	api := &countingAPI{info: model.ServiceInfo{
		Description: "Predicts unit sales for M5 retail items",
		RepoLink:    "https://github.com/example/sales-api",
	}}
	a := newTestApp(t, api)
	drive(t, a, a.Init())

	view := a.View()
	if !strings.Contains(view, "Predicts unit sales for M5 retail items") {
		t.Fatal("home view missing description")
	}
	if !strings.Contains(view, "Github Link: https://github.com/example/sales-api") {
		t.Fatal("home view missing repo link")
	}
	if !strings.Contains(view, "Forecast National Sales") {
		t.Fatal("home view missing navigation actions")
	}
}

func TestHome_InfoFailureKeepsNavigation(t *testing.T) {
	t.Parallel()

	api := &countingAPI{infoErr: &salesapi.FetchError{Kind: salesapi.KindNetwork, Path: salesapi.PathRoot}}
	a := newTestApp(t, api)
	drive(t, a, a.Init())

	view := a.View()
	if strings.Contains(view, "Github Link:") {
		t.Fatal("home rendered metadata after a failed fetch")
	}
	if !strings.Contains(view, "Predict Sales") || !strings.Contains(view, "Forecast National Sales") {
		t.Fatal("home view missing navigation after failed fetch")
	}
}

func TestView_DoesNotFetch(t *testing.T) {
	t.Parallel()

	api := &countingAPI{}
	a := newTestApp(t, api)
	drive(t, a, a.Init())

	for i := 0; i < 5; i++ {
		_ = a.View()
	}
	if api.infoCalls != 1 {
		t.Fatalf("info calls = %d, want 1", api.infoCalls)
	}

	drive(t, a, press(a, tea.KeyMsg{Type: tea.KeyF2}))
	for i := 0; i < 5; i++ {
		_ = a.View()
	}
	drive(t, a, press(a, tea.KeyMsg{Type: tea.KeyF3}))
	for i := 0; i < 5; i++ {
		_ = a.View()
	}
	if api.predictCalls != 0 || api.forecastCalls != 0 {
		t.Fatalf("calls predict=%d forecast=%d, want none without submit", api.predictCalls, api.forecastCalls)
	}
	if api.infoCalls != 1 {
		t.Fatalf("info calls = %d, want 1", api.infoCalls)
	}
}

func TestHome_RefetchesOnEachVisit(t *testing.T) {
	t.Parallel()

	api := &countingAPI{}
	a := newTestApp(t, api)
	drive(t, a, a.Init())
	drive(t, a, press(a, tea.KeyMsg{Type: tea.KeyF2}))
	drive(t, a, press(a, tea.KeyMsg{Type: tea.KeyF1}))

	if api.infoCalls != 2 {
		t.Fatalf("info calls = %d, want 2", api.infoCalls)
	}
}

func TestView_TerminalTooSmall(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, &countingAPI{})
	a.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	if got := a.View(); !strings.HasPrefix(got, "Terminal too small") {
		t.Fatalf("view = %q, want size warning", got)
	}
}

func TestSidebar_OnlyOffHome(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, &countingAPI{})
	if strings.Contains(a.View(), "Navigation") {
		t.Fatal("home rendered the sidebar")
	}
	a.dispatch(session.NavigateTo(model.PagePredictSales))
	if !strings.Contains(a.View(), "Navigation") {
		t.Fatal("predict page missing the sidebar")
	}
}
