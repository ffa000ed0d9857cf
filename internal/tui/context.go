package tui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/tinytelemetry/salesdash/internal/model"
	"github.com/tinytelemetry/salesdash/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// Deps provides dependencies for page constructors.
type Deps struct {
	API       model.SalesAPI
	BaseURL   string
	Keys      KeyMap
	Timeout   time.Duration
	Now       func() time.Time
	ExportDir string
	ItemID    string
	StoreID   string
	Logger    *slog.Logger
}

func (d Deps) withDefaults() Deps {
	if len(d.Keys.ForceQuit.Keys()) == 0 {
		d.Keys = DefaultKeyMap()
	}
	if d.Timeout <= 0 {
		d.Timeout = model.DefaultRequestTimeout
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.ItemID == "" {
		d.ItemID = model.DefaultItemID
	}
	if d.StoreID == "" {
		d.StoreID = model.DefaultStoreID
	}
	if d.ExportDir == "" {
		d.ExportDir = "."
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d
}

func (d Deps) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d.Timeout)
}

// pageMsg is implemented by results addressed to one page, so they reach
// it even after the user has navigated elsewhere.
type pageMsg interface {
	targetPage() model.Page
}

type infoLoadedMsg struct {
	info model.ServiceInfo
	err  error
}

type predictionLoadedMsg struct {
	req    model.PredictionRequest
	result model.PredictionResult
	err    error
}

type forecastLoadedMsg struct {
	req    model.ForecastRequest
	series model.ForecastSeries
	err    error
}

type chartExportedMsg struct {
	path string
	err  error
}

func (infoLoadedMsg) targetPage() model.Page       { return model.PageHome }
func (predictionLoadedMsg) targetPage() model.Page { return model.PagePredictSales }
func (forecastLoadedMsg) targetPage() model.Page   { return model.PageForecastSales }
func (chartExportedMsg) targetPage() model.Page    { return model.PageForecastSales }

func fetchInfoCmd(d Deps) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := d.requestContext()
		defer cancel()
		info, err := d.API.Info(ctx)
		return infoLoadedMsg{info: info, err: err}
	}
}

func fetchPredictionCmd(d Deps, req model.PredictionRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := d.requestContext()
		defer cancel()
		res, err := d.API.Predict(ctx, req)
		return predictionLoadedMsg{req: req, result: res, err: err}
	}
}

func fetchForecastCmd(d Deps, req model.ForecastRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := d.requestContext()
		defer cancel()
		series, err := d.API.Forecast(ctx, req)
		return forecastLoadedMsg{req: req, series: series, err: err}
	}
}

// emit wraps ev for return from Page.Update.
func emit(ev session.Event) *session.Event {
	return &ev
}
