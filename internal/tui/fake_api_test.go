package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/tinytelemetry/salesdash/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// countingAPI is a SalesAPI that records every call.
type countingAPI struct {
	info       model.ServiceInfo
	infoErr    error
	prediction model.PredictionResult
	predictErr error
	series     model.ForecastSeries
	seriesErr  error

	infoCalls     int
	predictCalls  int
	forecastCalls int

	lastPredict  model.PredictionRequest
	lastForecast model.ForecastRequest
}

func (c *countingAPI) Info(_ context.Context) (model.ServiceInfo, error) {
	c.infoCalls++
	return c.info, c.infoErr
}

func (c *countingAPI) Predict(_ context.Context, req model.PredictionRequest) (model.PredictionResult, error) {
	c.predictCalls++
	c.lastPredict = req
	return c.prediction, c.predictErr
}

func (c *countingAPI) Forecast(_ context.Context, req model.ForecastRequest) (model.ForecastSeries, error) {
	c.forecastCalls++
	c.lastForecast = req
	return c.series, c.seriesErr
}

var testNow = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

func newTestApp(t *testing.T, api *countingAPI) *App {
	t.Helper()
	a := NewApp(Deps{
		API:       api,
		BaseURL:   "http://127.0.0.1:8000/",
		Now:       func() time.Time { return testNow },
		ExportDir: t.TempDir(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	a.Update(tea.WindowSizeMsg{Width: 140, Height: 48})
	return a
}

// drive runs cmd and feeds every page result back into the app until no
// commands remain. Other messages (spinner ticks, window titles) are dropped.
func drive(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("drive: command loop did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case pageMsg:
			_, follow := a.Update(msg)
			queue = append(queue, follow)
		}
	}
}

// press sends one key to the app and returns the resulting command.
func press(a *App, k tea.KeyMsg) tea.Cmd {
	_, cmd := a.Update(k)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func seven(start time.Time, base float64) model.ForecastSeries {
	out := make(model.ForecastSeries, 0, model.DefaultForecastDays)
	for i := 0; i < model.DefaultForecastDays; i++ {
		out = append(out, model.ForecastPoint{
			Date:   start.AddDate(0, 0, i).Format(model.DateLayout),
			Volume: model.Float(base + float64(i*100)),
		})
	}
	return out
}
