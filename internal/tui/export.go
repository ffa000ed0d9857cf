package tui

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tinytelemetry/salesdash/internal/forecast"
	"github.com/tinytelemetry/salesdash/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/wcharczuk/go-chart/v2"
)

const (
	exportWidth  = 1024
	exportHeight = 512
)

// exportFileName is the PNG name for a forecast starting at start.
func exportFileName(start time.Time) string {
	return "forecast-" + start.Format(model.DateLayout) + ".png"
}

// renderForecastPNG renders series as a PNG line chart.
func renderForecastPNG(series model.ForecastSeries, start time.Time) ([]byte, error) {
	times := forecast.Times(series, start)
	xs := make([]time.Time, 0, len(series))
	ys := make([]float64, 0, len(series))
	for i, pt := range series {
		if pt.Volume == nil {
			continue
		}
		xs = append(xs, times[i])
		ys = append(ys, *pt.Volume)
	}
	switch len(xs) {
	case 0:
		return nil, errors.New("no forecast values to plot")
	case 1:
		// go-chart needs a non-empty x range.
		xs = append(xs, xs[0].AddDate(0, 0, 1))
		ys = append(ys, ys[0])
	}

	graph := chart.Chart{
		Title:      chartTitle,
		Width:      exportWidth,
		Height:     exportHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat(model.DateLayout),
		},
		YAxis: chart.YAxis{Name: "Forecasted Sales Volume"},
		Series: []chart.Series{
			chart.TimeSeries{Name: "Forecasted Sales Volume", XValues: xs, YValues: ys},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// exportChart writes the forecast chart into dir and returns the file path.
func exportChart(dir string, req model.ForecastRequest, series model.ForecastSeries) (string, error) {
	png, err := renderForecastPNG(series, req.StartDate)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, exportFileName(req.StartDate))
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("write chart: %w", err)
	}
	return path, nil
}

func exportChartCmd(dir string, req model.ForecastRequest, series model.ForecastSeries) tea.Cmd {
	return func() tea.Msg {
		path, err := exportChart(dir, req, series)
		return chartExportedMsg{path: path, err: err}
	}
}
