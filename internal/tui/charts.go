package tui

import (
	"math"
	"time"

	"github.com/tinytelemetry/salesdash/internal/forecast"
	"github.com/tinytelemetry/salesdash/internal/model"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	minChartWidth = 24
	chartTitle    = "7-Day Sales Forecast"
)

var tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue).Padding(0, 1)
var tableCellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderForecastTable renders the Date | Forecasted Sales Volume grid.
func renderForecastTable(series model.ForecastSeries) string {
	rows := make([][]string, 0, len(series))
	for _, pt := range series {
		rows = append(rows, []string{pt.Date, model.FormatVolume(pt.Volume, model.MissingVolume)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorGray)).
		Headers("Date", "Forecasted Sales Volume").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if col == 1 {
				return tableCellStyle.Align(lipgloss.Right)
			}
			return tableCellStyle
		})
	return t.Render()
}

// valueRange returns a padded y range over the non-nil volumes.
func valueRange(series model.ForecastSeries) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, pt := range series {
		if pt.Volume == nil {
			continue
		}
		lo = math.Min(lo, *pt.Volume)
		hi = math.Max(hi, *pt.Volume)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = math.Max(1, math.Abs(hi)*0.1)
	}
	return lo - pad, hi + pad, true
}

// renderForecastChart draws the volumes as a braille time-series line.
// Null volumes leave a gap in the push sequence.
func renderForecastChart(series model.ForecastSeries, start time.Time, width, height int) string {
	lo, hi, ok := valueRange(series)
	if !ok || width < minChartWidth || height < 4 {
		return ""
	}

	times := forecast.Times(series, start)
	first, last := times[0], times[0]
	for _, t := range times {
		if t.Before(first) {
			first = t
		}
		if t.After(last) {
			last = t
		}
	}
	if !last.After(first) {
		last = first.AddDate(0, 0, 1)
	}

	chart := tslc.New(width, height-1,
		tslc.WithTimeRange(first, last),
		tslc.WithYRange(lo, hi),
		tslc.WithXLabelFormatter(func(_ int, v float64) string {
			return time.Unix(int64(v), 0).UTC().Format("01-02")
		}),
	)
	for i, pt := range series {
		if pt.Volume == nil {
			continue
		}
		chart.Push(tslc.TimePoint{Time: times[i], Value: *pt.Volume})
	}
	chart.DrawBraille()

	return lipgloss.JoinVertical(lipgloss.Left, chartTitleStyle.Render(chartTitle), chart.View())
}
