package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/tinytelemetry/salesdash/internal/model"
)

func TestRenderForecastTable_PlaceholderForNull(t *testing.T) {
	t.Parallel()

	series := model.ForecastSeries{
		{Date: "2024-01-15", Volume: model.Float(120.5)},
		{Date: "2024-01-16", Volume: nil},
	}
	out := renderForecastTable(series)

	for _, want := range []string{"Date", "Forecasted Sales Volume", "120.5", "2024-01-16", model.MissingVolume} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestValueRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		series model.ForecastSeries
		ok     bool
	}{
		{name: "empty", series: nil, ok: false},
		{name: "all null", series: model.ForecastSeries{{Date: "a"}, {Date: "b"}}, ok: false},
		{name: "flat", series: model.ForecastSeries{{Volume: model.Float(5)}, {Volume: model.Float(5)}}, ok: true},
		{name: "spread", series: model.ForecastSeries{{Volume: model.Float(1)}, {Volume: model.Float(9)}}, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lo, hi, ok := valueRange(tt.series)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !(lo < hi) {
				t.Fatalf("range = [%v, %v], want lo < hi", lo, hi)
			}
		})
	}
}

func TestRenderForecastChart(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	if got := renderForecastChart(model.ForecastSeries{{Date: "2024-01-15"}}, start, 60, 12); got != "" {
		t.Fatal("chart rendered with no values")
	}
	if got := renderForecastChart(seven(start, 100), start, 10, 12); got != "" {
		t.Fatal("chart rendered below minimum width")
	}

	got := renderForecastChart(seven(start, 100), start, 60, 12)
	if !strings.HasPrefix(got, chartTitle) {
		t.Fatalf("chart missing title:\n%s", got)
	}
}

func TestRenderForecastPNG(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	if _, err := renderForecastPNG(model.ForecastSeries{{Date: "2024-01-15"}}, start); err == nil {
		t.Fatal("expected error for series without values")
	}

	single, err := renderForecastPNG(model.ForecastSeries{{Date: "2024-01-15", Volume: model.Float(3)}}, start)
	if err != nil {
		t.Fatalf("single point: %v", err)
	}
	if !bytes.HasPrefix(single, []byte("\x89PNG")) {
		t.Fatal("single point output is not a PNG")
	}

	if got := exportFileName(start); got != "forecast-2024-01-15.png" {
		t.Fatalf("file name = %q", got)
	}
}
