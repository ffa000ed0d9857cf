package forecast

import (
	"github.com/montanaflynn/stats"
	"github.com/tinytelemetry/salesdash/internal/model"
)

// Summary holds aggregate figures over the non-null points of a series.
type Summary struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
	Total float64
}

// Summarize computes a Summary. A series without values yields a zero
// Summary with Count 0.
func Summarize(series model.ForecastSeries) Summary {
	data := stats.Float64Data(series.Values())
	if data.Len() == 0 {
		return Summary{}
	}

	// stats only errors on empty input, which is handled above.
	minV, _ := data.Min()
	maxV, _ := data.Max()
	mean, _ := data.Mean()
	total, _ := data.Sum()

	return Summary{
		Count: data.Len(),
		Min:   minV,
		Max:   maxV,
		Mean:  mean,
		Total: total,
	}
}
