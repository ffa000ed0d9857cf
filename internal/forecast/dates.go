package forecast

import (
	"strconv"
	"strings"
	"time"

	"github.com/tinytelemetry/salesdash/internal/model"
)

// dateLayouts are tried in order when reading a forecast date.
var dateLayouts = []string{
	model.DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"02 Jan 2006",
}

// ParseDate reads a forecast date key. Besides the wire layout it accepts
// the datetime and epoch encodings that dataframe serializers produce.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
		return fromUnix(n), true
	}
	return time.Time{}, false
}

// fromUnix picks the epoch unit from the magnitude of n.
func fromUnix(n int64) time.Time {
	switch {
	case n > 1e17:
		return time.Unix(0, n).UTC()
	case n > 1e14:
		return time.UnixMicro(n).UTC()
	case n > 1e11:
		return time.UnixMilli(n).UTC()
	default:
		return time.Unix(n, 0).UTC()
	}
}

// Times maps each point to a time. Points whose date cannot be read fall
// back to start plus the row offset, matching the daily cadence of the
// service.
func Times(series model.ForecastSeries, start time.Time) []time.Time {
	out := make([]time.Time, len(series))
	for i, pt := range series {
		if t, ok := ParseDate(pt.Date); ok {
			out[i] = t
			continue
		}
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}
