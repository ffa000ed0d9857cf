// Package forecast turns raw forecast documents from the prediction service
// into ordered series ready for tables and charts.
package forecast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tinytelemetry/salesdash/internal/model"
)

// Field names recognised in list-of-records documents, in priority order.
var (
	dateFields  = []string{"date", "Date", "ds", "day"}
	valueFields = []string{"forecast", "Forecasted Sales Volume", "prediction", "value", "sales", "volume", "yhat"}
)

// ShapeError reports a document that cannot be read as a forecast.
// Field is set when an expected key was absent.
type ShapeError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("forecast: record %d: missing %s", e.Index, e.Field)
	}
	return "forecast: " + e.Reason
}

// MissingField reports whether the error is about an absent key.
func (e *ShapeError) MissingField() bool {
	return e.Field != ""
}

// Reshape converts a date→volume mapping, or an array of records, into a
// series. Document order is kept as-is; null or non-numeric volumes are
// passed through as nil.
func Reshape(raw gjson.Result) (model.ForecastSeries, error) {
	switch {
	case raw.IsObject():
		return fromMapping(raw), nil
	case raw.IsArray():
		return fromRecords(raw)
	case !raw.Exists():
		return nil, &ShapeError{Index: -1, Reason: "empty document"}
	default:
		return nil, &ShapeError{Index: -1, Reason: fmt.Sprintf("unexpected %s document", raw.Type)}
	}
}

func fromMapping(raw gjson.Result) model.ForecastSeries {
	series := make(model.ForecastSeries, 0, model.DefaultForecastDays)
	raw.ForEach(func(key, value gjson.Result) bool {
		series = append(series, model.ForecastPoint{
			Date:   key.String(),
			Volume: numeric(value),
		})
		return true
	})
	return series
}

func fromRecords(raw gjson.Result) (model.ForecastSeries, error) {
	records := raw.Array()
	series := make(model.ForecastSeries, 0, len(records))
	for i, rec := range records {
		if !rec.IsObject() {
			return nil, &ShapeError{Index: i, Reason: fmt.Sprintf("record %d is %s, not an object", i, rec.Type)}
		}
		fields := rec.Map()

		dateKey, date, ok := lookup(fields, dateFields)
		if !ok {
			return nil, &ShapeError{Index: i, Field: "date"}
		}

		_, value, ok := lookup(fields, valueFields)
		if !ok {
			value, ok = firstNumeric(rec, dateKey)
		}
		var vol *float64
		if ok {
			vol = numeric(value)
		}
		series = append(series, model.ForecastPoint{Date: date.String(), Volume: vol})
	}
	return series, nil
}

func lookup(fields map[string]gjson.Result, names []string) (string, gjson.Result, bool) {
	for _, name := range names {
		if v, ok := fields[name]; ok {
			return name, v, true
		}
	}
	// Fall back to a case-insensitive match.
	for _, name := range names {
		for key, v := range fields {
			if strings.EqualFold(key, name) {
				return key, v, true
			}
		}
	}
	return "", gjson.Result{}, false
}

// firstNumeric returns the first number-typed field of rec, in document
// order, other than skipKey.
func firstNumeric(rec gjson.Result, skipKey string) (gjson.Result, bool) {
	var found gjson.Result
	ok := false
	rec.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.Number && key.String() != skipKey {
			found, ok = value, true
			return false
		}
		return true
	})
	return found, ok
}

func numeric(v gjson.Result) *float64 {
	switch v.Type {
	case gjson.Number:
		return model.Float(v.Num)
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return nil
		}
		return model.Float(f)
	default:
		return nil
	}
}
