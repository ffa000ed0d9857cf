package model

import (
	"strconv"
	"time"
)

// DateLayout is the wire format for every date sent to or read from the
// prediction service.
const DateLayout = "2006-01-02"

// Page identifies one of the dashboard screens.
type Page int

const (
	PageHome Page = iota
	PagePredictSales
	PageForecastSales
)

// Pages lists every defined page in navigation order.
var Pages = []Page{PageHome, PagePredictSales, PageForecastSales}

// Valid reports whether p is one of the defined pages.
func (p Page) Valid() bool {
	return p >= PageHome && p <= PageForecastSales
}

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PagePredictSales:
		return "predict_sales"
	case PageForecastSales:
		return "forecast_sales"
	default:
		return "page(" + strconv.Itoa(int(p)) + ")"
	}
}

// Title is the human-readable navigation label.
func (p Page) Title() string {
	switch p {
	case PageHome:
		return "Home"
	case PagePredictSales:
		return "Predict Sales"
	case PageForecastSales:
		return "Forecast National Sales"
	default:
		return p.String()
	}
}

// ServiceInfo is the descriptive metadata served at the API root.
type ServiceInfo struct {
	Description string
	RepoLink    string
}

// PredictionRequest asks for one item/store/date prediction.
type PredictionRequest struct {
	ItemID  string
	StoreID string
	Date    time.Time
}

// Params returns the query parameters for the prediction endpoint.
func (r PredictionRequest) Params() map[string]string {
	return map[string]string{
		"item_id":  r.ItemID,
		"store_id": r.StoreID,
		"date":     r.Date.Format(DateLayout),
	}
}

// PredictionResult holds the predicted volume. Volume is nil when the
// service response did not carry a prediction.
type PredictionResult struct {
	Volume *float64
}

// ForecastRequest asks for the national forecast starting at StartDate.
type ForecastRequest struct {
	StartDate time.Time
}

// Params returns the query parameters for the forecast endpoint.
func (r ForecastRequest) Params() map[string]string {
	return map[string]string{"date": r.StartDate.Format(DateLayout)}
}

// ForecastPoint is one row of a forecast. Volume is nil for null values.
type ForecastPoint struct {
	Date   string
	Volume *float64
}

// ForecastSeries keeps the order the service returned.
type ForecastSeries []ForecastPoint

// Values returns the non-nil volumes in series order.
func (s ForecastSeries) Values() []float64 {
	out := make([]float64, 0, len(s))
	for _, p := range s {
		if p.Volume != nil {
			out = append(out, *p.Volume)
		}
	}
	return out
}

// FormatVolume renders a volume for display, using placeholder for nil.
func FormatVolume(v *float64, placeholder string) string {
	if v == nil {
		return placeholder
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}
