package model

import "context"

// SalesAPI is the read contract of the remote prediction service.
type SalesAPI interface {
	Info(ctx context.Context) (ServiceInfo, error)
	Predict(ctx context.Context, req PredictionRequest) (PredictionResult, error)
	Forecast(ctx context.Context, req ForecastRequest) (ForecastSeries, error)
}
