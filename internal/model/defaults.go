package model

import "time"

// Shared defaults used by both the dashboard and the stub service.
const (
	DefaultBaseURL        = "https://three6120-at2-fastapi-24886400-1.onrender.com/"
	DefaultRequestTimeout = 10 * time.Second
	DefaultItemID         = "HOBBIES_1_001"
	DefaultStoreID        = "WI_1"
	DefaultForecastDays   = 7

	// Placeholders shown when the service omits a value.
	MissingPrediction  = "N/A"
	MissingVolume      = "NA"
	MissingDescription = "Description not available"
	MissingRepoLink    = "#"
)
