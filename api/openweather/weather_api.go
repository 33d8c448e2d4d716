package openweather

import (
	"context"

	"trip-planner/models"
)

// WeatherAPI defines the interface for the forecast provider
type WeatherAPI interface {
	// GetForecast returns 3-hour buckets covering up to days calendar days.
	GetForecast(ctx context.Context, destination string, days int) ([]models.ForecastBucket, error)
}
