package openweather

import (
	"context"
	"time"

	"trip-planner/models"
)

// OpenWeatherApiClientMock generates a mild, repeating forecast starting today.
type OpenWeatherApiClientMock struct {
	now func() time.Time
}

func NewOpenWeatherApiClientMock(now func() time.Time) *OpenWeatherApiClientMock {
	if now == nil {
		now = time.Now
	}
	return &OpenWeatherApiClientMock{now: now}
}

func (c *OpenWeatherApiClientMock) GetForecast(ctx context.Context, destination string, days int) ([]models.ForecastBucket, error) {
	start := c.now().Truncate(3 * time.Hour)
	n := days * BUCKETS_PER_DAY
	if n <= 0 || n > MAX_BUCKETS {
		n = MAX_BUCKETS
	}

	buckets := make([]models.ForecastBucket, 0, n)
	for i := 0; i < n; i++ {
		buckets = append(buckets, models.ForecastBucket{
			Timestamp:   start.Add(time.Duration(i) * 3 * time.Hour),
			Temp:        20 + float64(i%BUCKETS_PER_DAY),
			Description: "clear sky",
			Icon:        "01d",
		})
	}
	return buckets, nil
}
