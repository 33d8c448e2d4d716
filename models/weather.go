package models

import "time"

// ForecastBucket is one 3-hour record as returned by the weather service.
type ForecastBucket struct {
	Timestamp   time.Time `json:"timestamp"`
	Temp        float64   `json:"temp"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// WeatherForecast is the per-day summary attached to an itinerary.
type WeatherForecast struct {
	Date        string  `json:"date"`
	AvgTemp     float64 `json:"avg_temp"`
	Description string  `json:"description"`
	Icon        string  `json:"icon,omitempty"`
}
