package services

import (
	"context"
	"errors"
	"time"

	"trip-planner/api/google"
	"trip-planner/models"
)

// PlaceSearcher is the place search capability of the maps provider.
type PlaceSearcher interface {
	TextSearch(ctx context.Context, query string, maxResults int) ([]google.PlaceResult, error)
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}

type RouteOptimizer interface {
	OptimizeRoute(ctx context.Context, origin, destination models.Coordinates, waypoints []models.Coordinates) (*google.RouteResult, error)
}

// withTimeout runs one upstream call under its own deadline.
func withTimeout[T any](ctx context.Context, timeout time.Duration, call func(context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return call(ctx)
}

func geocodeResult(ctx context.Context, g Geocoder, timeout time.Duration, address string) models.Result[models.Coordinates] {
	if address == "" {
		return models.Degraded[models.Coordinates](models.ReasonGeocodeNotFound, errors.New("empty address"))
	}
	c, err := withTimeout(ctx, timeout, func(ctx context.Context) (*models.Coordinates, error) {
		return g.Geocode(ctx, address)
	})
	switch {
	case errors.Is(err, google.ErrNotFound):
		return models.Degraded[models.Coordinates](models.ReasonGeocodeNotFound, err)
	case err != nil:
		return models.Degraded[models.Coordinates](models.ReasonGeocodeFailed, err)
	case c == nil:
		return models.Degraded[models.Coordinates](models.ReasonGeocodeNotFound, nil)
	}
	return models.Ok(*c)
}
