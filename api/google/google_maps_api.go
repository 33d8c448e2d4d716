package google

import (
	"context"
	"errors"
	"fmt"

	"trip-planner/models"
)

// ErrNotFound is returned by Geocode when the address resolves to nothing.
var ErrNotFound = errors.New("google: address not found")

// StatusError reports a well-formed response whose status is not OK.
type StatusError struct {
	Endpoint string
	Status   string
	Message  string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("google %s: status %s: %s", e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("google %s: status %s", e.Endpoint, e.Status)
}

// GoogleMapsAPI defines the interface for the Google Maps Platform calls the planner needs
type GoogleMapsAPI interface {
	TextSearch(ctx context.Context, query string, maxResults int) ([]PlaceResult, error)
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
	// OptimizeRoute asks for the shortest visiting order of waypoints between
	// origin and destination.
	OptimizeRoute(ctx context.Context, origin, destination models.Coordinates, waypoints []models.Coordinates) (*RouteResult, error)
}
