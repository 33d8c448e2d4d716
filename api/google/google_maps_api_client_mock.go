package google

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"trip-planner/models"
	"trip-planner/util"
)

// mockBase anchors generated coordinates when an address has no fixture geometry.
var mockBase = models.Coordinates{Lat: 31.5204, Lng: 74.3587}

// GoogleMapsApiClientMock serves fixture places and deterministic geometry
type GoogleMapsApiClientMock struct {
	places map[string][]PlaceResult
}

// NewGoogleMapsApiClientMock creates a mock whose search results are keyed by category.
func NewGoogleMapsApiClientMock(places map[string][]PlaceResult) *GoogleMapsApiClientMock {
	if places == nil {
		places = map[string][]PlaceResult{}
	}
	return &GoogleMapsApiClientMock{places: places}
}

// LoadGoogleMapsApiClientMock reads the category → results fixture from disk.
func LoadGoogleMapsApiClientMock(path string) (*GoogleMapsApiClientMock, error) {
	places, err := util.ReadJSON[map[string][]PlaceResult](path)
	if err != nil {
		return nil, fmt.Errorf("could not read place search fixture: %w", err)
	}
	return NewGoogleMapsApiClientMock(*places), nil
}

// TextSearch matches the "<category> in <destination>" query on its category part.
func (c *GoogleMapsApiClientMock) TextSearch(ctx context.Context, query string, maxResults int) ([]PlaceResult, error) {
	category := strings.ToLower(strings.TrimSpace(strings.SplitN(query, " in ", 2)[0]))
	results := append([]PlaceResult(nil), c.places[category]...)
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// Geocode prefers fixture geometry and otherwise derives a stable point from the address.
func (c *GoogleMapsApiClientMock) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	if strings.TrimSpace(address) == "" {
		return nil, ErrNotFound
	}
	for _, results := range c.places {
		for _, r := range results {
			if r.FormattedAddress == address && (r.Geometry.Location != models.Coordinates{}) {
				loc := r.Geometry.Location
				return &loc, nil
			}
		}
	}

	h := fnv.New32a()
	h.Write([]byte(address))
	sum := h.Sum32()
	return &models.Coordinates{
		Lat: mockBase.Lat + float64(sum%1000)/10000,
		Lng: mockBase.Lng + float64((sum/1000)%1000)/10000,
	}, nil
}

// OptimizeRoute orders waypoints by nearest neighbour and prices legs at 30 km/h.
func (c *GoogleMapsApiClientMock) OptimizeRoute(ctx context.Context, origin, destination models.Coordinates, waypoints []models.Coordinates) (*RouteResult, error) {
	visited := make([]bool, len(waypoints))
	order := make([]int, 0, len(waypoints))
	current := origin
	for range waypoints {
		best := -1
		for i, w := range waypoints {
			if visited[i] {
				continue
			}
			if best == -1 || models.DistanceKm(current, w) < models.DistanceKm(current, waypoints[best]) {
				best = i
			}
		}
		visited[best] = true
		order = append(order, best)
		current = waypoints[best]
	}

	legs := make([]Leg, 0, len(order)+1)
	prev := origin
	for _, idx := range order {
		legs = append(legs, mockLeg(prev, waypoints[idx]))
		prev = waypoints[idx]
	}
	legs = append(legs, mockLeg(prev, destination))

	return &RouteResult{WaypointOrder: order, Legs: legs}, nil
}

func mockLeg(from, to models.Coordinates) Leg {
	km := models.DistanceKm(from, to)
	mins := int(math.Max(1, math.Round(km/30*60)))
	return Leg{
		DurationText: fmt.Sprintf("%d mins", mins),
		DistanceText: fmt.Sprintf("%.1f km", km),
	}
}
