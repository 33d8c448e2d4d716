package google

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"trip-planner/api"
	"trip-planner/models"
)

const TEXT_SEARCH_ENDPOINT = "/place/textsearch/json"
const GEOCODE_ENDPOINT = "/geocode/json"
const DIRECTIONS_ENDPOINT = "/directions/json"

// GoogleMapsApiClient embeds the common HTTPClient
type GoogleMapsApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewGoogleMapsApiClient creates a new instance of GoogleMapsApiClient
func NewGoogleMapsApiClient(httpClient *api.HTTPClient) *GoogleMapsApiClient {
	return &GoogleMapsApiClient{
		HTTPClient: httpClient,
	}
}

func (c *GoogleMapsApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// TextSearch runs a Places text search and returns at most maxResults hits.
func (c *GoogleMapsApiClient) TextSearch(ctx context.Context, query string, maxResults int) ([]PlaceResult, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("key", c.apiKey)

	var response TextSearchResponse
	if err := c.Request(ctx, "GET", TEXT_SEARCH_ENDPOINT, q, nil, nil, &response); err != nil {
		return nil, fmt.Errorf("text search %q: %w", query, err)
	}

	switch response.Status {
	case STATUS_OK:
	case STATUS_ZERO_RESULTS:
		return []PlaceResult{}, nil
	default:
		return nil, &StatusError{Endpoint: "textsearch", Status: response.Status, Message: response.ErrorMessage}
	}

	results := response.Results
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// Geocode resolves an address to its first match.
func (c *GoogleMapsApiClient) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.apiKey)

	var response GeocodeResponse
	if err := c.Request(ctx, "GET", GEOCODE_ENDPOINT, q, nil, nil, &response); err != nil {
		return nil, fmt.Errorf("geocode %q: %w", address, err)
	}

	switch response.Status {
	case STATUS_OK:
	case STATUS_ZERO_RESULTS:
		return nil, ErrNotFound
	default:
		return nil, &StatusError{Endpoint: "geocode", Status: response.Status, Message: response.ErrorMessage}
	}

	if len(response.Results) == 0 {
		return nil, ErrNotFound
	}
	loc := response.Results[0].Geometry.Location
	return &loc, nil
}

// OptimizeRoute calls the Directions API with optimize:true waypoints.
func (c *GoogleMapsApiClient) OptimizeRoute(ctx context.Context, origin, destination models.Coordinates, waypoints []models.Coordinates) (*RouteResult, error) {
	points := make([]string, 0, len(waypoints)+1)
	points = append(points, "optimize:true")
	for _, w := range waypoints {
		points = append(points, w.String())
	}

	q := url.Values{}
	q.Set("origin", origin.String())
	q.Set("destination", destination.String())
	q.Set("waypoints", strings.Join(points, "|"))
	q.Set("key", c.apiKey)

	var response DirectionsResponse
	if err := c.Request(ctx, "GET", DIRECTIONS_ENDPOINT, q, nil, nil, &response); err != nil {
		return nil, fmt.Errorf("directions: %w", err)
	}

	if response.Status != STATUS_OK {
		return nil, &StatusError{Endpoint: "directions", Status: response.Status, Message: response.ErrorMessage}
	}
	if len(response.Routes) == 0 {
		return nil, &StatusError{Endpoint: "directions", Status: STATUS_ZERO_RESULTS, Message: "no routes"}
	}

	route := response.Routes[0]
	result := &RouteResult{
		WaypointOrder: route.WaypointOrder,
		Legs:          make([]Leg, 0, len(route.Legs)),
	}
	for _, l := range route.Legs {
		result.Legs = append(result.Legs, Leg{DurationText: l.Duration.Text, DistanceText: l.Distance.Text})
	}
	return result, nil
}
