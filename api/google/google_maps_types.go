package google

import "trip-planner/models"

const STATUS_OK = "OK"
const STATUS_ZERO_RESULTS = "ZERO_RESULTS"

type TextSearchResponse struct {
	Results      []PlaceResult `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

type PlaceResult struct {
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
	Rating           *float64 `json:"rating,omitempty"`
	PriceLevel       *int     `json:"price_level,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
}

// ToPlace converts a search hit into an ungeocoded candidate. Search geometry
// is dropped; the route sequencer resolves coordinates from the address.
func (r PlaceResult) ToPlace(category models.ActivityCategory) models.Place {
	return models.Place{
		Name:             r.Name,
		Address:          r.FormattedAddress,
		Rating:           r.Rating,
		PriceLevel:       r.PriceLevel,
		UserRatingsTotal: r.UserRatingsTotal,
		Category:         category,
	}
}

type Geometry struct {
	Location models.Coordinates `json:"location"`
}

type GeocodeResponse struct {
	Results      []GeocodeResult `json:"results"`
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

type GeocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
}

type DirectionsResponse struct {
	Routes       []DirectionsRoute `json:"routes"`
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
}

type DirectionsRoute struct {
	WaypointOrder []int      `json:"waypoint_order"`
	Legs          []RouteLeg `json:"legs"`
}

type RouteLeg struct {
	Duration TextValue `json:"duration"`
	Distance TextValue `json:"distance"`
}

type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// RouteResult is what the sequencer consumes from an optimized route.
type RouteResult struct {
	WaypointOrder []int
	Legs          []Leg
}

type Leg struct {
	DurationText string
	DistanceText string
}
