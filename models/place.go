package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

const earthRadiusKm = 6371.0

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the pair the way the Google APIs expect it ("lat,lng").
func (c Coordinates) String() string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}

// DistanceKm is the great-circle distance between two points.
func DistanceKm(a, b Coordinates) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(b.Lat - a.Lat)
	dLng := rad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// ActivityCategory is one value of the fixed activity vocabulary.
type ActivityCategory string

const (
	ActivityCity    ActivityCategory = "city"
	ActivityBeaches ActivityCategory = "beaches"
	ActivityHiking  ActivityCategory = "hiking"
	ActivityFood    ActivityCategory = "food"
)

var knownActivities = map[ActivityCategory]struct{}{
	ActivityCity:    {},
	ActivityBeaches: {},
	ActivityHiking:  {},
	ActivityFood:    {},
}

// ParseActivityCategory reports false for values outside the vocabulary.
func ParseActivityCategory(raw string) (ActivityCategory, bool) {
	c := ActivityCategory(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := knownActivities[c]
	return c, ok
}

// Place is one point of interest. Coordinates and the travel fields stay nil
// until the route sequencer fills them in.
type Place struct {
	Name             string           `json:"name"`
	Address          string           `json:"address"`
	Coordinates      *Coordinates     `json:"coordinates,omitempty"`
	Rating           *float64         `json:"rating,omitempty"`
	PriceLevel       *int             `json:"price_level,omitempty"`
	UserRatingsTotal *int             `json:"user_ratings_total,omitempty"`
	Category         ActivityCategory `json:"category,omitempty"`

	// TravelTimeToNext goes over the wire as whole minutes (travel_minutes_to_next).
	TravelTimeToNext     *time.Duration `json:"-"`
	TravelDistanceToNext string         `json:"travel_distance_to_next,omitempty"`
}

func (p Place) MarshalJSON() ([]byte, error) {
	type alias Place
	var minutes *int64
	if p.TravelTimeToNext != nil {
		m := int64(*p.TravelTimeToNext / time.Minute)
		minutes = &m
	}
	return json.Marshal(struct {
		alias
		TravelMinutesToNext *int64 `json:"travel_minutes_to_next,omitempty"`
	}{alias(p), minutes})
}

func (p *Place) UnmarshalJSON(data []byte) error {
	type alias Place
	aux := struct {
		*alias
		TravelMinutesToNext *int64 `json:"travel_minutes_to_next,omitempty"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.TravelTimeToNext = nil
	if aux.TravelMinutesToNext != nil {
		d := time.Duration(*aux.TravelMinutesToNext) * time.Minute
		p.TravelTimeToNext = &d
	}
	return nil
}

// Schedulable reports whether the place carries everything a visit needs.
func (p Place) Schedulable() bool {
	return p.Name != "" && p.Address != "" && p.Coordinates != nil
}

func (p *Place) ToString() string {
	if p.Coordinates == nil {
		return fmt.Sprintf("Place(name=%s, address=%s)", p.Name, p.Address)
	}
	return fmt.Sprintf("Place(name=%s, address=%s, lat=%f, lng=%f)",
		p.Name, p.Address, p.Coordinates.Lat, p.Coordinates.Lng)
}
