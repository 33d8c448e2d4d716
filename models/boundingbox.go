package models

import "math"

// BoundingBox is the smallest lat/lng box around a set of points, with its center.
type BoundingBox struct {
	Lat    float64 `json:"lat"`
	LatMax float64 `json:"lat_max"`
	LatMin float64 `json:"lat_min"`
	Lng    float64 `json:"lng"`
	LngMax float64 `json:"lng_max"`
	LngMin float64 `json:"lng_min"`
}

// BoundsOf reports false when points is empty.
func BoundsOf(points []Coordinates) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	b := BoundingBox{
		LatMin: math.Inf(1), LatMax: math.Inf(-1),
		LngMin: math.Inf(1), LngMax: math.Inf(-1),
	}
	for _, p := range points {
		b.LatMin = math.Min(b.LatMin, p.Lat)
		b.LatMax = math.Max(b.LatMax, p.Lat)
		b.LngMin = math.Min(b.LngMin, p.Lng)
		b.LngMax = math.Max(b.LngMax, p.Lng)
	}
	b.Lat = (b.LatMin + b.LatMax) / 2
	b.Lng = (b.LngMin + b.LngMax) / 2
	return b, true
}

// Bounds covers every scheduled visit of the itinerary.
func (it *Itinerary) Bounds() (BoundingBox, bool) {
	var points []Coordinates
	for _, d := range it.Days {
		for _, v := range d.Visits() {
			points = append(points, v.Coordinates)
		}
	}
	return BoundsOf(points)
}
