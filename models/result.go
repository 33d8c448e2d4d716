package models

import "fmt"

// DegradationReason names why an upstream call could not be used.
type DegradationReason string

const (
	ReasonNone               DegradationReason = ""
	ReasonSearchFailed       DegradationReason = "search_failed"
	ReasonSearchEmpty        DegradationReason = "search_empty"
	ReasonGeocodeFailed      DegradationReason = "geocode_failed"
	ReasonGeocodeNotFound    DegradationReason = "geocode_not_found"
	ReasonOptimizationFailed DegradationReason = "optimization_failed"
	ReasonOptimizationStatus DegradationReason = "optimization_status"
	ReasonMalformedResponse  DegradationReason = "malformed_response"
	ReasonWeatherFailed      DegradationReason = "weather_failed"
	ReasonNarrativeFailed    DegradationReason = "narrative_failed"
)

// Result carries either a usable value or the reason it is missing.
// Pipeline stages switch on OK() to pick the value or their fallback.
type Result[T any] struct {
	Value  T
	Reason DegradationReason
	Err    error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func Degraded[T any](reason DegradationReason, err error) Result[T] {
	return Result[T]{Reason: reason, Err: err}
}

func (r Result[T]) OK() bool {
	return r.Reason == ReasonNone
}

// ValueOr returns the value, or fallback when the result is degraded.
func (r Result[T]) ValueOr(fallback T) T {
	if r.OK() {
		return r.Value
	}
	return fallback
}

func (r Result[T]) String() string {
	if r.OK() {
		return "ok"
	}
	if r.Err != nil {
		return fmt.Sprintf("%s: %v", r.Reason, r.Err)
	}
	return string(r.Reason)
}
