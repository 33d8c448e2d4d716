package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"trip-planner/api/google"
	"trip-planner/config"
	"trip-planner/models"
)

var (
	travelUnitPattern     = regexp.MustCompile(`(\d+)\s*(day|hour|hr|min)`)
	leadingIntegerPattern = regexp.MustCompile(`^\s*(\d+)`)
)

// ParseTravelMinutes reads a provider travel time such as "12 mins" or
// "1 hour 5 mins". Every unit is counted, so "1 hour 5 mins" is 65 minutes
// rather than the leading 1; this replaces the old leading-integer reading.
// Text with no unit is read by its leading integer as minutes. Results are
// capped at config.MAX_TRAVEL_TIME. ok is false when no number can be found.
func ParseTravelMinutes(text string) (time.Duration, bool) {
	lower := strings.ToLower(text)
	if matches := travelUnitPattern.FindAllStringSubmatch(lower, -1); len(matches) > 0 {
		var total time.Duration
		for _, m := range matches {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, false
			}
			switch m[2] {
			case "day":
				total = addCapped(total, n, 24*time.Hour)
			case "hour", "hr":
				total = addCapped(total, n, time.Hour)
			default:
				total = addCapped(total, n, time.Minute)
			}
		}
		return total, true
	}

	m := leadingIntegerPattern.FindStringSubmatch(lower)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return addCapped(0, n, time.Minute), true
}

// addCapped adds n units to total without overflowing past config.MAX_TRAVEL_TIME.
func addCapped(total time.Duration, n int, unit time.Duration) time.Duration {
	if int64(n) > int64((config.MAX_TRAVEL_TIME-total)/unit) {
		return config.MAX_TRAVEL_TIME
	}
	return total + time.Duration(n)*unit
}

// RouteSequencerService orders candidate places into a visiting sequence
// that minimizes total travel from the start location and back.
type RouteSequencerService struct {
	geocoder  Geocoder
	optimizer RouteOptimizer
	timeout   time.Duration
	logger    *zap.Logger
}

func NewRouteSequencerService(
	geocoder Geocoder,
	optimizer RouteOptimizer,
	timeout time.Duration,
	logger *zap.Logger,
) *RouteSequencerService {
	return &RouteSequencerService{
		geocoder:  geocoder,
		optimizer: optimizer,
		timeout:   timeout,
		logger:    logger.Named("RouteSequencer"),
	}
}

// Sequence never fails. Each upstream problem falls back to the best list
// available at that point: the input itself, or the geocoded subset in
// input order. The input slice is never modified.
func (rs *RouteSequencerService) Sequence(ctx context.Context, places []models.Place, startLocation string) []models.Place {
	original := clonePlaces(places)
	if len(original) < 2 {
		return original
	}

	start := geocodeResult(ctx, rs.geocoder, rs.timeout, startLocation)
	if !start.OK() {
		rs.logger.Warn("Start location could not be geocoded, keeping candidate order",
			zap.String("start_location", startLocation),
			zap.String("reason", string(start.Reason)),
			zap.Error(start.Err))
		return original
	}

	resolved := make([]models.Place, 0, len(original))
	for _, p := range original {
		r := geocodeResult(ctx, rs.geocoder, rs.timeout, p.Address)
		if !r.OK() {
			rs.logger.Warn("Dropping place that could not be geocoded",
				zap.String("place", p.Name),
				zap.String("address", p.Address),
				zap.String("reason", string(r.Reason)),
				zap.Error(r.Err))
			continue
		}
		c := r.Value
		p.Coordinates = &c
		resolved = append(resolved, p)
	}
	if len(resolved) == 0 {
		rs.logger.Warn("No place could be geocoded, keeping candidate order")
		return original
	}
	if len(resolved) < 2 {
		return resolved
	}

	route := rs.optimize(ctx, start.Value, resolved)
	if !route.OK() {
		rs.logger.Warn("Route optimization degraded, keeping geocoded order",
			zap.String("reason", string(route.Reason)),
			zap.Error(route.Err))
		return resolved
	}
	return route.Value
}

func (rs *RouteSequencerService) optimize(ctx context.Context, start models.Coordinates, resolved []models.Place) models.Result[[]models.Place] {
	waypoints := make([]models.Coordinates, len(resolved))
	for i, p := range resolved {
		waypoints[i] = *p.Coordinates
	}

	route, err := withTimeout(ctx, rs.timeout, func(ctx context.Context) (*google.RouteResult, error) {
		return rs.optimizer.OptimizeRoute(ctx, start, start, waypoints)
	})
	var statusErr *google.StatusError
	switch {
	case errors.As(err, &statusErr):
		return models.Degraded[[]models.Place](models.ReasonOptimizationStatus, err)
	case err != nil:
		return models.Degraded[[]models.Place](models.ReasonOptimizationFailed, err)
	case route == nil:
		return models.Degraded[[]models.Place](models.ReasonMalformedResponse, errors.New("empty route"))
	}

	if err := validatePermutation(route.WaypointOrder, len(resolved)); err != nil {
		return models.Degraded[[]models.Place](models.ReasonMalformedResponse, err)
	}

	ordered := make([]models.Place, len(resolved))
	for i, idx := range route.WaypointOrder {
		p := resolved[idx]
		// legs[0] runs from the start to the first stop
		if i+1 < len(route.Legs) {
			leg := route.Legs[i+1]
			if d, ok := ParseTravelMinutes(leg.DurationText); ok {
				p.TravelTimeToNext = &d
			} else {
				rs.logger.Debug("Unparsable leg duration", zap.String("duration", leg.DurationText))
			}
			p.TravelDistanceToNext = leg.DistanceText
		}
		ordered[i] = p
	}
	return models.Ok(ordered)
}

func validatePermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("waypoint order has %d entries for %d places", len(order), n)
	}
	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n {
			return fmt.Errorf("waypoint index %d out of range", idx)
		}
		if seen[idx] {
			return fmt.Errorf("waypoint index %d repeated", idx)
		}
		seen[idx] = true
	}
	return nil
}

func clonePlaces(places []models.Place) []models.Place {
	out := make([]models.Place, len(places))
	for i, p := range places {
		if p.Coordinates != nil {
			c := *p.Coordinates
			p.Coordinates = &c
		}
		if p.TravelTimeToNext != nil {
			d := *p.TravelTimeToNext
			p.TravelTimeToNext = &d
		}
		out[i] = p
	}
	return out
}
