package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"trip-planner/api/google"
	"trip-planner/models"
)

const DEFAULT_PLACES_PER_QUERY = 5

// ParseCategories maps free-form activity labels to the supported categories,
// silently dropping unknown labels and duplicates. Order is preserved.
func ParseCategories(labels []string) []models.ActivityCategory {
	seen := make(map[models.ActivityCategory]struct{}, len(labels))
	categories := make([]models.ActivityCategory, 0, len(labels))
	for _, label := range labels {
		c, ok := models.ParseActivityCategory(label)
		if !ok {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	return categories
}

// PlaceAggregatorService gathers candidate places for a destination, one
// text search per activity category.
type PlaceAggregatorService struct {
	searcher       PlaceSearcher
	placesPerQuery int
	timeout        time.Duration
	logger         *zap.Logger
}

func NewPlaceAggregatorService(
	searcher PlaceSearcher,
	placesPerQuery int,
	timeout time.Duration,
	logger *zap.Logger,
) *PlaceAggregatorService {
	if placesPerQuery <= 0 {
		placesPerQuery = DEFAULT_PLACES_PER_QUERY
	}
	return &PlaceAggregatorService{
		searcher:       searcher,
		placesPerQuery: placesPerQuery,
		timeout:        timeout,
		logger:         logger.Named("PlaceAggregatorService"),
	}
}

func categoryQuery(c models.ActivityCategory, destination string) string {
	return fmt.Sprintf("%s in %s", c, destination)
}

// Aggregate returns the concatenated search results in category order. A
// category whose search fails or comes back empty contributes nothing; the
// others still run.
func (pa *PlaceAggregatorService) Aggregate(ctx context.Context, destination string, categories []models.ActivityCategory) ([]models.Place, error) {
	places := make([]models.Place, 0, len(categories)*pa.placesPerQuery)
	for _, c := range categories {
		r := pa.search(ctx, c, destination)
		if !r.OK() {
			pa.logger.Warn("Category search degraded, skipping category",
				zap.String("category", string(c)),
				zap.String("reason", string(r.Reason)),
				zap.Error(r.Err))
			continue
		}
		pa.logger.Debug("Category search returned places",
			zap.String("category", string(c)), zap.Int("count", len(r.Value)))
		places = append(places, r.Value...)
	}
	if len(places) == 0 {
		return nil, models.ErrNoCandidatePlaces
	}
	return places, nil
}

func (pa *PlaceAggregatorService) search(ctx context.Context, c models.ActivityCategory, destination string) models.Result[[]models.Place] {
	query := categoryQuery(c, destination)
	results, err := withTimeout(ctx, pa.timeout, func(ctx context.Context) ([]google.PlaceResult, error) {
		return pa.searcher.TextSearch(ctx, query, pa.placesPerQuery)
	})
	if err != nil {
		return models.Degraded[[]models.Place](models.ReasonSearchFailed, err)
	}

	places := make([]models.Place, 0, len(results))
	for _, pr := range results {
		places = append(places, pr.ToPlace(c))
		if len(places) == pa.placesPerQuery {
			break
		}
	}
	if len(places) == 0 {
		return models.Degraded[[]models.Place](models.ReasonSearchEmpty, nil)
	}
	return models.Ok(places)
}
