package services

import (
	"context"

	"go.uber.org/zap"

	"trip-planner/dao/redis"
	"trip-planner/models"
)

// PlaceService exposes the geo index of places seen in generated itineraries.
type PlaceService struct {
	placeDao *redis.RedisPlaceDAO
	logger   *zap.Logger
}

// NewPlaceService constructs a new PlaceService with Redis dependency injection.
func NewPlaceService(placeDao *redis.RedisPlaceDAO, logger *zap.Logger) *PlaceService {
	return &PlaceService{
		placeDao: placeDao,
		logger:   logger.Named("PlaceService"),
	}
}

func (ps *PlaceService) GetPlacesNearby(ctx context.Context, lat, lon, radiusKm float64) ([]models.Place, error) {
	return ps.placeDao.GetNearbyPlaces(ctx, lat, lon, radiusKm)
}

// IndexItinerary adds every scheduled visit to the geo index. Failures are
// logged per place and do not stop the rest.
func (ps *PlaceService) IndexItinerary(ctx context.Context, it *models.Itinerary) int {
	indexed := 0
	for _, day := range it.Days {
		for _, v := range day.Visits() {
			c := v.Coordinates
			p := models.Place{Name: v.Name, Address: v.Address, Coordinates: &c}
			if err := ps.placeDao.UpsertPlace(ctx, p); err != nil {
				ps.logger.Warn("Failed to index place", zap.String("place", v.Name), zap.Error(err))
				continue
			}
			indexed++
		}
	}
	return indexed
}
