package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"trip-planner/db"
	"trip-planner/models"
)

const PLACES_GEO_KEY_V1 = "places_geo_v1"
const PLACES_GEO_MEMBER_FORMAT_V1 = "places_geo_place_v1:%s"

// GEOCODE_KEY_FORMAT caches a resolved address.
const GEOCODE_KEY_FORMAT = "geocode_v1:%s"

// RedisPlaceDAO caches geocoding results and indexes geocoded places by location.
type RedisPlaceDAO struct {
	client     db.RedisClient
	geocodeTTL time.Duration
	logger     *zap.Logger
}

func NewRedisPlaceDAO(client db.RedisClient, geocodeTTL time.Duration, logger *zap.Logger) *RedisPlaceDAO {
	return &RedisPlaceDAO{
		client:     client,
		geocodeTTL: geocodeTTL,
		logger:     logger.Named("RedisPlaceDAO"),
	}
}

// NormalizeAddress is the cache identity of an address.
func NormalizeAddress(address string) string {
	return strings.Join(strings.Fields(strings.ToLower(address)), " ")
}

// SetGeocode caches the coordinates of an address.
func (dao *RedisPlaceDAO) SetGeocode(ctx context.Context, address string, c models.Coordinates) error {
	key := fmt.Sprintf(GEOCODE_KEY_FORMAT, NormalizeAddress(address))
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal coordinates for %q: %w", address, err)
	}
	if err := dao.client.Set(ctx, key, string(data), dao.geocodeTTL); err != nil {
		return fmt.Errorf("failed to set geocode in redis: %w", err)
	}
	return nil
}

// GetGeocode returns the cached coordinates, or nil on a cache miss.
func (dao *RedisPlaceDAO) GetGeocode(ctx context.Context, address string) (*models.Coordinates, error) {
	key := fmt.Sprintf(GEOCODE_KEY_FORMAT, NormalizeAddress(address))
	str, err := dao.client.Get(ctx, key)
	if errors.Is(err, db.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get geocode from redis: %w", err)
	}
	var c models.Coordinates
	if err := json.Unmarshal([]byte(str), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geocode JSON: %w", err)
	}
	return &c, nil
}

// UpsertPlace stores a geocoded place in the geo index.
func (dao *RedisPlaceDAO) UpsertPlace(ctx context.Context, p models.Place) error {
	if p.Coordinates == nil {
		return fmt.Errorf("place %q has no coordinates", p.Name)
	}
	// travel legs belong to one itinerary, not to the place
	p.TravelTimeToNext = nil
	p.TravelDistanceToNext = ""

	member := fmt.Sprintf(PLACES_GEO_MEMBER_FORMAT_V1, NormalizeAddress(p.Name+" "+p.Address))
	return dao.client.AddLocationWithJSON(ctx, PLACES_GEO_KEY_V1, member, p.Coordinates.Lat, p.Coordinates.Lng, p)
}

// GetNearbyPlaces retrieves indexed places within radiusKm, nearest first.
func (dao *RedisPlaceDAO) GetNearbyPlaces(ctx context.Context, lat, lon, radiusKm float64) ([]models.Place, error) {
	placesJSON, err := dao.client.GetLocationsWithinRadius(ctx, PLACES_GEO_KEY_V1, lat, lon, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to get places: %w", err)
	}

	places := make([]models.Place, 0, len(placesJSON))
	for _, placeJSON := range placesJSON {
		var p models.Place
		if err := json.Unmarshal([]byte(placeJSON), &p); err != nil {
			dao.logger.Warn("Skipping undecodable place", zap.Error(err))
			continue
		}
		places = append(places, p)
	}
	return places, nil
}
