package services

import (
	"context"

	"go.uber.org/zap"

	"trip-planner/models"
)

// GeocodeCache is implemented by the Redis place DAO.
type GeocodeCache interface {
	GetGeocode(ctx context.Context, address string) (*models.Coordinates, error)
	SetGeocode(ctx context.Context, address string, c models.Coordinates) error
}

// CachingGeocoder serves repeated addresses from the cache. Cache errors
// never fail a lookup; they only cost an upstream call.
type CachingGeocoder struct {
	upstream Geocoder
	cache    GeocodeCache
	logger   *zap.Logger
}

func NewCachingGeocoder(upstream Geocoder, cache GeocodeCache, logger *zap.Logger) *CachingGeocoder {
	return &CachingGeocoder{
		upstream: upstream,
		cache:    cache,
		logger:   logger.Named("CachingGeocoder"),
	}
}

func (g *CachingGeocoder) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	cached, err := g.cache.GetGeocode(ctx, address)
	if err != nil {
		g.logger.Warn("Geocode cache read failed", zap.String("address", address), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	c, err := g.upstream.Geocode(ctx, address)
	if err != nil || c == nil {
		return c, err
	}
	if err := g.cache.SetGeocode(ctx, address, *c); err != nil {
		g.logger.Warn("Geocode cache write failed", zap.String("address", address), zap.Error(err))
	}
	return c, nil
}
