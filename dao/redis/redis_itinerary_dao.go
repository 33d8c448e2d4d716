package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trip-planner/db"
	"trip-planner/models"
)

const ITINERARY_KEY_FORMAT = "itinerary_v1:%s"

// RedisItineraryDAO persists generated itineraries for later retrieval.
type RedisItineraryDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

func NewRedisItineraryDAO(client db.RedisClient, ttl time.Duration) *RedisItineraryDAO {
	return &RedisItineraryDAO{client: client, ttl: ttl}
}

func (dao *RedisItineraryDAO) SaveItinerary(ctx context.Context, it *models.Itinerary) error {
	if it.ID == "" {
		return errors.New("itinerary has no id")
	}
	data, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("failed to marshal itinerary %s: %w", it.ID, err)
	}
	if err := dao.client.Set(ctx, fmt.Sprintf(ITINERARY_KEY_FORMAT, it.ID), string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set itinerary in redis: %w", err)
	}
	return nil
}

// GetItinerary returns nil, nil when the itinerary does not exist.
func (dao *RedisItineraryDAO) GetItinerary(ctx context.Context, id string) (*models.Itinerary, error) {
	str, err := dao.client.Get(ctx, fmt.Sprintf(ITINERARY_KEY_FORMAT, id))
	if errors.Is(err, db.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get itinerary from redis: %w", err)
	}
	var it models.Itinerary
	if err := json.Unmarshal([]byte(str), &it); err != nil {
		return nil, fmt.Errorf("failed to unmarshal itinerary JSON: %w", err)
	}
	return &it, nil
}
