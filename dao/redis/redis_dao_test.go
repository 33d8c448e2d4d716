package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trip-planner/db"
	"trip-planner/models"
)

func TestRedisPlaceDAO_Geocode_RoundTripAndMiss(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient()
	dao := NewRedisPlaceDAO(mockClient, time.Hour, zap.NewNop())
	ctx := context.Background()

	// Act
	miss, err := dao.GetGeocode(ctx, "Fort Road, Lahore")
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, dao.SetGeocode(ctx, "Fort Road, Lahore", models.Coordinates{Lat: 31.58, Lng: 74.31}))

	// Assert: lookups are case and whitespace insensitive
	hit, err := dao.GetGeocode(ctx, "  fort road,   LAHORE ")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, models.Coordinates{Lat: 31.58, Lng: 74.31}, *hit)
}

func TestRedisPlaceDAO_Geocode_Expires(t *testing.T) {
	mockClient := db.NewMockRedisClient()
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	mockClient.SetClock(func() time.Time { return now })
	dao := NewRedisPlaceDAO(mockClient, time.Hour, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, dao.SetGeocode(ctx, "Mall Road", models.Coordinates{Lat: 1, Lng: 2}))
	now = now.Add(2 * time.Hour)

	got, err := dao.GetGeocode(ctx, "Mall Road")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisPlaceDAO_UpsertAndGetNearby(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient()
	dao := NewRedisPlaceDAO(mockClient, time.Hour, zap.NewNop())
	ctx := context.Background()
	travel := 20 * time.Minute

	fort := models.Place{
		Name: "Lahore Fort", Address: "Fort Rd, Lahore",
		Coordinates:      &models.Coordinates{Lat: 31.588, Lng: 74.315},
		TravelTimeToNext: &travel,
	}
	shalimar := models.Place{
		Name: "Shalimar Gardens", Address: "GT Road, Lahore",
		Coordinates: &models.Coordinates{Lat: 31.586, Lng: 74.382},
	}

	// Act
	require.NoError(t, dao.UpsertPlace(ctx, fort))
	require.NoError(t, dao.UpsertPlace(ctx, shalimar))
	places, err := dao.GetNearbyPlaces(ctx, 31.588, 74.316, 3)

	// Assert
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Lahore Fort", places[0].Name)
	assert.Nil(t, places[0].TravelTimeToNext)
	assert.NotNil(t, fort.TravelTimeToNext, "caller place must not be modified")
}

func TestRedisPlaceDAO_UpsertPlace_RequiresCoordinates(t *testing.T) {
	dao := NewRedisPlaceDAO(db.NewMockRedisClient(), time.Hour, zap.NewNop())

	err := dao.UpsertPlace(context.Background(), models.Place{Name: "Nowhere"})

	assert.Error(t, err)
}

func TestRedisPlaceDAO_GetNearbyPlaces_NoResults(t *testing.T) {
	dao := NewRedisPlaceDAO(db.NewMockRedisClient(), time.Hour, zap.NewNop())

	places, err := dao.GetNearbyPlaces(context.Background(), 31.5, 74.3, 10)

	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestRedisItineraryDAO_SaveAndGet(t *testing.T) {
	dao := NewRedisItineraryDAO(db.NewMockRedisClient(), time.Hour)
	ctx := context.Background()
	it := &models.Itinerary{
		ID:          "abc",
		Destination: "Lahore",
		TravelDays:  1,
		Days:        []models.DaySchedule{{DayIndex: 1, Slots: models.NewDaySlots()}},
		Weather:     []models.WeatherForecast{},
	}

	require.NoError(t, dao.SaveItinerary(ctx, it))
	got, err := dao.GetItinerary(ctx, "abc")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Lahore", got.Destination)
	assert.Len(t, got.Days, 1)

	missing, err := dao.GetItinerary(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRedisItineraryDAO_SaveRequiresID(t *testing.T) {
	dao := NewRedisItineraryDAO(db.NewMockRedisClient(), time.Hour)

	assert.Error(t, dao.SaveItinerary(context.Background(), &models.Itinerary{}))
}
