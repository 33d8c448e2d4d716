package google

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner/models"
)

func TestLoadGoogleMapsApiClientMock(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "places.json")
	content := `{"food": [
		{"name": "Haveli", "formatted_address": "Fort Road, Lahore", "geometry": {"location": {"lat": 31.588, "lng": 74.311}}},
		{"name": "Butt Karahi", "formatted_address": "Lakshmi Chowk, Lahore"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// Act
	client, err := LoadGoogleMapsApiClientMock(path)
	require.NoError(t, err)
	results, err := client.TextSearch(context.Background(), "food in Lahore", 5)

	// Assert
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Haveli", results[0].Name)

	loc, err := client.Geocode(context.Background(), "Fort Road, Lahore")
	require.NoError(t, err)
	assert.Equal(t, models.Coordinates{Lat: 31.588, Lng: 74.311}, *loc)
}

func TestGoogleMapsApiClientMock_GeocodeIsDeterministic(t *testing.T) {
	client := NewGoogleMapsApiClientMock(nil)

	a, err := client.Geocode(context.Background(), "Mall Road, Lahore")
	require.NoError(t, err)
	b, err := client.Geocode(context.Background(), "Mall Road, Lahore")
	require.NoError(t, err)

	assert.Equal(t, a, b)

	_, err = client.Geocode(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoogleMapsApiClientMock_OptimizeRoute(t *testing.T) {
	client := NewGoogleMapsApiClientMock(nil)
	start := models.Coordinates{Lat: 0, Lng: 0}
	waypoints := []models.Coordinates{
		{Lat: 0.3, Lng: 0},
		{Lat: 0.1, Lng: 0},
		{Lat: 0.2, Lng: 0},
	}

	route, err := client.OptimizeRoute(context.Background(), start, start, waypoints)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, route.WaypointOrder)
	assert.Len(t, route.Legs, len(waypoints)+1)
}
