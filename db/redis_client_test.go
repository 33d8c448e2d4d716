package db_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"trip-planner/db"
)

// Test the Set and Get methods of the RedisClient implementations
func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient()},
		// GeoRedisClient needs a live Redis and is covered by integration runs
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()
			key := "test-key"
			value := "test-value"

			// Act
			if err := test.client.Set(ctx, key, value, 0); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			retrieved, err := test.client.Get(ctx, key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}

			// Assert
			if retrieved != value {
				t.Errorf("Expected %s, got %s", value, retrieved)
			}

			if err := test.client.Del(ctx, key); err != nil {
				t.Fatalf("Del failed: %v", err)
			}
			if _, err := test.client.Get(ctx, key); err != db.ErrNotFound {
				t.Errorf("Expected ErrNotFound after Del, got %v", err)
			}
		})
	}
}

func TestMockRedisClient_TTL(t *testing.T) {
	client := db.NewMockRedisClient()
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	client.SetClock(func() time.Time { return now })
	ctx := context.Background()

	if err := client.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := client.Get(ctx, "k"); err != nil {
		t.Fatalf("Expected key before expiry, got %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := client.Get(ctx, "k"); err != db.ErrNotFound {
		t.Errorf("Expected ErrNotFound after expiry, got %v", err)
	}
}

// Test AddLocationWithJSON and GetLocationsWithinRadius for MockRedisClient
func TestRedisClient_AddLocationWithJSONAndGetLocationsWithinRadius(t *testing.T) {
	client := db.NewMockRedisClient()
	ctx := context.Background()
	geoKey := "places"

	near := map[string]string{"id": "fort", "name": "Lahore Fort"}
	far := map[string]string{"id": "faisal", "name": "Faisal Mosque"}

	// Act
	if err := client.AddLocationWithJSON(ctx, geoKey, "fort", 31.588, 74.315, near); err != nil {
		t.Fatalf("AddLocationWithJSON failed: %v", err)
	}
	if err := client.AddLocationWithJSON(ctx, geoKey, "faisal", 33.729, 73.037, far); err != nil {
		t.Fatalf("AddLocationWithJSON failed: %v", err)
	}

	results, err := client.GetLocationsWithinRadius(ctx, geoKey, 31.52, 74.35, 25)
	if err != nil {
		t.Fatalf("GetLocationsWithinRadius failed: %v", err)
	}

	// Assert
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	var retrieved map[string]string
	if err := json.Unmarshal([]byte(results[0]), &retrieved); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if retrieved["id"] != "fort" {
		t.Errorf("Expected place ID 'fort', got '%s'", retrieved["id"])
	}
}

func TestRedisClient_GetLocationsWithinRadius_UnknownKey(t *testing.T) {
	results, err := db.NewMockRedisClient().GetLocationsWithinRadius(context.Background(), "missing", 0, 0, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

// Test Ping for the mock client
func TestRedisClient_Ping(t *testing.T) {
	if err := db.NewMockRedisClient().Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
