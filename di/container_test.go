package di

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trip-planner/config"
	"trip-planner/models"
)

func developmentConfig(t *testing.T) config.Config {
	t.Setenv("PROJECT_ROOT", "..")
	return config.Config{
		Environment:            "development",
		NarrativeEnabled:       true,
		UpstreamTimeoutSeconds: 5,
		PlacesPerQuery:         5,
		GeocodeCacheTTLHours:   1,
		ItineraryTTLHours:      1,
		RateLimitRPS:           100,
		RateLimitBurst:         100,
		CORSAllowedOrigins:     []string{"*"},
	}
}

func TestNewContainer_DevelopmentUsesMocks(t *testing.T) {
	c, err := NewContainer(developmentConfig(t), zap.NewNop())

	require.NoError(t, err)
	assert.NotNil(t, c.RedisClient)
	assert.NotNil(t, c.ItineraryService)
	assert.NotNil(t, c.NarrativeAPI)
	assert.NotNil(t, c.ItineraryHttpServer)
}

func TestNewContainer_PlanRoundTripOverHTTP(t *testing.T) {
	// Setup
	c, err := NewContainer(developmentConfig(t), zap.NewNop())
	require.NoError(t, err)
	handler := c.ItineraryHttpServer.Handler()

	// Act: create
	body := `{"destination":"Lahore","activities":["city","food"],"travel_days":2}`
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/itineraries", strings.NewReader(body)))

	// Assert
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var it models.Itinerary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &it))
	assert.NotEmpty(t, it.ID)
	require.Len(t, it.Days, 2)
	assert.Equal(t, 4, it.Days[0].VisitCount(), "8 candidates over 2 days")
	assert.Equal(t, "09:00", it.Days[0].Visits()[0].StartTime)
	assert.NotEmpty(t, it.Weather)
	assert.Contains(t, it.Narrative, "Lahore")

	// Act: fetch back and look up the indexed places
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/itineraries/"+it.ID, nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/places/nearby?lat=31.588&lon=74.315&radius=50", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var nearby []models.Place
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &nearby))
	assert.Len(t, nearby, 8)
}

func TestNewContainer_NarrativeDisabled(t *testing.T) {
	cfg := developmentConfig(t)
	cfg.NarrativeEnabled = false

	c, err := NewContainer(cfg, zap.NewNop())

	require.NoError(t, err)
	assert.Nil(t, c.NarrativeAPI)
}
