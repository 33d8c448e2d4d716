package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner/api"
)

func TestGetForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, FORECAST_ENDPOINT, r.URL.Path)
		assert.Equal(t, "Lahore", q.Get("q"))
		assert.Equal(t, "secret", q.Get("appid"))
		assert.Equal(t, "metric", q.Get("units"))
		assert.Equal(t, "16", q.Get("cnt"))

		w.Write([]byte(`{"cod":"200","list":[
			{"dt":1791972000,"dt_txt":"2026-10-14 09:00:00","main":{"temp":28.4},"weather":[{"description":"haze","icon":"50d"}]},
			{"dt":1791982800,"dt_txt":"2026-10-14 12:00:00","main":{"temp":31.1},"weather":[]}
		]}`))
	}))
	defer srv.Close()

	client := NewOpenWeatherApiClient(api.NewHTTPClient(srv.URL, time.Second))
	client.SetCredentials("secret")

	got, err := client.GetForecast(context.Background(), "Lahore", 2)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC), got[0].Timestamp)
	assert.Equal(t, 28.4, got[0].Temp)
	assert.Equal(t, "haze", got[0].Description)
	assert.Equal(t, "50d", got[0].Icon)
	assert.Equal(t, "", got[1].Description)
}

func TestGetForecast_ErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// error bodies carry a numeric cod
		w.Write([]byte(`{"cod":404,"message":"city not found"}`))
	}))
	defer srv.Close()

	client := NewOpenWeatherApiClient(api.NewHTTPClient(srv.URL, time.Second))

	_, err := client.GetForecast(context.Background(), "Atlantis", 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "city not found")
}

func TestGetForecast_CapsBucketCount(t *testing.T) {
	var cnt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cnt = r.URL.Query().Get("cnt")
		w.Write([]byte(`{"cod":"200","list":[]}`))
	}))
	defer srv.Close()

	client := NewOpenWeatherApiClient(api.NewHTTPClient(srv.URL, time.Second))

	_, err := client.GetForecast(context.Background(), "Lahore", 14)

	require.NoError(t, err)
	assert.Equal(t, "40", cnt)
}

func TestOpenWeatherApiClientMock(t *testing.T) {
	now := time.Date(2026, 10, 14, 10, 30, 0, 0, time.UTC)
	client := NewOpenWeatherApiClientMock(func() time.Time { return now })

	got, err := client.GetForecast(context.Background(), "Lahore", 2)

	require.NoError(t, err)
	require.Len(t, got, 16)
	assert.Equal(t, time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC), got[0].Timestamp)
}
