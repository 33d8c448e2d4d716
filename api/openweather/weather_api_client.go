package openweather

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"trip-planner/api"
	"trip-planner/models"
)

const FORECAST_ENDPOINT = "/forecast"

// the 5 day / 3 hour endpoint never returns more than 40 buckets
const BUCKETS_PER_DAY = 8
const MAX_BUCKETS = 40

type ForecastResponse struct {
	// cod is a string on success ("200") and sometimes a number on errors
	Cod     interface{}    `json:"cod"`
	Message interface{}    `json:"message"`
	List    []ForecastItem `json:"list"`
}

type ForecastItem struct {
	Dt      int64  `json:"dt"`
	DtTxt   string `json:"dt_txt"`
	Main    Main   `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

type Main struct {
	Temp float64 `json:"temp"`
}

func (i ForecastItem) toBucket() models.ForecastBucket {
	b := models.ForecastBucket{Temp: i.Main.Temp}
	if ts, err := time.Parse("2006-01-02 15:04:05", i.DtTxt); err == nil {
		b.Timestamp = ts
	} else {
		b.Timestamp = time.Unix(i.Dt, 0).UTC()
	}
	if len(i.Weather) > 0 {
		b.Description = i.Weather[0].Description
		b.Icon = i.Weather[0].Icon
	}
	return b
}

// OpenWeatherApiClient embeds the common HTTPClient
type OpenWeatherApiClient struct {
	*api.HTTPClient
	apiKey string
}

func NewOpenWeatherApiClient(httpClient *api.HTTPClient) *OpenWeatherApiClient {
	return &OpenWeatherApiClient{HTTPClient: httpClient}
}

func (c *OpenWeatherApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

func (c *OpenWeatherApiClient) GetForecast(ctx context.Context, destination string, days int) ([]models.ForecastBucket, error) {
	cnt := days * BUCKETS_PER_DAY
	if cnt <= 0 || cnt > MAX_BUCKETS {
		cnt = MAX_BUCKETS
	}

	q := url.Values{}
	q.Set("q", destination)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	q.Set("cnt", strconv.Itoa(cnt))

	var response ForecastResponse
	if err := c.Request(ctx, "GET", FORECAST_ENDPOINT, q, nil, nil, &response); err != nil {
		return nil, fmt.Errorf("forecast %q: %w", destination, err)
	}
	if code := fmt.Sprint(response.Cod); code != "200" {
		return nil, fmt.Errorf("forecast %q: cod %s: %v", destination, code, response.Message)
	}

	buckets := make([]models.ForecastBucket, 0, len(response.List))
	for _, item := range response.List {
		buckets = append(buckets, item.toBucket())
	}
	return buckets, nil
}
