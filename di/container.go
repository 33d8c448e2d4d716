package di

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"trip-planner/api"
	"trip-planner/api/google"
	"trip-planner/api/narrative"
	"trip-planner/api/openweather"
	"trip-planner/config"
	"trip-planner/dao/redis"
	"trip-planner/db"
	"trip-planner/server"
	"trip-planner/server/handlers"
	services "trip-planner/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient         db.RedisClient
	RedisPlaceDao       *redis.RedisPlaceDAO
	RedisItineraryDao   *redis.RedisItineraryDAO
	GoogleMapsAPI       google.GoogleMapsAPI
	WeatherAPI          openweather.WeatherAPI
	NarrativeAPI        narrative.NarrativeAPI
	ItineraryService    *services.ItineraryService
	PlaceService        *services.PlaceService
	ItineraryHandler    *handlers.ItineraryHandler
	PlaceHandler        *handlers.PlaceHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	ItineraryHttpServer *server.ItineraryHttpServer
}

// NewContainer initializes and wires up all dependencies. Outside production
// every upstream, Redis included, is replaced by its in-memory mock.
func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	logger.Info("Initializing container", zap.String("env", cfg.Environment))

	redisClient, err := newRedisClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	redisPlaceDao := redis.NewRedisPlaceDAO(redisClient, cfg.GeocodeCacheTTL(), logger)
	redisItineraryDao := redis.NewRedisItineraryDAO(redisClient, cfg.ItineraryTTL())

	maps, weather, narrativeAPI, err := newUpstreams(cfg, logger)
	if err != nil {
		return nil, err
	}

	// engine
	timeout := cfg.UpstreamTimeout()
	geocoder := services.NewCachingGeocoder(maps, redisPlaceDao, logger)
	itineraryService := services.NewItineraryService(
		services.NewPlaceAggregatorService(maps, cfg.PlacesPerQuery, timeout, logger),
		services.NewRouteSequencerService(geocoder, maps, timeout, logger),
		services.NewDaySchedulerService(logger),
		services.NewItineraryAssemblerService(weather, narrativeAPI, timeout, logger),
		logger,
	)
	placeService := services.NewPlaceService(redisPlaceDao, logger)

	itineraryHandler := handlers.NewItineraryHandler(itineraryService, redisItineraryDao, placeService, logger)
	placeHandler := handlers.NewPlaceHandler(placeService, logger)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(itineraryHandler, placeHandler, muxRouter)
	itineraryHttpServer := server.NewItineraryHttpServer(router, muxRouter, cfg, logger)

	return &Container{
		RedisClient:         redisClient,
		RedisPlaceDao:       redisPlaceDao,
		RedisItineraryDao:   redisItineraryDao,
		GoogleMapsAPI:       maps,
		WeatherAPI:          weather,
		NarrativeAPI:        narrativeAPI,
		ItineraryService:    itineraryService,
		PlaceService:        placeService,
		ItineraryHandler:    itineraryHandler,
		PlaceHandler:        placeHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		ItineraryHttpServer: itineraryHttpServer,
	}, nil
}

func newRedisClient(cfg config.Config, logger *zap.Logger) (db.RedisClient, error) {
	if !cfg.IsProduction() {
		logger.Info("Using in-memory redis")
		return db.NewMockRedisClient(), nil
	}

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	redisClient := db.NewGeoRedisClient(redisInternalClient, logger)
	if err := redisClient.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	return redisClient, nil
}

// newUpstreams returns a nil narrative client when narrative generation is disabled.
func newUpstreams(cfg config.Config, logger *zap.Logger) (google.GoogleMapsAPI, openweather.WeatherAPI, narrative.NarrativeAPI, error) {
	if !cfg.IsProduction() {
		logger.Info("Using mock upstream apis")
		maps, err := google.LoadGoogleMapsApiClientMock(config.GetResourcePath(config.PLACE_SEARCH_RESPONSE_RESOURCE))
		if err != nil {
			logger.Warn("Place search fixture unavailable, mock search returns nothing", zap.Error(err))
			maps = google.NewGoogleMapsApiClientMock(nil)
		}
		var narrativeAPI narrative.NarrativeAPI
		if cfg.NarrativeEnabled {
			narrativeAPI = narrative.NewNarrativeApiClientMock()
		}
		return maps, openweather.NewOpenWeatherApiClientMock(nil), narrativeAPI, nil
	}

	logger.Info("Using prod upstream apis")
	mapsClient := google.NewGoogleMapsApiClient(api.NewHTTPClient(cfg.GoogleMapsBaseURL, cfg.UpstreamTimeout()))
	mapsClient.SetCredentials(cfg.GoogleAPIKey)

	weatherClient := openweather.NewOpenWeatherApiClient(api.NewHTTPClient(cfg.OpenWeatherBaseURL, cfg.UpstreamTimeout()))
	weatherClient.SetCredentials(cfg.OpenWeatherAPIKey)

	if !cfg.NarrativeEnabled {
		return mapsClient, weatherClient, nil, nil
	}
	narrativeClient, err := narrative.NewOpenAINarrativeClient(
		cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL,
		config.NARRATIVE_MAX_TOKENS, config.NARRATIVE_TEMPERATURE)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create narrative client: %w", err)
	}
	return mapsClient, weatherClient, narrativeClient, nil
}
