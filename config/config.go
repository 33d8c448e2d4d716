package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Scheduling rules
const DAY_START_HOUR = 9
const VISIT_DURATION = 2 * time.Hour
const DEFAULT_TRAVEL_TIME = 15 * time.Minute
const MAX_TRAVEL_TIME = 48 * time.Hour
const MAX_VISITS_PER_DAY = 5
const MIN_TRAVEL_DAYS = 1
const MAX_TRAVEL_DAYS = 14

// Narrative
const NARRATIVE_PLACEHOLDER = "Narrative summary is currently unavailable."
const NARRATIVE_MAX_TOKENS = 600
const NARRATIVE_TEMPERATURE = 0.7

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PLACE_SEARCH_RESPONSE_RESOURCE = "place_search_response.json"

const ENV_PRODUCTION = "production"

// Config holds every runtime setting. It is parsed once in main and handed to
// constructors through the di container.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	ServerAddr  string `env:"SERVER_ADDR" envDefault:":8080"`

	LoggerLevel  string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat string `env:"LOGGER_FORMAT" envDefault:"text"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"redis:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	GoogleAPIKey      string `env:"GOOGLE_API_KEY"`
	GoogleMapsBaseURL string `env:"GOOGLE_MAPS_BASE_URL" envDefault:"https://maps.googleapis.com/maps/api"`

	OpenWeatherAPIKey  string `env:"OPENWEATHER_API_KEY"`
	OpenWeatherBaseURL string `env:"OPENWEATHER_BASE_URL" envDefault:"https://api.openweathermap.org/data/2.5"`

	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	OpenAIModel      string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL    string `env:"OPENAI_BASE_URL"`
	NarrativeEnabled bool   `env:"NARRATIVE_ENABLED" envDefault:"true"`

	UpstreamTimeoutSeconds int `env:"UPSTREAM_TIMEOUT_SECONDS" envDefault:"10"`
	PlacesPerQuery         int `env:"PLACES_PER_QUERY" envDefault:"5"`
	GeocodeCacheTTLHours   int `env:"GEOCODE_CACHE_TTL_HOURS" envDefault:"720"`
	ItineraryTTLHours      int `env:"ITINERARY_TTL_HOURS" envDefault:"168"`

	RateLimitRPS       float64  `env:"RATE_LIMIT_RPS" envDefault:"2"`
	RateLimitBurst     int      `env:"RATE_LIMIT_BURST" envDefault:"5"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, ENV_PRODUCTION)
}

func (c Config) UpstreamTimeout() time.Duration {
	if c.UpstreamTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.UpstreamTimeoutSeconds) * time.Second
}

func (c Config) GeocodeCacheTTL() time.Duration {
	return time.Duration(c.GeocodeCacheTTLHours) * time.Hour
}

func (c Config) ItineraryTTL() time.Duration {
	return time.Duration(c.ItineraryTTLHours) * time.Hour
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
