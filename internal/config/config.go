package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Provider selects which upstream supplies restaurant data.
const (
	ProviderYelp         = "yelp"
	ProviderGooglePlaces = "googleplaces"
)

// Config holds all environment backed configuration for discovery-api.
type Config struct {
	// HTTP Server
	HTTPPort    int `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int `env:"METRICS_PORT" envDefault:"9091"`

	// Upstream provider
	Provider        string        `env:"RESTAURANT_PROVIDER" envDefault:"yelp"`
	YelpAPIKey      string        `env:"YELP_API_KEY"`
	YelpBaseURL     string        `env:"YELP_BASE_URL" envDefault:"https://api.yelp.com/v3"`
	GoogleAPIKey    string        `env:"GOOGLE_MAPS_API_KEY"`
	GoogleBaseURL   string        `env:"GOOGLE_MAPS_BASE_URL" envDefault:"https://maps.googleapis.com/maps/api"`
	ProviderTimeout time.Duration `env:"PROVIDER_HTTP_TIMEOUT" envDefault:"8s"`
	HealthProbeCron bool          `env:"PROVIDER_HEALTH_PROBE" envDefault:"true"`

	// Search defaults. The fallback location is San Francisco; search
	// requests without coordinates resolve here.
	DefaultLatitude  float64 `env:"DEFAULT_LATITUDE" envDefault:"37.7749"`
	DefaultLongitude float64 `env:"DEFAULT_LONGITUDE" envDefault:"-122.4194"`
	DefaultRadius    int     `env:"DEFAULT_RADIUS_METERS" envDefault:"1500"`
	DefaultLimit     int     `env:"DEFAULT_RESULT_LIMIT" envDefault:"20"`

	// Observability / Logging
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"discovery-api"`
	ServiceNamespace string `env:"SERVICE_NAMESPACE" envDefault:"fooddash"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"console"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	switch cfg.Provider {
	case ProviderYelp, ProviderGooglePlaces:
	default:
		return nil, fmt.Errorf("unsupported RESTAURANT_PROVIDER %q", cfg.Provider)
	}

	if _, err := url.ParseRequestURI(cfg.YelpBaseURL); err != nil {
		return nil, fmt.Errorf("invalid YELP_BASE_URL: %w", err)
	}
	if _, err := url.ParseRequestURI(cfg.GoogleBaseURL); err != nil {
		return nil, fmt.Errorf("invalid GOOGLE_MAPS_BASE_URL: %w", err)
	}

	if cfg.DefaultRadius <= 0 {
		return nil, fmt.Errorf("DEFAULT_RADIUS_METERS must be positive, got %d", cfg.DefaultRadius)
	}
	if cfg.DefaultLimit <= 0 {
		return nil, fmt.Errorf("DEFAULT_RESULT_LIMIT must be positive, got %d", cfg.DefaultLimit)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	return cfg, nil
}

var Version = "dev"

// IsDev reports whether the service runs in a development environment.
func (c *Config) IsDev() bool {
	return c.Environment == "development"
}
