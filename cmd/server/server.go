package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"fooddash/discovery-api/internal/config"
	"fooddash/discovery-api/internal/domain/restaurant"
	"fooddash/discovery-api/internal/infrastructure/crontab"
	"fooddash/discovery-api/internal/infrastructure/logger"
	"fooddash/discovery-api/internal/infrastructure/observability"
	"fooddash/discovery-api/internal/infrastructure/provider"
	"fooddash/discovery-api/internal/interfaces/httpserver"
	"fooddash/discovery-api/internal/interfaces/httpserver/handlers/restauranthandler"
	v1 "fooddash/discovery-api/internal/interfaces/httpserver/routes/v1"
	"fooddash/discovery-api/internal/interfaces/httpserver/routes/v1/restaurants"
	"fooddash/discovery-api/internal/utils/httpclients"
)

type Application struct {
	httpServer *httpserver.HTTPServer
	crontab    *crontab.Crontab
	config     *config.Config
}

func (application *Application) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var eg errgroup.Group
	eg.Go(func() error {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		err := http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", application.config.MetricsPort), mux)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		err := application.crontab.Run(ctx)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		err := application.httpServer.Run()
		if err != nil {
			cancel()
		}
		return err
	})

	return eg.Wait()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional local overrides; absent file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.GetLogger()
		fallbackLog.Fatal().Err(err).Msg("load config")
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fallbackLog := logger.GetLogger()
		fallbackLog.Fatal().Err(err).Msg("initialize logger")
	}

	otelShutdown, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	application, err := createApplication(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	log.Info().
		Str("provider", cfg.Provider).
		Int("http_port", cfg.HTTPPort).
		Int("metrics_port", cfg.MetricsPort).
		Msg("starting discovery api")

	if err := application.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped")
	}
}

func createApplication(cfg *config.Config, log zerolog.Logger) (*Application, error) {
	providerClient, err := buildProviderClient(cfg)
	if err != nil {
		return nil, err
	}

	enricher := restaurant.NewSeededEnricher(time.Now().UnixNano())
	service := restaurant.NewService(providerClient, enricher, restaurant.Defaults{
		Latitude:     cfg.DefaultLatitude,
		Longitude:    cfg.DefaultLongitude,
		RadiusMeters: cfg.DefaultRadius,
		Limit:        cfg.DefaultLimit,
	}, log)

	restaurantHandler := restauranthandler.NewRestaurantHandler(service)
	restaurantsRoute := restaurants.NewRestaurantsRoute(restaurantHandler)
	v1Route := v1.NewV1Route(restaurantsRoute)

	return &Application{
		httpServer: httpserver.NewHttpServer(v1Route, cfg, log),
		crontab:    crontab.NewCrontab(providerClient, cfg.HealthProbeCron),
		config:     cfg,
	}, nil
}

func buildProviderClient(cfg *config.Config) (provider.Client, error) {
	restyClient := httpclients.NewClient(cfg.Provider, cfg.ProviderTimeout)

	switch cfg.Provider {
	case config.ProviderYelp:
		if cfg.YelpAPIKey == "" {
			return nil, fmt.Errorf("YELP_API_KEY is required when RESTAURANT_PROVIDER=yelp")
		}
		return provider.NewYelpClient(restyClient, cfg.YelpBaseURL, cfg.YelpAPIKey), nil
	case config.ProviderGooglePlaces:
		if cfg.GoogleAPIKey == "" {
			return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY is required when RESTAURANT_PROVIDER=googleplaces")
		}
		return provider.NewGoogleClient(restyClient, cfg.GoogleBaseURL, cfg.GoogleAPIKey), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
}
