package crontab

import (
	"context"
	"time"

	"github.com/mileusna/crontab"

	"fooddash/discovery-api/internal/infrastructure/logger"
	"fooddash/discovery-api/internal/infrastructure/metrics"
	"fooddash/discovery-api/internal/infrastructure/provider"
	"fooddash/discovery-api/internal/utils/platformerrors"
)

const probeTimeout = 30 * time.Second

// probeParams is a minimal search against the default location, used only
// to observe upstream availability.
var probeParams = provider.SearchParams{
	Latitude:     37.7749,
	Longitude:    -122.4194,
	RadiusMeters: 1500,
	Limit:        1,
}

// Crontab schedules the periodic upstream health probe. The probe result
// feeds the provider_up gauge so operators can see when searches are being
// served from the mock fallback.
type Crontab struct {
	ctab           *crontab.Crontab
	providerClient provider.Client
	enabled        bool
}

func NewCrontab(providerClient provider.Client, enabled bool) *Crontab {
	return &Crontab{
		ctab:           crontab.New(),
		providerClient: providerClient,
		enabled:        enabled,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	if !c.enabled {
		<-ctx.Done()
		return nil
	}

	// Probe once on startup so the gauge is populated immediately.
	c.probeProvider(ctx)

	if err := c.ctab.AddJob("*/5 * * * *", func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()
		c.probeProvider(jobCtx)
	}); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add health probe job")
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) probeProvider(ctx context.Context) {
	log := logger.GetLogger()
	kind := string(c.providerClient.Kind())

	_, err := c.providerClient.Search(ctx, probeParams)
	if err != nil {
		metrics.SetProviderUp(kind, false)
		log.Warn().Err(err).Str("provider", kind).Msg("provider health probe failed")
		return
	}

	metrics.SetProviderUp(kind, true)
	log.Debug().Str("provider", kind).Msg("provider health probe ok")
}
