package server

import (
	"log/slog"
	"strings"

	"props-ticket-service/internal/config"
	"props-ticket-service/internal/metrics"
	"props-ticket-service/internal/providers"
	"props-ticket-service/internal/providers/fixture"
	"props-ticket-service/internal/providers/nbastats"
	"props-ticket-service/internal/providers/stakeapi"
)

// providerFactory assembles the props and game-log providers with shared
// wrappers (rate limit + retry) applied to the game-log side, which is the
// chatty one.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the props provider, the decorated game-log provider, and a
// cleanup func that releases any tickers the wrappers hold.
func (f providerFactory) build(cfg config.Config) (providers.PropsProvider, providers.GameLogProvider, func()) {
	switch strings.ToLower(cfg.Provider) {
	case "live":
		propsClient := stakeapi.NewClient(stakeapi.Config{
			BaseURL: cfg.Stake.BaseURL,
			Token:   cfg.Stake.Token,
			League:  cfg.Stake.League,
		})
		statsClient := nbastats.NewClient(nbastats.Config{
			BaseURL: cfg.Stats.BaseURL,
			APIKey:  cfg.Stats.APIKey,
		})
		limited := providers.NewRateLimitedProvider(statsClient, cfg.Stats.RequestDelay, f.logger)
		logs := providers.NewRetryingProvider(limited, f.logger, f.metrics, "nbastats", 0, 0)
		return propsClient, logs, closerFor(limited)
	default:
		fx := fixture.New()
		return fx, fx, func() {}
	}
}

func closerFor(p providers.GameLogProvider) func() {
	if c, ok := p.(interface{ Close() }); ok {
		return c.Close
	}
	return func() {}
}
