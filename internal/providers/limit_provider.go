package providers

import (
	"context"
	"log/slog"
	"time"

	"props-ticket-service/internal/domain/outcomes"
	"props-ticket-service/internal/domain/props"
	"props-ticket-service/internal/logging"
)

// rateLimitedProvider wraps a GameLogProvider and enforces a minimum interval
// between calls. A scoring run issues one game-log fetch per (player, stat),
// so this is what keeps a large slate under the upstream quota.
type rateLimitedProvider struct {
	next     GameLogProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a GameLogProvider that limits calls to the given interval.
// Calls block until the interval elapses to avoid exceeding upstream quotas.
func NewRateLimitedProvider(next GameLogProvider, interval time.Duration, logger *slog.Logger) GameLogProvider {
	if interval <= 0 {
		interval = 600 * time.Millisecond
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchGameLog(ctx context.Context, playerID string, stat props.StatCategory, lookback int) ([]outcomes.GameOutcome, error) {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String(logging.FieldProvider, "rate-limited"))
		}
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	return p.next.FetchGameLog(ctx, playerID, stat, lookback)
}

// Close stops the interval ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
