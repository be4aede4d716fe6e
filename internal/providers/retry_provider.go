package providers

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"props-ticket-service/internal/domain/outcomes"
	"props-ticket-service/internal/domain/props"
	"props-ticket-service/internal/logging"
	"props-ticket-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a GameLogProvider with retry/backoff behavior.
// Permanent conditions (unknown player) are never retried.
type retryingProvider struct {
	inner        GameLogProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc
	rng          *rand.Rand
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner GameLogProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) GameLogProvider {
	return NewRetryingProviderWithRNG(inner, logger, recorder, name, nil, maxAttempts, backoff)
}

// NewRetryingProviderWithRNG is NewRetryingProvider with an injectable jitter source for tests.
func NewRetryingProviderWithRNG(inner GameLogProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, rng *rand.Rand, maxAttempts int, backoff time.Duration) GameLogProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if name == "" {
		name = "provider"
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
		rng: rng,
	}
}

func (r *retryingProvider) FetchGameLog(ctx context.Context, playerID string, stat props.StatCategory, lookback int) ([]outcomes.GameOutcome, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		window, err := r.inner.FetchGameLog(ctx, playerID, stat, lookback)
		if r.metrics != nil {
			r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		}
		if err == nil {
			return window, nil
		}
		lastErr = err

		if errors.Is(err, ErrPlayerNotFound) {
			return nil, err
		}
		if rlErr, ok := AsRateLimitError(err); ok && r.metrics != nil {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
		}

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider fetch retry",
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			logging.FieldPlayer, playerID,
			"err", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.computeDelay(err, attempt)):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "attempts", r.maxAttempts, logging.FieldPlayer, playerID, "err", lastErr)
	return nil, lastErr
}

// computeDelay prefers an upstream Retry-After; otherwise a jittered backoff
// in [base/2, base) to avoid thundering retries.
func (r *retryingProvider) computeDelay(err error, attempt int) time.Duration {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		return rlErr.RetryAfter
	}
	base := r.backoffFn(attempt)
	if base <= 0 {
		return 0
	}
	half := base / 2
	return half + time.Duration(r.rng.Int63n(int64(half)))
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, append(args, slog.String(logging.FieldProvider, r.providerName))...)
	}
}
