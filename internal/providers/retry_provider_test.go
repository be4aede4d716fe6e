package providers

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"props-ticket-service/internal/domain/outcomes"
	"props-ticket-service/internal/domain/props"
	"props-ticket-service/internal/metrics"
)

type flakyProvider struct {
	failures int
	calls    int
	window   []outcomes.GameOutcome
	err      error
}

func (f *flakyProvider) FetchGameLog(_ context.Context, _ string, _ props.StatCategory, _ int) ([]outcomes.GameOutcome, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return f.window, nil
}

func TestRetryingProviderSucceedsAfterTransientFailures(t *testing.T) {
	inner := &flakyProvider{
		failures: 2,
		err:      errors.New("upstream hiccup"),
		window:   outcomes.FromValues([]float64{20, 21}),
	}
	rec := metrics.NewRecorder()
	p := NewRetryingProvider(inner, nil, rec, "test", 3, time.Millisecond)

	window, err := p.FetchGameLog(context.Background(), "p1", props.StatPoints, 7)
	if err != nil {
		t.Fatalf("FetchGameLog: %v", err)
	}
	if len(window) != 2 {
		t.Fatalf("window = %d outcomes, want 2", len(window))
	}
	if inner.calls != 3 {
		t.Fatalf("inner calls = %d, want 3", inner.calls)
	}
	if rec.ProviderCalls("test") != 3 {
		t.Fatalf("recorded attempts = %d, want 3", rec.ProviderCalls("test"))
	}
	if rec.ProviderErrors("test") != 2 {
		t.Fatalf("recorded errors = %d, want 2", rec.ProviderErrors("test"))
	}
}

func TestRetryingProviderExhaustsAttempts(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: errors.New("persistent failure")}
	p := NewRetryingProvider(inner, nil, nil, "test", 3, time.Millisecond)

	_, err := p.FetchGameLog(context.Background(), "p1", props.StatPoints, 7)
	if err == nil {
		t.Fatalf("expected error after exhausting attempts")
	}
	if inner.calls != 3 {
		t.Fatalf("inner calls = %d, want 3", inner.calls)
	}
}

func TestRetryingProviderDoesNotRetryUnknownPlayer(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: ErrPlayerNotFound}
	p := NewRetryingProvider(inner, nil, nil, "test", 3, time.Millisecond)

	_, err := p.FetchGameLog(context.Background(), "ghost", props.StatPoints, 7)
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("inner calls = %d, want 1 (no retries)", inner.calls)
	}
}

func TestRetryingProviderHonorsContextCancellation(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: errors.New("slow upstream")}
	p := NewRetryingProvider(inner, nil, nil, "test", 3, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.FetchGameLog(ctx, "p1", props.StatPoints, 7)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRetryingProviderRecordsRateLimits(t *testing.T) {
	inner := &flakyProvider{
		failures: 1,
		err:      &RateLimitError{Provider: "test", StatusCode: 429, RetryAfter: time.Millisecond},
		window:   outcomes.FromValues([]float64{10}),
	}
	rec := metrics.NewRecorder()
	p := NewRetryingProvider(inner, nil, rec, "test", 3, time.Millisecond)

	if _, err := p.FetchGameLog(context.Background(), "p1", props.StatPoints, 7); err != nil {
		t.Fatalf("FetchGameLog: %v", err)
	}
	if rec.RateLimitHits("test") != 1 {
		t.Fatalf("rate limit hits = %d, want 1", rec.RateLimitHits("test"))
	}
	if rec.LastRetryAfter("test") != time.Millisecond {
		t.Fatalf("last retry-after = %v, want 1ms", rec.LastRetryAfter("test"))
	}
}

func TestComputeDelayPrefersRetryAfter(t *testing.T) {
	p := NewRetryingProviderWithRNG(nil, nil, nil, "test",
		rand.New(rand.NewSource(1)), 3, 100*time.Millisecond).(*retryingProvider)

	rlErr := &RateLimitError{RetryAfter: 2 * time.Second}
	if got := p.computeDelay(rlErr, 1); got != 2*time.Second {
		t.Fatalf("delay = %v, want upstream retry-after", got)
	}
}

func TestComputeDelayJittersWithinHalfOpenRange(t *testing.T) {
	base := 100 * time.Millisecond
	p := NewRetryingProviderWithRNG(nil, nil, nil, "test",
		rand.New(rand.NewSource(7)), 3, base).(*retryingProvider)

	for attempt := 1; attempt <= 3; attempt++ {
		full := time.Duration(attempt) * base
		for i := 0; i < 50; i++ {
			d := p.computeDelay(errors.New("transient"), attempt)
			if d < full/2 || d >= full {
				t.Fatalf("attempt %d delay %v outside [%v,%v)", attempt, d, full/2, full)
			}
		}
	}
}

func TestRetryingProviderNilInner(t *testing.T) {
	p := NewRetryingProvider(nil, nil, nil, "test", 0, 0)

	_, err := p.FetchGameLog(context.Background(), "p1", props.StatPoints, 7)
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
