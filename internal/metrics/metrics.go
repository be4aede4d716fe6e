package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type scoringStats struct {
	scored  int
	skipped map[string]int
	strong  int
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// generation runs. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*providerStats
	scoring scoringStats
	tickets int
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		scoring: scoringStats{
			skipped: make(map[string]int),
		},
		otel: otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordPropScored counts one scored prop, flagging it when it passed the strong gate.
func (r *Recorder) RecordPropScored(strong bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.scoring.scored++
	if strong {
		r.scoring.strong++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPropScored(strong)
	}
}

// RecordPropSkipped counts a prop dropped from the batch, keyed by reason.
func (r *Recorder) RecordPropSkipped(reason string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.scoring.skipped[reason]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPropSkipped(reason)
	}
}

// RecordTicketsBuilt counts tickets emitted by a generation run.
func (r *Recorder) RecordTicketsBuilt(count int) {
	if r == nil || count <= 0 {
		return
	}
	r.mu.Lock()
	r.tickets += count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTicketsBuilt(count)
	}
}

// RecordGeneratorCycle tracks generation runs and failures.
func (r *Recorder) RecordGeneratorCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordGeneratorCycle(duration, err)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// PropsScored returns the number of scored props recorded so far.
func (r *Recorder) PropsScored() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scoring.scored
}

// StrongProps returns the number of props that passed the strong gate.
func (r *Recorder) StrongProps() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scoring.strong
}

// PropsSkipped returns the skip count for a reason.
func (r *Recorder) PropsSkipped(reason string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scoring.skipped[reason]
}

// TicketsBuilt returns the running count of emitted tickets.
func (r *Recorder) TicketsBuilt() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tickets
}

// Snapshot is a copy of the current stats for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
