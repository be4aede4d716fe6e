package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"props-ticket-service/internal/domain/props"
	"props-ticket-service/internal/domain/tickets"
	"props-ticket-service/internal/logging"
	"props-ticket-service/internal/metrics"
	"props-ticket-service/internal/pipeline"
)

const defaultInterval = 15 * time.Minute

// Runner executes one generation pass.
type Runner interface {
	Run(ctx context.Context) (pipeline.Result, error)
}

// Sink receives the output of a successful pass.
type Sink interface {
	SetBatch(batch tickets.Batch, scored []props.ScoredProp)
}

// BatchWriter persists ticket batches to disk.
type BatchWriter interface {
	WriteBatch(batch tickets.Batch) (string, error)
}

// Poller regenerates the ticket batch on an interval, publishing each
// successful run to the sink and the writer.
type Poller struct {
	runner   Runner
	sink     Sink
	writer   BatchWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the generation loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the loop has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(runner Runner, sink Sink, writer BatchWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		runner:   runner,
		sink:     sink,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins generating until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("generator started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial run to have tickets available on boot.
		p.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("generator stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("generator stopped")
				return
			case <-p.ticker.C:
				p.runOnce(ctx)
			}
		}
	}()
}

// Stop halts the generation loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) runOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	result, err := p.runner.Run(ctx)
	if p.metrics != nil {
		p.metrics.RecordGeneratorCycle(time.Since(start), err)
	}
	if err != nil {
		p.logError("generation run failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	if p.sink != nil {
		p.sink.SetBatch(result.Batch, result.Scored)
	}
	if p.writer != nil {
		if dir, writeErr := p.writer.WriteBatch(result.Batch); writeErr != nil {
			p.logError("ticket batch write failed", writeErr)
		} else {
			p.logInfo("ticket batch written", logging.FieldPath, dir)
		}
	}

	p.recordSuccess(start)
	p.logInfo("generation run refreshed tickets",
		logging.FieldCount, len(result.Batch.Tickets),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the loop's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
