package server

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"props-ticket-service/internal/config"
	"props-ticket-service/internal/poller"
	"props-ticket-service/internal/store"
)

func testServerConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:             "4000",
		GenerateInterval: time.Hour,
		Provider:         "fixture",
		Scoring: config.ScoringConfig{
			Weights:            config.DefaultWeights(),
			ScoreThreshold:     70,
			RecentHitThreshold: 5,
			RecentLookback:     7,
			SeasonLookback:     20,
			FullSampleGames:    20,
		},
		Tickets: config.TicketsConfig{
			NumTickets:      2,
			GamesPerTicket:  2,
			PicksPerGameMin: 1,
			PicksPerGameMax: 2,
			Seed:            42,
		},
		Output:  config.OutputConfig{Dir: t.TempDir(), RetentionRuns: 3},
		Metrics: config.MetricsConfig{Enabled: false},
	}
}

var errOops = errors.New("listener failed")

type stubHTTPServer struct {
	mu        sync.Mutex
	started   bool
	shutdown  bool
	listenErr error
	block     chan struct{}
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()
	if s.listenErr != nil {
		return s.listenErr
	}
	if s.block != nil {
		<-s.block
	}
	return nethttp.ErrServerClosed
}

func (s *stubHTTPServer) Shutdown(context.Context) error {
	s.mu.Lock()
	s.shutdown = true
	s.mu.Unlock()
	if s.block != nil {
		close(s.block)
	}
	return nil
}

func (s *stubHTTPServer) Addr() string             { return ":0" }
func (s *stubHTTPServer) Handler() nethttp.Handler { return nethttp.NewServeMux() }

func (s *stubHTTPServer) wasShutdown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdown
}

type stubPoller struct {
	mu      sync.Mutex
	started bool
	stopped bool
}

func (p *stubPoller) Start(context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = true
}

func (p *stubPoller) Stop(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	return nil
}

func (p *stubPoller) Status() poller.Status { return poller.Status{} }

func (p *stubPoller) state() (bool, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started, p.stopped
}

func TestNewWiresDefaultProvider(t *testing.T) {
	srv, err := New(testServerConfig(t), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != 200 {
		t.Fatalf("/health = %d, want 200", rec.Code)
	}

	// No batch yet: readiness gates on the first successful run.
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/ready", nil))
	if rec.Code != 503 {
		t.Fatalf("/ready = %d, want 503 before the first run", rec.Code)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testServerConfig(t)
	cfg.Tickets.NumTickets = 0

	if _, err := New(cfg, nil); err == nil {
		t.Fatalf("expected error for invalid config")
	}
}

func TestRunStartsAndShutsDownGracefully(t *testing.T) {
	httpSrv := &stubHTTPServer{block: make(chan struct{})}
	plr := &stubPoller{}
	srv := newServerWithDeps(testServerConfig(t), nil, store.NewMemoryStore(), httpSrv, plr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	if !httpSrv.wasShutdown() {
		t.Fatalf("http server was not shut down")
	}
	started, stopped := plr.state()
	if !started || !stopped {
		t.Fatalf("poller started/stopped = %v/%v, want both", started, stopped)
	}
}

func TestRunStopsOnServerFailure(t *testing.T) {
	httpSrv := &stubHTTPServer{listenErr: errOops}
	plr := &stubPoller{}
	srv := newServerWithDeps(testServerConfig(t), nil, store.NewMemoryStore(), httpSrv, plr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after a listener failure")
	}
}

func TestBuildMetricsDisabled(t *testing.T) {
	cfg := testServerConfig(t)

	rec, metricsSrv, _ := buildMetrics(cfg, nil)
	if rec == nil {
		t.Fatalf("recorder must always be available")
	}
	if metricsSrv != nil {
		t.Fatalf("no metrics server expected when disabled")
	}
}
