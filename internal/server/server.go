package server

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"props-ticket-service/internal/config"
	httpserver "props-ticket-service/internal/http"
	"props-ticket-service/internal/http/handlers"
	"props-ticket-service/internal/http/middleware"
	"props-ticket-service/internal/logging"
	"props-ticket-service/internal/metrics"
	"props-ticket-service/internal/pipeline"
	"props-ticket-service/internal/poller"
	"props-ticket-service/internal/store"
	"props-ticket-service/internal/ticketio"
)

var metricsSetup = metrics.Setup

// Server ties the generation loop, the in-memory store, and the HTTP surface
// together for the long-running mode.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
	providerClose func()
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	propsProvider, logProvider, closeProviders := newProviderFactory(logger, recorder).build(cfg)

	pipe, err := pipeline.New(cfg, propsProvider, logProvider, logger, recorder)
	if err != nil {
		closeProviders()
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	memoryStore := store.NewMemoryStore()
	writer := ticketio.NewWriter(cfg.Output.Dir, cfg.Output.RetentionRuns)
	plr := poller.New(pipe, memoryStore, writer, logger, recorder, cfg.GenerateInterval)
	httpSrv := buildHTTPServer(cfg, memoryStore, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
		providerClose: closeProviders,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, memoryStore *store.MemoryStore, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		store:      memoryStore,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(memoryStore, logger, statusFn)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &nethttp.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation
// to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop generation loop", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.providerClose != nil {
		s.providerClose()
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &nethttp.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() nethttp.Handler {
	return s.httpServer.Handler()
}
