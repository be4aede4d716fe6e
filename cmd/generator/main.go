package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"props-ticket-service/internal/config"
	"props-ticket-service/internal/logging"
	"props-ticket-service/internal/server"
)

const appVersion = "dev"

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "props-ticket-generator",
		Version: appVersion,
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Tickets.Seed == 0 {
		cfg.Tickets.Seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, runDir, err := server.GenerateOnce(ctx, cfg, logger)
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("generation complete",
		"run_dir", runDir,
		"tickets", len(result.Batch.Tickets),
		"strong_props", result.Report.StrongProps,
		"props_scored", result.Report.PropsScored,
	)
	if result.Batch.Shortfall.Short() {
		logger.Warn("strong pool could not fill the request",
			"requested_tickets", result.Batch.Shortfall.RequestedTickets,
			"emitted_tickets", result.Batch.Shortfall.EmittedTickets,
			"missing_picks", result.Batch.Shortfall.MissingPicks,
		)
	}
}
