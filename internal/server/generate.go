package server

import (
	"context"
	"fmt"
	"log/slog"

	"props-ticket-service/internal/config"
	"props-ticket-service/internal/metrics"
	"props-ticket-service/internal/pipeline"
	"props-ticket-service/internal/ticketio"
)

// GenerateOnce runs a single generation pass and persists the batch. It is
// the one-shot counterpart to the polling server and shares its provider
// wiring. The returned path is the run directory the batch was written to.
func GenerateOnce(ctx context.Context, cfg config.Config, logger *slog.Logger) (pipeline.Result, string, error) {
	recorder := metrics.NewRecorder()
	propsProvider, logProvider, closeProviders := newProviderFactory(logger, recorder).build(cfg)
	defer closeProviders()

	pipe, err := pipeline.New(cfg, propsProvider, logProvider, logger, recorder)
	if err != nil {
		return pipeline.Result{}, "", fmt.Errorf("build pipeline: %w", err)
	}

	result, err := pipe.Run(ctx)
	if err != nil {
		return pipeline.Result{}, "", err
	}

	writer := ticketio.NewWriter(cfg.Output.Dir, cfg.Output.RetentionRuns)
	runDir, err := writer.WriteBatch(result.Batch)
	if err != nil {
		return result, "", fmt.Errorf("write batch: %w", err)
	}
	return result, runDir, nil
}
