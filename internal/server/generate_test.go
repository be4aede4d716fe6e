package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateOnceWritesBatch(t *testing.T) {
	cfg := testServerConfig(t)

	result, runDir, err := GenerateOnce(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("GenerateOnce: %v", err)
	}

	if result.Report.PropsListed == 0 {
		t.Fatalf("nothing listed from the fixture slate")
	}
	if len(result.Batch.Tickets) == 0 {
		t.Fatalf("no tickets generated")
	}
	if _, err := os.Stat(filepath.Join(runDir, "batch.json")); err != nil {
		t.Fatalf("batch.json missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Output.Dir, "manifest.json")); err != nil {
		t.Fatalf("manifest missing: %v", err)
	}
}

func TestGenerateOnceRejectsInvalidConfig(t *testing.T) {
	cfg := testServerConfig(t)
	cfg.Scoring.FullSampleGames = 0

	if _, _, err := GenerateOnce(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for invalid config")
	}
}
