// Package ticketio persists generated ticket batches: a human-readable
// ticket.txt and a machine-readable bet-slip JSON per ticket, plus a batch
// summary, under a per-run directory with rolling retention.
package ticketio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"props-ticket-service/internal/domain/tickets"
	"props-ticket-service/internal/timeutil"
)

// Writer persists ticket batches and a manifest with pruning.
type Writer struct {
	basePath      string
	retentionRuns int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath keeping the most recent runs.
func NewWriter(basePath string, retentionRuns int) *Writer {
	if retentionRuns <= 0 {
		retentionRuns = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionRuns: retentionRuns,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteBatch persists one run's tickets and prunes runs beyond retention.
// It returns the run directory it wrote.
func (w *Writer) WriteBatch(batch tickets.Batch) (string, error) {
	if w == nil {
		return "", fmt.Errorf("ticket writer not configured")
	}

	run := timeutil.FormatRunStamp(w.now())
	runDir := filepath.Join(w.basePath, run)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", err
	}

	for _, t := range batch.Tickets {
		ticketDir := filepath.Join(runDir, fmt.Sprintf("ticket_%d", t.Number))
		if err := os.MkdirAll(ticketDir, 0o755); err != nil {
			return "", err
		}
		if err := writeAtomic(filepath.Join(ticketDir, "ticket.txt"), []byte(renderTicket(t))); err != nil {
			return "", err
		}
		slip, err := json.MarshalIndent(newBetSlip(t), "", "  ")
		if err != nil {
			return "", err
		}
		if err := writeAtomic(filepath.Join(ticketDir, "betPrePlacementStore.json"), slip); err != nil {
			return "", err
		}
	}

	summary, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return "", err
	}
	if err := writeAtomic(filepath.Join(runDir, "batch.json"), summary); err != nil {
		return "", err
	}

	if err := w.updateManifest(run); err != nil {
		return "", err
	}
	return runDir, nil
}

func writeAtomic(target string, data []byte) error {
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// renderTicket formats the printable slip, picks grouped by game.
func renderTicket(t tickets.Ticket) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 80)

	fmt.Fprintf(&b, "TICKET #%d\n%s\n", t.Number, rule)
	fmt.Fprintf(&b, "Total Picks: %d\n", len(t.Picks))
	fmt.Fprintf(&b, "Combined Odds: %.2fx\n", t.CombinedOdds)
	fmt.Fprintf(&b, "Games: %s\n%s\n", strings.Join(t.Games, ", "), rule)

	grouped := t.PicksByGame()
	for _, game := range t.Games {
		name := game
		if picks := grouped[game]; len(picks) > 0 && picks[0].GameName != "" {
			name = picks[0].GameName
		}
		fmt.Fprintf(&b, "\n%s\n%s\n", name, thin)
		for _, p := range grouped[game] {
			fmt.Fprintf(&b, "%s (%s)\n", p.PlayerName, p.Team)
			fmt.Fprintf(&b, "  %s %s %.1f\n", strings.ToUpper(string(p.Stat)), strings.ToUpper(string(p.Side)), p.Line)
			fmt.Fprintf(&b, "  Odds: %.2fx | Score: %.1f\n", p.OfferedOdds, p.Score)
			fmt.Fprintf(&b, "  Recent: %d/%d | Historical: %.0f%%\n", p.RecentHits, len(p.RecentValues), p.HistoricalHitRate*100)
			fmt.Fprintf(&b, "  Recent values: %v\n\n", p.RecentValues)
		}
	}
	return b.String()
}

func (w *Writer) updateManifest(run string) error {
	m, _ := readManifest(w.manifestPath())

	if !containsRun(m.Runs, run) {
		m.Runs = append(m.Runs, run)
	}
	pruned, err := w.pruneOldRuns(m.Runs)
	if err != nil {
		return err
	}
	m.Runs = pruned
	m.LastWritten = w.now().UTC()
	m.RetentionRuns = w.retentionRuns

	return writeManifest(w.manifestPath(), m)
}

// pruneOldRuns keeps the newest retentionRuns run directories; run stamps
// sort lexically in time order.
func (w *Writer) pruneOldRuns(runs []string) ([]string, error) {
	sortRuns(runs)
	if len(runs) <= w.retentionRuns {
		return runs, nil
	}
	drop := runs[:len(runs)-w.retentionRuns]
	for _, run := range drop {
		if err := os.RemoveAll(filepath.Join(w.basePath, run)); err != nil {
			return nil, err
		}
	}
	return runs[len(runs)-w.retentionRuns:], nil
}

func (w *Writer) manifestPath() string {
	return filepath.Join(w.basePath, "manifest.json")
}
