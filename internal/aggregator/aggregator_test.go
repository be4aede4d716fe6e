package aggregator

import (
	"context"
	"errors"
	"testing"

	"props-ticket-service/internal/domain/outcomes"
	"props-ticket-service/internal/domain/props"
	"props-ticket-service/internal/providers"
)

type stubLogProvider struct {
	window []outcomes.GameOutcome
	err    error
	calls  int
}

func (s *stubLogProvider) FetchGameLog(_ context.Context, _ string, _ props.StatCategory, lookback int) ([]outcomes.GameOutcome, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return outcomes.Window(s.window, lookback), nil
}

func TestFetchRecentOutcomesTruncatesToLookback(t *testing.T) {
	provider := &stubLogProvider{window: outcomes.FromValues([]float64{10, 11, 12, 13, 14})}
	agg := New(provider)

	window, err := agg.FetchRecentOutcomes(context.Background(), "p1", props.StatPoints, 3)
	if err != nil {
		t.Fatalf("FetchRecentOutcomes: %v", err)
	}
	if len(window) != 3 {
		t.Fatalf("window = %d outcomes, want 3", len(window))
	}
	if window[0].Value != 10 {
		t.Fatalf("most recent value = %v, want 10", window[0].Value)
	}
}

func TestFetchRecentOutcomesPlayerNotFound(t *testing.T) {
	provider := &stubLogProvider{err: providers.ErrPlayerNotFound}
	agg := New(provider)

	_, err := agg.FetchRecentOutcomes(context.Background(), "ghost", props.StatPoints, 5)
	if !errors.Is(err, providers.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestFetchRecentOutcomesRejectsEmptyPlayer(t *testing.T) {
	agg := New(&stubLogProvider{})

	_, err := agg.FetchRecentOutcomes(context.Background(), "", props.StatPoints, 5)
	if !errors.Is(err, providers.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound for empty player id, got %v", err)
	}
}

func TestFetchRecentOutcomesRejectsNonPositiveLookback(t *testing.T) {
	agg := New(&stubLogProvider{})

	if _, err := agg.FetchRecentOutcomes(context.Background(), "p1", props.StatPoints, 0); err == nil {
		t.Fatalf("expected error for zero lookback")
	}
}

func TestFetchRecentOutcomesNilProvider(t *testing.T) {
	agg := New(nil)

	_, err := agg.FetchRecentOutcomes(context.Background(), "p1", props.StatPoints, 5)
	if !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestWindowsSlicesRecentFromSeason(t *testing.T) {
	provider := &stubLogProvider{window: outcomes.FromValues([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})}
	agg := New(provider)

	season, recent, err := agg.Windows(context.Background(), "p1", props.StatRebounds, 10, 7)
	if err != nil {
		t.Fatalf("Windows: %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("provider calls = %d, want 1 when recent fits in season", provider.calls)
	}
	if len(season) != 10 || len(recent) != 7 {
		t.Fatalf("windows = %d/%d, want 10/7", len(season), len(recent))
	}
	if recent[0].Value != season[0].Value {
		t.Fatalf("recent window must share the season's most recent game")
	}
}

func TestWindowsEmptyHistoryIsNotAnError(t *testing.T) {
	agg := New(&stubLogProvider{})

	season, recent, err := agg.Windows(context.Background(), "p1", props.StatAssists, 20, 7)
	if err != nil {
		t.Fatalf("Windows: %v", err)
	}
	if len(season) != 0 || len(recent) != 0 {
		t.Fatalf("windows = %d/%d, want empty", len(season), len(recent))
	}
}
