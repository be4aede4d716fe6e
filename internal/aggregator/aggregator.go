// Package aggregator produces bounded per-game outcome windows from a
// game-log provider. Season and recent windows are fetched independently so
// a caller can never conflate the two lookbacks.
package aggregator

import (
	"context"
	"fmt"

	"props-ticket-service/internal/domain/outcomes"
	"props-ticket-service/internal/domain/props"
	"props-ticket-service/internal/providers"
)

// Aggregator wraps a GameLogProvider with window semantics.
type Aggregator struct {
	provider providers.GameLogProvider
}

// New constructs an Aggregator over the given provider.
func New(provider providers.GameLogProvider) *Aggregator {
	return &Aggregator{provider: provider}
}

// FetchRecentOutcomes returns up to lookbackN outcomes for the player and
// stat, most recent first. ErrPlayerNotFound propagates unchanged so callers
// can skip the prop; an empty window with no error means insufficient history
// and is signaled downstream as sample size zero.
func (a *Aggregator) FetchRecentOutcomes(ctx context.Context, playerID string, stat props.StatCategory, lookbackN int) ([]outcomes.GameOutcome, error) {
	if a == nil || a.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	if playerID == "" {
		return nil, fmt.Errorf("aggregator: player id required: %w", providers.ErrPlayerNotFound)
	}
	if lookbackN <= 0 {
		return nil, fmt.Errorf("aggregator: lookback must be positive, got %d", lookbackN)
	}

	window, err := a.provider.FetchGameLog(ctx, playerID, stat, lookbackN)
	if err != nil {
		return nil, err
	}
	return outcomes.Window(window, lookbackN), nil
}

// Windows fetches the season and recent windows for one (player, stat) pair.
// The recent window is sliced from the season fetch when the season lookback
// covers it, saving a provider round trip per prop.
func (a *Aggregator) Windows(ctx context.Context, playerID string, stat props.StatCategory, seasonN, recentN int) (season, recent []outcomes.GameOutcome, err error) {
	season, err = a.FetchRecentOutcomes(ctx, playerID, stat, seasonN)
	if err != nil {
		return nil, nil, err
	}
	if seasonN >= recentN {
		return season, outcomes.Window(season, recentN), nil
	}

	recent, err = a.FetchRecentOutcomes(ctx, playerID, stat, recentN)
	if err != nil {
		return nil, nil, err
	}
	return season, recent, nil
}
