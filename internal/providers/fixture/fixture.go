package fixture

import (
	"context"
	"fmt"

	"props-ticket-service/internal/domain/outcomes"
	"props-ticket-service/internal/domain/props"
	"props-ticket-service/internal/providers"
)

// Provider serves a static slate of props and game logs, useful for local
// runs and tests. Every listed player has a deterministic history; unknown
// players report ErrPlayerNotFound like a live source would.
type Provider struct {
	logs  map[string][]float64
	slate []props.Prop
}

// New creates a fixture provider with a small two-game slate.
func New() *Provider {
	return &Provider{
		logs: map[string][]float64{
			// Steady scorer comfortably over a 28.5 points line.
			"fixture-p1": {30, 32, 28, 31, 29, 33, 27, 30, 31, 29},
			// Boom-or-bust rebounder.
			"fixture-p2": {14, 6, 15, 5, 13, 7, 12, 6, 14, 5},
			// Reliable playmaker.
			"fixture-p3": {9, 8, 10, 9, 11, 8, 9, 10, 8, 9},
			// Low-volume shooter trending under.
			"fixture-p4": {1, 2, 1, 0, 2, 1, 1, 2, 1, 0},
		},
		slate: defaultSlate(),
	}
}

func defaultSlate() []props.Prop {
	return []props.Prop{
		{
			PlayerID: "fixture-p1", PlayerName: "Jane Doe", Team: "BOS",
			GameID: "bos-lal", GameName: "Celtics vs Lakers",
			Stat: props.StatPoints, Line: 28.5, Side: props.SideOver, OfferedOdds: 1.8,
			Market: props.MarketRef{LineID: "l-1", MarketID: "m-1", StatID: "s-points"},
		},
		{
			PlayerID: "fixture-p2", PlayerName: "John Smith", Team: "LAL",
			GameID: "bos-lal", GameName: "Celtics vs Lakers",
			Stat: props.StatRebounds, Line: 9.5, Side: props.SideOver, OfferedOdds: 1.9,
			Market: props.MarketRef{LineID: "l-2", MarketID: "m-2", StatID: "s-rebounds"},
		},
		{
			PlayerID: "fixture-p3", PlayerName: "Alex Roe", Team: "GSW",
			GameID: "gsw-mia", GameName: "Warriors vs Heat",
			Stat: props.StatAssists, Line: 7.5, Side: props.SideOver, OfferedOdds: 1.7,
			Market: props.MarketRef{LineID: "l-3", MarketID: "m-3", StatID: "s-assists"},
		},
		{
			PlayerID: "fixture-p4", PlayerName: "Sam Poe", Team: "MIA",
			GameID: "gsw-mia", GameName: "Warriors vs Heat",
			Stat: props.StatThreesMade, Line: 2.5, Side: props.SideUnder, OfferedOdds: 1.6,
			Market: props.MarketRef{LineID: "l-4", MarketID: "m-4", StatID: "s-threes"},
		},
	}
}

// FetchProps returns the static slate.
func (p *Provider) FetchProps(ctx context.Context) ([]props.Prop, error) {
	_ = ctx
	slate := make([]props.Prop, len(p.slate))
	copy(slate, p.slate)
	return slate, nil
}

// FetchGameLog returns the player's deterministic history, truncated to lookback.
func (p *Provider) FetchGameLog(ctx context.Context, playerID string, stat props.StatCategory, lookback int) ([]outcomes.GameOutcome, error) {
	_ = ctx
	_ = stat

	values, ok := p.logs[playerID]
	if !ok {
		return nil, fmt.Errorf("fixture: player %s: %w", playerID, providers.ErrPlayerNotFound)
	}
	if lookback < len(values) {
		values = values[:lookback]
	}
	return outcomes.FromValues(values), nil
}
