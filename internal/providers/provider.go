package providers

import (
	"context"

	"props-ticket-service/internal/domain/outcomes"
	"props-ticket-service/internal/domain/props"
)

// PropsProvider fetches the day's prop listings, normalized to domain Props.
type PropsProvider interface {
	FetchProps(ctx context.Context) ([]props.Prop, error)
}

// GameLogProvider fetches a player's recent per-game outcomes for one stat
// category, most recent first, at most lookback entries. Implementations
// return ErrPlayerNotFound when the upstream source has no record for the
// player; an empty slice (no error) means the player simply has no games yet.
type GameLogProvider interface {
	FetchGameLog(ctx context.Context, playerID string, stat props.StatCategory, lookback int) ([]outcomes.GameOutcome, error)
}

// DataProvider combines both provider capabilities.
type DataProvider interface {
	PropsProvider
	GameLogProvider
}
