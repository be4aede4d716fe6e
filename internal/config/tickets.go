package config

import "fmt"

// TicketsConfig controls how a batch of parlay tickets is assembled.
type TicketsConfig struct {
	NumTickets      int
	GamesPerTicket  int
	PicksPerGameMin int
	PicksPerGameMax int
	// Seed drives the per-game pick-count draw. Zero means "seed from the clock"
	// at the CLI boundary; the core always receives an explicit value.
	Seed       int64
	SideFilter string // "", "over" or "under"
}

func loadTickets() TicketsConfig {
	return TicketsConfig{
		NumTickets:      intEnvOrDefault(envNumTickets, defaultNumTickets),
		GamesPerTicket:  intEnvOrDefault(envGamesPerTicket, defaultGamesPerTicket),
		PicksPerGameMin: intEnvOrDefault(envPicksPerGameMin, defaultPicksPerGameMin),
		PicksPerGameMax: intEnvOrDefault(envPicksPerGameMax, defaultPicksPerGameMax),
		Seed:            int64EnvOrDefault(envTicketSeed, 0),
		SideFilter:      envOrDefault(envSideFilter, ""),
	}
}

// Validate applies the fatal configuration gates for ticket assembly.
func (c TicketsConfig) Validate() error {
	if c.NumTickets < 1 {
		return fmt.Errorf("%w: num tickets must be >= 1, got %d", ErrInvalid, c.NumTickets)
	}
	if c.GamesPerTicket < 1 {
		return fmt.Errorf("%w: games per ticket must be >= 1, got %d", ErrInvalid, c.GamesPerTicket)
	}
	if c.PicksPerGameMin < 1 {
		return fmt.Errorf("%w: picks per game min must be >= 1, got %d", ErrInvalid, c.PicksPerGameMin)
	}
	if c.PicksPerGameMax < c.PicksPerGameMin {
		return fmt.Errorf("%w: picks per game range [%d,%d] is inverted", ErrInvalid, c.PicksPerGameMin, c.PicksPerGameMax)
	}
	switch c.SideFilter {
	case "", "over", "under":
	default:
		return fmt.Errorf("%w: side filter %q (expected over, under or empty)", ErrInvalid, c.SideFilter)
	}
	return nil
}
