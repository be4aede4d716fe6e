// Package assembly partitions scored props into non-overlapping parlay
// tickets under game-grouping, pick-count and global-uniqueness constraints.
package assembly

import (
	"fmt"
	"math/rand"
	"sort"

	"props-ticket-service/internal/config"
	"props-ticket-service/internal/domain/props"
	"props-ticket-service/internal/domain/tickets"
)

// Gate decides whether a scored prop qualifies for ticket assembly.
type Gate func(props.ScoredProp) bool

// Options control one generation run. Seed drives the per-game pick-count
// draw; a fixed seed and input pool always produce the same batch.
type Options struct {
	NumTickets      int
	GamesPerTicket  int
	PicksPerGameMin int
	PicksPerGameMax int
	Seed            int64
}

// FromConfig maps the tickets configuration onto assembly options.
func FromConfig(cfg config.TicketsConfig) Options {
	return Options{
		NumTickets:      cfg.NumTickets,
		GamesPerTicket:  cfg.GamesPerTicket,
		PicksPerGameMin: cfg.PicksPerGameMin,
		PicksPerGameMax: cfg.PicksPerGameMax,
		Seed:            cfg.Seed,
	}
}

func (o Options) validate() error {
	if o.NumTickets < 1 {
		return fmt.Errorf("%w: num tickets must be >= 1, got %d", config.ErrInvalid, o.NumTickets)
	}
	if o.GamesPerTicket < 1 {
		return fmt.Errorf("%w: games per ticket must be >= 1, got %d", config.ErrInvalid, o.GamesPerTicket)
	}
	if o.PicksPerGameMin < 1 || o.PicksPerGameMax < o.PicksPerGameMin {
		return fmt.Errorf("%w: picks per game range [%d,%d]", config.ErrInvalid, o.PicksPerGameMin, o.PicksPerGameMax)
	}
	return nil
}

// Assembler builds ticket batches from scored props.
type Assembler struct {
	gate Gate
}

// New constructs an Assembler using the given strong-prop gate.
func New(gate Gate) *Assembler {
	return &Assembler{gate: gate}
}

// GenerateTickets builds up to opts.NumTickets tickets. Pool exhaustion is
// never an error: short tickets are emitted as-is and the overall shortfall
// is reported on the batch.
func (a *Assembler) GenerateTickets(scored []props.ScoredProp, opts Options) (tickets.Batch, error) {
	if err := opts.validate(); err != nil {
		return tickets.Batch{}, err
	}

	pool := a.strongPool(scored)
	rng := rand.New(rand.NewSource(opts.Seed))

	used := make(map[props.Key]struct{})
	batch := tickets.Batch{
		Shortfall: tickets.Shortfall{
			RequestedTickets: opts.NumTickets,
			StrongPoolSize:   len(pool),
		},
	}

	for number := 1; number <= opts.NumTickets; number++ {
		byGame := groupEligible(pool, used)
		if len(byGame) == 0 {
			batch.Shortfall.MissingPicks += (opts.NumTickets - number + 1) * opts.GamesPerTicket * opts.PicksPerGameMin
			break
		}

		selected := rankGames(byGame)
		if len(selected) > opts.GamesPerTicket {
			selected = selected[:opts.GamesPerTicket]
		}
		batch.Shortfall.MissingPicks += (opts.GamesPerTicket - len(selected)) * opts.PicksPerGameMin

		picks := make([]props.ScoredProp, 0, len(selected)*opts.PicksPerGameMax)
		for _, game := range selected {
			want := opts.PicksPerGameMin
			if spread := opts.PicksPerGameMax - opts.PicksPerGameMin; spread > 0 {
				want += rng.Intn(spread + 1)
			}

			got := 0
			for _, candidate := range byGame[game] {
				if got >= want {
					break
				}
				key := candidate.Key()
				if _, taken := used[key]; taken {
					continue
				}
				used[key] = struct{}{}
				picks = append(picks, candidate)
				got++
			}
			if got < want {
				batch.Shortfall.MissingPicks += want - got
			}
		}

		if len(picks) == 0 {
			continue
		}
		batch.Tickets = append(batch.Tickets, tickets.NewTicket(number, picks))
	}

	batch.Shortfall.EmittedTickets = len(batch.Tickets)
	return batch, nil
}

// strongPool filters to gate-passing props and orders them for deterministic
// downstream draws: score desc, then player, stat and line ascending.
func (a *Assembler) strongPool(scored []props.ScoredProp) []props.ScoredProp {
	pool := make([]props.ScoredProp, 0, len(scored))
	for _, sp := range scored {
		if sp.SampleSize == 0 {
			continue
		}
		if a.gate != nil && !a.gate(sp) {
			continue
		}
		pool = append(pool, sp)
	}
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].Score != pool[j].Score {
			return pool[i].Score > pool[j].Score
		}
		if pool[i].PlayerID != pool[j].PlayerID {
			return pool[i].PlayerID < pool[j].PlayerID
		}
		if pool[i].Stat != pool[j].Stat {
			return pool[i].Stat < pool[j].Stat
		}
		return pool[i].Line < pool[j].Line
	})
	return pool
}

// groupEligible buckets the not-yet-consumed pool by game, preserving the
// pool's deterministic order within each bucket.
func groupEligible(pool []props.ScoredProp, used map[props.Key]struct{}) map[string][]props.ScoredProp {
	byGame := make(map[string][]props.ScoredProp)
	for _, sp := range pool {
		if _, taken := used[sp.Key()]; taken {
			continue
		}
		byGame[sp.GameID] = append(byGame[sp.GameID], sp)
	}
	return byGame
}

// rankGames orders game IDs by total eligible score descending; equal-quality
// slates fall back to game ID ascending to keep output deterministic.
func rankGames(byGame map[string][]props.ScoredProp) []string {
	games := make([]string, 0, len(byGame))
	totals := make(map[string]float64, len(byGame))
	for game, picks := range byGame {
		games = append(games, game)
		for _, sp := range picks {
			totals[game] += sp.Score
		}
	}
	sort.Slice(games, func(i, j int) bool {
		if totals[games[i]] != totals[games[j]] {
			return totals[games[i]] > totals[games[j]]
		}
		return games[i] < games[j]
	})
	return games
}
