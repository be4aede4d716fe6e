package tickets

import (
	"sort"

	"props-ticket-service/internal/domain/props"
)

// Ticket is one generated parlay: picks across several games, built as a unit.
type Ticket struct {
	Number       int                `json:"number"`
	Games        []string           `json:"games"`
	Picks        []props.ScoredProp `json:"picks"`
	CombinedOdds float64            `json:"combinedOdds"`
}

// NewTicket assembles a ticket from its picks, deriving the game list and
// combined odds. Games are listed in first-pick order.
func NewTicket(number int, picks []props.ScoredProp) Ticket {
	seen := make(map[string]struct{})
	games := make([]string, 0)
	odds := 1.0
	for _, p := range picks {
		if _, ok := seen[p.GameID]; !ok {
			seen[p.GameID] = struct{}{}
			games = append(games, p.GameID)
		}
		if p.OfferedOdds > 0 {
			odds *= p.OfferedOdds
		}
	}
	return Ticket{
		Number:       number,
		Games:        games,
		Picks:        picks,
		CombinedOdds: odds,
	}
}

// PicksByGame groups the ticket's picks by game, preserving pick order within a game.
func (t Ticket) PicksByGame() map[string][]props.ScoredProp {
	grouped := make(map[string][]props.ScoredProp, len(t.Games))
	for _, p := range t.Picks {
		grouped[p.GameID] = append(grouped[p.GameID], p)
	}
	return grouped
}

// Shortfall describes how far a generation run fell short of the requested batch.
type Shortfall struct {
	RequestedTickets int `json:"requestedTickets"`
	EmittedTickets   int `json:"emittedTickets"`
	MissingPicks     int `json:"missingPicks"`
	StrongPoolSize   int `json:"strongPoolSize"`
}

// Short reports whether the batch missed any requested tickets or picks.
func (s Shortfall) Short() bool {
	return s.EmittedTickets < s.RequestedTickets || s.MissingPicks > 0
}

// Batch is the terminal output of one generation run.
type Batch struct {
	GeneratedAt string    `json:"generatedAt"`
	Tickets     []Ticket  `json:"tickets"`
	Shortfall   Shortfall `json:"shortfall"`
}

// UsedKeys returns the pick keys consumed across the whole batch, sorted for
// stable inspection. Each key appears at most once in a valid batch.
func (b Batch) UsedKeys() []props.Key {
	keys := make([]props.Key, 0)
	for _, t := range b.Tickets {
		for _, p := range t.Picks {
			keys = append(keys, p.Key())
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].PlayerID != keys[j].PlayerID {
			return keys[i].PlayerID < keys[j].PlayerID
		}
		if keys[i].Stat != keys[j].Stat {
			return keys[i].Stat < keys[j].Stat
		}
		return keys[i].GameID < keys[j].GameID
	})
	return keys
}
