package ticketio

import "props-ticket-service/internal/domain/tickets"

// betSlip is the machine-structured form handed to downstream placement
// tooling: one outcome per pick plus the combined odds.
type betSlip struct {
	Type      string           `json:"type"`
	Outcomes  []betSlipOutcome `json:"outcomes"`
	TotalOdds float64          `json:"totalOdds"`
	Stake     float64          `json:"stake"`
}

type betSlipOutcome struct {
	LineID   string  `json:"lineId"`
	MarketID string  `json:"marketId"`
	StatID   string  `json:"statId,omitempty"`
	Odds     float64 `json:"odds"`
	IsActive bool    `json:"isActive"`
	Player   string  `json:"player"`
	Stat     string  `json:"stat"`
	Line     float64 `json:"line"`
	Side     string  `json:"side"`
}

func newBetSlip(t tickets.Ticket) betSlip {
	outcomes := make([]betSlipOutcome, 0, len(t.Picks))
	for _, p := range t.Picks {
		outcomes = append(outcomes, betSlipOutcome{
			LineID:   p.Market.LineID,
			MarketID: p.Market.MarketID,
			StatID:   p.Market.StatID,
			Odds:     p.OfferedOdds,
			IsActive: true,
			Player:   p.PlayerName,
			Stat:     string(p.Stat),
			Line:     p.Line,
			Side:     string(p.Side),
		})
	}
	return betSlip{
		Type:      "sports-multi",
		Outcomes:  outcomes,
		TotalOdds: t.CombinedOdds,
		Stake:     0,
	}
}
