package nbastats

import (
	"sort"

	"props-ticket-service/internal/domain/outcomes"
	"props-ticket-service/internal/domain/props"
)

// statValue extracts the value for a stat category from a box-score row.
// Combo categories are summed from their parts. Categories this feed does not
// carry (e.g. quarter splits, NHL stats) report ok=false.
func statValue(row statRow, stat props.StatCategory) (float64, bool) {
	switch stat {
	case props.StatPoints:
		return row.Points, true
	case props.StatRebounds:
		return row.Rebounds, true
	case props.StatAssists:
		return row.Assists, true
	case props.StatSteals:
		return row.Steals, true
	case props.StatBlocks:
		return row.Blocks, true
	case props.StatTurnovers:
		return row.Turnover, true
	case props.StatThreesMade:
		return row.Fg3m, true
	case props.StatPointsAssists:
		return row.Points + row.Assists, true
	case props.StatPointsRebounds:
		return row.Points + row.Rebounds, true
	case props.StatPointsReboundsAssists:
		return row.Points + row.Rebounds + row.Assists, true
	case props.StatStealsBlocks:
		return row.Steals + row.Blocks, true
	default:
		return 0, false
	}
}

// mapGameLog turns raw rows into an ordered outcome window, most recent first,
// truncated to lookback. Rows without a value for the category are dropped.
func mapGameLog(rows []statRow, stat props.StatCategory, lookback int) []outcomes.GameOutcome {
	sorted := make([]statRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Game.Date != sorted[j].Game.Date {
			return sorted[i].Game.Date > sorted[j].Game.Date
		}
		return sorted[i].Game.ID > sorted[j].Game.ID
	})

	window := make([]outcomes.GameOutcome, 0, lookback)
	for _, row := range sorted {
		if len(window) >= lookback {
			break
		}
		value, ok := statValue(row, stat)
		if !ok {
			continue
		}
		window = append(window, outcomes.GameOutcome{GameIndex: len(window), Value: value})
	}
	return window
}
