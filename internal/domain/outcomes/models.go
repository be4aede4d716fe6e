package outcomes

// GameOutcome is a single per-game value for one player and stat category.
// GameIndex 0 is the most recent game. Immutable once recorded.
type GameOutcome struct {
	GameIndex int     `json:"gameIndex"`
	Value     float64 `json:"value"`
}

// Values flattens a window into its raw stat values, preserving order.
func Values(window []GameOutcome) []float64 {
	vals := make([]float64, len(window))
	for i, o := range window {
		vals[i] = o.Value
	}
	return vals
}

// Window returns the first n outcomes (the n most recent games). It returns the
// input unchanged when fewer than n outcomes exist.
func Window(all []GameOutcome, n int) []GameOutcome {
	if n < 0 {
		n = 0
	}
	if len(all) <= n {
		return all
	}
	return all[:n]
}

// FromValues builds an ordered window from raw values, most recent first.
func FromValues(values []float64) []GameOutcome {
	window := make([]GameOutcome, len(values))
	for i, v := range values {
		window[i] = GameOutcome{GameIndex: i, Value: v}
	}
	return window
}
