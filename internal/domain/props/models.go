package props

// Side is the direction a prop is wagered.
type Side string

const (
	SideOver  Side = "over"
	SideUnder Side = "under"
)

// Valid reports whether the side is one of the known values.
func (s Side) Valid() bool {
	return s == SideOver || s == SideUnder
}

// StatCategory identifies the player statistic a prop is written against.
type StatCategory string

const (
	StatPoints                StatCategory = "points"
	StatRebounds              StatCategory = "rebounds"
	StatAssists               StatCategory = "assists"
	StatSteals                StatCategory = "steals"
	StatBlocks                StatCategory = "blocks"
	StatTurnovers             StatCategory = "turnovers"
	StatThreesMade            StatCategory = "threes_made"
	StatPointsAssists         StatCategory = "points+assists"
	StatPointsRebounds        StatCategory = "points+rebounds"
	StatPointsReboundsAssists StatCategory = "points+rebounds+assists"
	StatStealsBlocks          StatCategory = "steals+blocks"
	StatShotsOnGoal           StatCategory = "shots_on_goal"
	StatGoals                 StatCategory = "goals"
	StatSaves                 StatCategory = "saves"
)

// MarketRef carries the upstream identifiers needed to place a pick downstream.
// Opaque to the core; passed through to the bet-slip output unchanged.
type MarketRef struct {
	LineID   string `json:"lineId,omitempty"`
	MarketID string `json:"marketId,omitempty"`
	StatID   string `json:"statId,omitempty"`
}

// Prop is a single player-performance wager as listed upstream. Read-only to the core.
type Prop struct {
	PlayerID    string       `json:"playerId"`
	PlayerName  string       `json:"playerName"`
	Team        string       `json:"team,omitempty"`
	GameID      string       `json:"gameId"`
	GameName    string       `json:"gameName,omitempty"`
	Stat        StatCategory `json:"stat"`
	Line        float64      `json:"line"`
	Side        Side         `json:"side"`
	OfferedOdds float64      `json:"odds"`
	Market      MarketRef    `json:"market,omitempty"`
}

// Key identifies the pick slot a prop occupies inside a ticket batch. At most one
// pick per key may appear across an entire generated batch.
type Key struct {
	PlayerID string
	Stat     StatCategory
	GameID   string
}

// Key returns the batch-uniqueness key for the prop.
func (p Prop) Key() Key {
	return Key{PlayerID: p.PlayerID, Stat: p.Stat, GameID: p.GameID}
}

// ScoredProp is a Prop plus the metrics produced by the scorer. Immutable after creation.
type ScoredProp struct {
	Prop

	HistoricalHitRate float64 `json:"historicalHitRate"`
	RecentHitRate     float64 `json:"recentHitRate"`
	RecentHits        int     `json:"recentHits"`
	LineVsAvgDelta    float64 `json:"lineVsAvgDelta"`
	AverageValue      float64 `json:"averageValue"`
	Consistency       float64 `json:"consistency"`
	SampleSize        int     `json:"sampleSize"`
	Score             float64 `json:"score"`

	// RecentValues are the stat values over the recent window, most recent first.
	RecentValues []float64 `json:"recentValues,omitempty"`
}
