package nbastats

// statsResponse is the shape of the upstream per-game stats listing.
type statsResponse struct {
	Data []statRow    `json:"data"`
	Meta metaResponse `json:"meta"`
}

type statRow struct {
	ID       int          `json:"id"`
	Points   float64      `json:"pts"`
	Rebounds float64      `json:"reb"`
	Assists  float64      `json:"ast"`
	Steals   float64      `json:"stl"`
	Blocks   float64      `json:"blk"`
	Turnover float64      `json:"turnover"`
	Fg3m     float64      `json:"fg3m"`
	Minutes  string       `json:"min"`
	Game     gameResponse `json:"game"`
}

type gameResponse struct {
	ID   int    `json:"id"`
	Date string `json:"date"`
}

type metaResponse struct {
	TotalPages int `json:"total_pages"`
}
