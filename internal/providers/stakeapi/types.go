package stakeapi

// Upstream GraphQL response shapes, trimmed to the fields the mapper consumes.

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type fixtureListResponse struct {
	Data struct {
		SlugTournament struct {
			FixtureList []fixtureResponse `json:"fixtureList"`
		} `json:"slugTournament"`
	} `json:"data"`
}

type fixtureResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Slug   string `json:"slug"`
	Name   string `json:"name"`
}

type fixturePropsResponse struct {
	Data struct {
		SlugFixture struct {
			ID             string         `json:"id"`
			Status         string         `json:"status"`
			SwishGameTeams []teamResponse `json:"swishGameTeams"`
		} `json:"slugFixture"`
	} `json:"data"`
}

type teamResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Players []playerResponse `json:"players"`
}

type playerResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Markets []marketResponse `json:"markets"`
}

type marketResponse struct {
	ID   string `json:"id"`
	Stat struct {
		SwishStatID string `json:"swishStatId"`
		Name        string `json:"name"`
	} `json:"stat"`
	Lines []lineResponse `json:"lines"`
}

type lineResponse struct {
	ID    string  `json:"id"`
	Line  float64 `json:"line"`
	Over  float64 `json:"over"`
	Under float64 `json:"under"`
}
