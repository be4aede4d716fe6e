package config

import "time"

const (
	envStakeBaseURL = "STAKE_BASE_URL"
	envStakeToken   = "STAKE_API_TOKEN"
	envStakeLeague  = "STAKE_LEAGUE"

	envStatsBaseURL = "STATS_BASE_URL"
	envStatsAPIKey  = "STATS_API_KEY"
	envStatsDelay   = "STATS_REQUEST_DELAY"

	defaultStakeBaseURL = "https://stake.com/_api/graphql"
	defaultStakeLeague  = "nba"

	defaultStatsBaseURL = "https://www.balldontlie.io/api/v1"
	// Spacing between game-log fetches keeps us under the stats API quota.
	defaultStatsDelay = 600 * Duration(time.Millisecond)
)

// StakeConfig controls how the props listing client reaches the sportsbook API.
type StakeConfig struct {
	BaseURL string
	Token   string
	League  string
}

func loadStake() StakeConfig {
	return StakeConfig{
		BaseURL: envOrDefault(envStakeBaseURL, defaultStakeBaseURL),
		Token:   envOrDefault(envStakeToken, ""),
		League:  envOrDefault(envStakeLeague, defaultStakeLeague),
	}
}

// StatsConfig controls how the game-log client reaches the stats API.
type StatsConfig struct {
	BaseURL      string
	APIKey       string
	RequestDelay time.Duration
}

func loadStats() StatsConfig {
	return StatsConfig{
		BaseURL:      envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		APIKey:       envOrDefault(envStatsAPIKey, ""),
		RequestDelay: durationEnvOrDefault(envStatsDelay, defaultStatsDelay),
	}
}
