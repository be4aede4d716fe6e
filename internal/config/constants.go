package config

import "time"

const (
	envPort             = "PORT"
	envGenerateInterval = "GENERATE_INTERVAL"
	envProvider         = "PROVIDER"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	envNumTickets      = "NUM_TICKETS"
	envGamesPerTicket  = "GAMES_PER_TICKET"
	envPicksPerGameMin = "PICKS_PER_GAME_MIN"
	envPicksPerGameMax = "PICKS_PER_GAME_MAX"
	envTicketSeed      = "TICKET_SEED"
	envSideFilter      = "TICKET_SIDE_FILTER"

	envScoringProfile  = "SCORING_CONFIG"
	envScoreThreshold  = "SCORE_THRESHOLD"
	envRecentHitsMin   = "RECENT_HIT_THRESHOLD"
	envSeasonLookback  = "SEASON_LOOKBACK"
	envFullSampleGames = "FULL_SAMPLE_GAMES"

	envTicketsDir    = "TICKETS_DIR"
	envRetentionRuns = "TICKETS_RETENTION_RUNS"

	defaultPort = "4000"
	// Conservative default regeneration cadence; prop lines move slowly pre-game.
	defaultGenerateInterval = 15 * Duration(time.Minute)
	defaultProvider         = "fixture"
	defaultMetricsPort      = "9090"

	defaultNumTickets      = 5
	defaultGamesPerTicket  = 4
	defaultPicksPerGameMin = 6
	defaultPicksPerGameMax = 7

	defaultScoreThreshold  = 70.0
	defaultRecentHitsMin   = 5
	defaultRecentLookback  = 7
	defaultSeasonLookback  = 20
	defaultFullSampleGames = 20

	defaultTicketsDir    = "data/tickets"
	defaultRetentionRuns = 14
)
