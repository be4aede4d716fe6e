package config

import "errors"

// ErrInvalid marks configuration that must be rejected before any scoring begins.
var ErrInvalid = errors.New("invalid configuration")

// OutputConfig controls where generated tickets land on disk.
type OutputConfig struct {
	Dir           string
	RetentionRuns int
}

func loadOutput() OutputConfig {
	return OutputConfig{
		Dir:           envOrDefault(envTicketsDir, defaultTicketsDir),
		RetentionRuns: intEnvOrDefault(envRetentionRuns, defaultRetentionRuns),
	}
}

// Config holds runtime configuration for the service.
type Config struct {
	Port             string
	GenerateInterval Duration
	Provider         string
	Stake            StakeConfig
	Stats            StatsConfig
	Scoring          ScoringConfig
	Tickets          TicketsConfig
	Output           OutputConfig
	Metrics          MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// The returned error is always ErrInvalid-wrapped; callers treat it as fatal.
func Load() (Config, error) {
	scoring, err := loadScoring()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:             envOrDefault(envPort, defaultPort),
		GenerateInterval: durationEnvOrDefault(envGenerateInterval, defaultGenerateInterval),
		Provider:         envOrDefault(envProvider, defaultProvider),
		Stake:            loadStake(),
		Stats:            loadStats(),
		Scoring:          scoring,
		Tickets:          loadTickets(),
		Output:           loadOutput(),
		Metrics:          loadMetrics(),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate applies every fatal configuration gate.
func (c Config) Validate() error {
	if err := c.Scoring.Validate(); err != nil {
		return err
	}
	return c.Tickets.Validate()
}
