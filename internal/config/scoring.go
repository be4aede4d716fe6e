package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights are the composite-score coefficients. They are the documented,
// user-tunable contract of the scorer and must sum to 1.0.
type Weights struct {
	Historical  float64 `yaml:"historical"`
	Recent      float64 `yaml:"recent"`
	LineDelta   float64 `yaml:"line_delta"`
	Consistency float64 `yaml:"consistency"`
	SampleSize  float64 `yaml:"sample_size"`
}

// DefaultWeights returns the stock 0.35/0.25/0.20/0.15/0.05 split.
func DefaultWeights() Weights {
	return Weights{
		Historical:  0.35,
		Recent:      0.25,
		LineDelta:   0.20,
		Consistency: 0.15,
		SampleSize:  0.05,
	}
}

// Sum returns the total of all coefficients.
func (w Weights) Sum() float64 {
	return w.Historical + w.Recent + w.LineDelta + w.Consistency + w.SampleSize
}

const weightSumTolerance = 1e-9

// Validate rejects weight sets that do not form a convex combination.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"historical":  w.Historical,
		"recent":      w.Recent,
		"line_delta":  w.LineDelta,
		"consistency": w.Consistency,
		"sample_size": w.SampleSize,
	} {
		if v < 0 {
			return fmt.Errorf("%w: weight %s is negative (%v)", ErrInvalid, name, v)
		}
	}
	if diff := math.Abs(w.Sum() - 1.0); diff > weightSumTolerance {
		return fmt.Errorf("%w: weights sum to %v, expected 1.0", ErrInvalid, w.Sum())
	}
	return nil
}

// ScoringConfig holds everything the scorer and the strong-prop gate consume.
type ScoringConfig struct {
	Weights            Weights `yaml:"weights"`
	ScoreThreshold     float64 `yaml:"score_threshold"`
	RecentHitThreshold int     `yaml:"recent_hit_threshold"`
	RecentLookback     int     `yaml:"recent_lookback"`
	SeasonLookback     int     `yaml:"season_lookback"`
	FullSampleGames    int     `yaml:"full_sample_games"`
}

func loadScoring() (ScoringConfig, error) {
	cfg := ScoringConfig{
		Weights:            DefaultWeights(),
		ScoreThreshold:     floatEnvOrDefault(envScoreThreshold, defaultScoreThreshold),
		RecentHitThreshold: intEnvOrDefault(envRecentHitsMin, defaultRecentHitsMin),
		RecentLookback:     defaultRecentLookback,
		SeasonLookback:     intEnvOrDefault(envSeasonLookback, defaultSeasonLookback),
		FullSampleGames:    intEnvOrDefault(envFullSampleGames, defaultFullSampleGames),
	}

	path := os.Getenv(envScoringProfile)
	if path == "" {
		return cfg, nil
	}
	return applyScoringProfile(cfg, path)
}

// applyScoringProfile overlays a YAML scoring profile onto the base config.
// Zero-valued fields in the file keep their base values.
func applyScoringProfile(base ScoringConfig, path string) (ScoringConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("%w: scoring profile %s: %v", ErrInvalid, path, err)
	}

	var profile ScoringConfig
	if err := yaml.Unmarshal(raw, &profile); err != nil {
		return base, fmt.Errorf("%w: scoring profile %s: %v", ErrInvalid, path, err)
	}

	if profile.Weights != (Weights{}) {
		base.Weights = profile.Weights
	}
	if profile.ScoreThreshold != 0 {
		base.ScoreThreshold = profile.ScoreThreshold
	}
	if profile.RecentHitThreshold != 0 {
		base.RecentHitThreshold = profile.RecentHitThreshold
	}
	if profile.RecentLookback != 0 {
		base.RecentLookback = profile.RecentLookback
	}
	if profile.SeasonLookback != 0 {
		base.SeasonLookback = profile.SeasonLookback
	}
	if profile.FullSampleGames != 0 {
		base.FullSampleGames = profile.FullSampleGames
	}
	return base, nil
}

// Validate applies the fatal configuration gates for scoring.
func (c ScoringConfig) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.ScoreThreshold < 0 || c.ScoreThreshold > 100 {
		return fmt.Errorf("%w: score threshold %v outside [0,100]", ErrInvalid, c.ScoreThreshold)
	}
	if c.RecentLookback <= 0 {
		return fmt.Errorf("%w: recent lookback must be positive, got %d", ErrInvalid, c.RecentLookback)
	}
	if c.RecentHitThreshold < 0 || c.RecentHitThreshold > c.RecentLookback {
		return fmt.Errorf("%w: recent hit threshold %d outside [0,%d]", ErrInvalid, c.RecentHitThreshold, c.RecentLookback)
	}
	if c.SeasonLookback < c.RecentLookback {
		return fmt.Errorf("%w: season lookback %d shorter than recent lookback %d", ErrInvalid, c.SeasonLookback, c.RecentLookback)
	}
	if c.FullSampleGames <= 0 {
		return fmt.Errorf("%w: full sample games must be positive, got %d", ErrInvalid, c.FullSampleGames)
	}
	return nil
}
