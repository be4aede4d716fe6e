// Package scoring computes the composite 0-100 likelihood score for a prop
// from its season and recent outcome windows.
package scoring

import (
	"math"

	"props-ticket-service/internal/config"
	"props-ticket-service/internal/domain/outcomes"
	"props-ticket-service/internal/domain/props"
)

// Scorer applies the weighted composite model. The weights and gates are the
// user-tunable contract; construction fails on a config that does not
// validate, before any scoring begins.
type Scorer struct {
	cfg config.ScoringConfig
}

// New constructs a Scorer, rejecting invalid configuration.
func New(cfg config.ScoringConfig) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{cfg: cfg}, nil
}

// Score computes the ScoredProp for one prop given its windows. A prop with
// no season history scores zero and is flagged ineligible via SampleSize 0.
func (s *Scorer) Score(prop props.Prop, season, recent []outcomes.GameOutcome) props.ScoredProp {
	scored := props.ScoredProp{Prop: prop}
	if len(season) == 0 {
		return scored
	}

	recent = outcomes.Window(recent, s.cfg.RecentLookback)
	seasonValues := outcomes.Values(season)
	recentValues := outcomes.Values(recent)

	histRate := hitRate(seasonValues, prop.Line, prop.Side)
	recentHits := hitCount(recentValues, prop.Line, prop.Side)
	recentRate := 0.0
	if len(recentValues) > 0 {
		recentRate = float64(recentHits) / float64(len(recentValues))
	}

	avg := mean(seasonValues)
	delta := favorableDelta(avg, prop.Line, prop.Side)
	sampleFactor := math.Min(float64(len(seasonValues))/float64(s.cfg.FullSampleGames), 1.0)

	w := s.cfg.Weights
	composite := w.Historical*histRate +
		w.Recent*recentRate +
		w.LineDelta*normalizeDelta(delta) +
		w.Consistency*consistency(seasonValues, avg) +
		w.SampleSize*sampleFactor

	scored.HistoricalHitRate = histRate
	scored.RecentHitRate = recentRate
	scored.RecentHits = recentHits
	scored.LineVsAvgDelta = delta
	scored.AverageValue = avg
	scored.Consistency = consistency(seasonValues, avg)
	scored.SampleSize = len(seasonValues)
	scored.Score = clamp(100*composite, 0, 100)
	scored.RecentValues = recentValues
	return scored
}

// Strong applies the two-part gate: the weighted score threshold plus the
// hard recent-form requirement. A high score from line or consistency alone
// cannot substitute for recent hits.
func (s *Scorer) Strong(scored props.ScoredProp) bool {
	return scored.SampleSize > 0 &&
		scored.Score >= s.cfg.ScoreThreshold &&
		scored.RecentHits >= s.cfg.RecentHitThreshold
}

// hit reports the side/line comparison. An exact tie counts as a miss.
func hit(value, line float64, side props.Side) bool {
	if side == props.SideUnder {
		return value < line
	}
	return value > line
}

func hitCount(values []float64, line float64, side props.Side) int {
	count := 0
	for _, v := range values {
		if hit(v, line, side) {
			count++
		}
	}
	return count
}

func hitRate(values []float64, line float64, side props.Side) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(hitCount(values, line, side)) / float64(len(values))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// favorableDelta is the relative gap between the season average and the line,
// signed so a positive value favors the bet's direction.
func favorableDelta(avg, line float64, side props.Side) float64 {
	if line == 0 {
		return 0
	}
	if side == props.SideUnder {
		return (line - avg) / line
	}
	return (avg - line) / line
}

const deltaSteepness = 8.0

// normalizeDelta squashes the relative gap into [0,1] with a logistic curve.
// A zero gap maps to 0.5; a gap of about a quarter of the line saturates.
func normalizeDelta(delta float64) float64 {
	return 1 / (1 + math.Exp(-deltaSteepness*delta))
}

// consistency is one minus the coefficient of variation, clamped to [0,1].
// Zero variance (including a single game) means perfectly consistent.
func consistency(values []float64, avg float64) float64 {
	if len(values) < 2 {
		return 1.0
	}
	variance := 0.0
	for _, v := range values {
		d := v - avg
		variance += d * d
	}
	variance /= float64(len(values) - 1)
	if variance == 0 {
		return 1.0
	}
	if avg == 0 {
		return 0
	}
	cv := math.Sqrt(variance) / math.Abs(avg)
	return clamp(1-cv, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
