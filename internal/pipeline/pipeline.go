// Package pipeline runs one generation pass: list props, score them against
// historical windows, and assemble the scored pool into tickets. Per-prop
// failures are isolated and reported; only a failed prop listing aborts a run.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"props-ticket-service/internal/aggregator"
	"props-ticket-service/internal/assembly"
	"props-ticket-service/internal/config"
	"props-ticket-service/internal/domain/outcomes"
	"props-ticket-service/internal/domain/props"
	"props-ticket-service/internal/domain/tickets"
	"props-ticket-service/internal/logging"
	"props-ticket-service/internal/metrics"
	"props-ticket-service/internal/providers"
	"props-ticket-service/internal/scoring"
)

// Skip reasons carried on the run report and the skip metric.
const (
	ReasonPlayerNotFound = "player_not_found"
	ReasonFetchFailed    = "fetch_failed"
	ReasonSideFiltered   = "side_filtered"
)

// SkippedProp records one prop dropped from a run and why.
type SkippedProp struct {
	PlayerID   string             `json:"playerId"`
	PlayerName string             `json:"playerName"`
	Stat       props.StatCategory `json:"stat"`
	GameID     string             `json:"gameId"`
	Reason     string             `json:"reason"`
}

// Report summarizes one generation run.
type Report struct {
	PropsListed     int           `json:"propsListed"`
	PropsScored     int           `json:"propsScored"`
	StrongProps     int           `json:"strongProps"`
	PlayersNotFound int           `json:"playersNotFound"`
	Skipped         []SkippedProp `json:"skipped,omitempty"`
}

// Result is the terminal output of one run.
type Result struct {
	Batch  tickets.Batch
	Scored []props.ScoredProp
	Report Report
}

// Pipeline wires the aggregator, scorer and assembler over a data provider.
type Pipeline struct {
	propsProvider providers.PropsProvider
	agg           *aggregator.Aggregator
	scorer        *scoring.Scorer
	assembler     *assembly.Assembler
	scoringCfg    config.ScoringConfig
	ticketsCfg    config.TicketsConfig
	logger        *slog.Logger
	metrics       *metrics.Recorder
	now           func() time.Time
}

// New constructs a Pipeline, rejecting invalid configuration up front.
func New(cfg config.Config, propsProvider providers.PropsProvider, logProvider providers.GameLogProvider, logger *slog.Logger, recorder *metrics.Recorder) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scorer, err := scoring.New(cfg.Scoring)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		propsProvider: propsProvider,
		agg:           aggregator.New(logProvider),
		scorer:        scorer,
		assembler:     assembly.New(scorer.Strong),
		scoringCfg:    cfg.Scoring,
		ticketsCfg:    cfg.Tickets,
		logger:        logger,
		metrics:       recorder,
		now:           time.Now,
	}, nil
}

type windowKey struct {
	playerID string
	stat     props.StatCategory
}

type windowResult struct {
	season []outcomes.GameOutcome
	recent []outcomes.GameOutcome
	err    error
}

// Run executes one generation pass.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	if p.propsProvider == nil {
		return Result{}, providers.ErrProviderUnavailable
	}

	listed, err := p.propsProvider.FetchProps(ctx)
	if err != nil {
		return Result{}, err
	}

	result := Result{Report: Report{PropsListed: len(listed)}}
	windows := make(map[windowKey]windowResult)

	for _, prop := range listed {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if p.filteredOut(prop) {
			p.skip(&result.Report, prop, ReasonSideFiltered)
			continue
		}

		win := p.fetchWindows(ctx, windows, prop)
		if win.err != nil {
			reason := ReasonFetchFailed
			if errors.Is(win.err, providers.ErrPlayerNotFound) {
				reason = ReasonPlayerNotFound
				result.Report.PlayersNotFound++
			}
			p.skip(&result.Report, prop, reason)
			logging.Warn(p.logger, "prop skipped",
				logging.FieldPlayer, prop.PlayerName,
				logging.FieldStat, string(prop.Stat),
				"reason", reason,
				"error", win.err,
			)
			continue
		}

		scored := p.scorer.Score(prop, win.season, win.recent)
		strong := p.scorer.Strong(scored)
		result.Scored = append(result.Scored, scored)
		result.Report.PropsScored++
		if strong {
			result.Report.StrongProps++
		}
		if p.metrics != nil {
			p.metrics.RecordPropScored(strong)
		}
	}

	opts := assembly.FromConfig(p.ticketsCfg)
	batch, err := p.assembler.GenerateTickets(result.Scored, opts)
	if err != nil {
		return Result{}, err
	}
	batch.GeneratedAt = p.now().UTC().Format(time.RFC3339)
	result.Batch = batch

	if p.metrics != nil {
		p.metrics.RecordTicketsBuilt(len(batch.Tickets))
	}
	logging.Info(p.logger, "generation run complete",
		"props_listed", result.Report.PropsListed,
		"props_scored", result.Report.PropsScored,
		"strong_props", result.Report.StrongProps,
		"players_not_found", result.Report.PlayersNotFound,
		"tickets", len(batch.Tickets),
		"missing_picks", batch.Shortfall.MissingPicks,
	)
	if batch.Shortfall.Short() {
		logging.Warn(p.logger, "ticket batch short of request",
			"requested", batch.Shortfall.RequestedTickets,
			"emitted", batch.Shortfall.EmittedTickets,
			"missing_picks", batch.Shortfall.MissingPicks,
			"strong_pool", batch.Shortfall.StrongPoolSize,
		)
	}
	return result, nil
}

func (p *Pipeline) filteredOut(prop props.Prop) bool {
	filter := p.ticketsCfg.SideFilter
	return filter != "" && string(prop.Side) != filter
}

// fetchWindows resolves the season and recent windows for a prop, caching per
// (player, stat) so multiple lines on the same market cost one fetch.
func (p *Pipeline) fetchWindows(ctx context.Context, cache map[windowKey]windowResult, prop props.Prop) windowResult {
	key := windowKey{playerID: prop.PlayerID, stat: prop.Stat}
	if win, ok := cache[key]; ok {
		return win
	}

	season, recent, err := p.agg.Windows(ctx, prop.PlayerID, prop.Stat, p.scoringCfg.SeasonLookback, p.scoringCfg.RecentLookback)
	win := windowResult{season: season, recent: recent, err: err}
	cache[key] = win
	return win
}

func (p *Pipeline) skip(report *Report, prop props.Prop, reason string) {
	report.Skipped = append(report.Skipped, SkippedProp{
		PlayerID:   prop.PlayerID,
		PlayerName: prop.PlayerName,
		Stat:       prop.Stat,
		GameID:     prop.GameID,
		Reason:     reason,
	})
	if p.metrics != nil {
		p.metrics.RecordPropSkipped(reason)
	}
}
