package stakeapi

import (
	"strings"

	"props-ticket-service/internal/domain/props"
)

// statCategories maps upstream swish stat names to domain categories.
// Names the book uses that the scorer cannot source game logs for are absent
// and their markets are dropped by the mapper.
var statCategories = map[string]props.StatCategory{
	"points":                      props.StatPoints,
	"rebounds":                    props.StatRebounds,
	"assists":                     props.StatAssists,
	"steals":                      props.StatSteals,
	"blocks":                      props.StatBlocks,
	"turnovers":                   props.StatTurnovers,
	"threes made":                 props.StatThreesMade,
	"points + assists":            props.StatPointsAssists,
	"points + rebounds":           props.StatPointsRebounds,
	"points + rebounds + assists": props.StatPointsReboundsAssists,
	"steals + blocks":             props.StatStealsBlocks,
	"shots on goal":               props.StatShotsOnGoal,
	"goals":                       props.StatGoals,
	"saves":                       props.StatSaves,
}

func mapStatCategory(name string) (props.StatCategory, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	stat, ok := statCategories[normalized]
	return stat, ok
}

// mapFixtureProps flattens one fixture's market tree into Props. Every listed
// line yields an over and an under prop; which side is worth backing is the
// scorer's call, not the mapper's.
func mapFixtureProps(fixture fixtureResponse, payload fixturePropsResponse) []props.Prop {
	mapped := make([]props.Prop, 0)

	for _, team := range payload.Data.SlugFixture.SwishGameTeams {
		for _, player := range team.Players {
			for _, market := range player.Markets {
				stat, ok := mapStatCategory(market.Stat.Name)
				if !ok {
					continue
				}
				for _, line := range market.Lines {
					base := props.Prop{
						PlayerID:   player.ID,
						PlayerName: player.Name,
						Team:       team.Name,
						GameID:     fixture.Slug,
						GameName:   fixture.Name,
						Stat:       stat,
						Line:       line.Line,
						Market: props.MarketRef{
							LineID:   line.ID,
							MarketID: market.ID,
							StatID:   market.Stat.SwishStatID,
						},
					}

					if line.Over > 0 {
						over := base
						over.Side = props.SideOver
						over.OfferedOdds = line.Over
						mapped = append(mapped, over)
					}
					if line.Under > 0 {
						under := base
						under.Side = props.SideUnder
						under.OfferedOdds = line.Under
						mapped = append(mapped, under)
					}
				}
			}
		}
	}

	return mapped
}
