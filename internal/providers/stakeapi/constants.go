package stakeapi

import "time"

const providerName = "stakeapi"

const (
	defaultBaseURL     = "https://stake.com/_api/graphql"
	defaultLeague      = "nba"
	defaultHTTPTimeout = 15 * time.Second
	maxFixtures        = 20
)

const fixtureListQuery = `query TournamentIndex($sport: String!, $category: String!, $tournament: String!) {
  slugTournament(sport: $sport, category: $category, tournament: $tournament) {
    fixtureList(type: active, limit: 20) {
      id
      status
      slug
      name
    }
  }
}`

const fixturePropsQuery = `query SwishMarket_SlugFixture($fixture: String!, $inPlay: Boolean!) {
  slugFixture(fixture: $fixture) {
    id
    status
    swishGameTeams {
      id
      name
      players {
        id
        name
        markets(inPlay: $inPlay, statTypes: [match, player]) {
          id
          stat {
            swishStatId
            name
          }
          lines {
            id
            line
            over
            under
          }
        }
      }
    }
  }
}`
