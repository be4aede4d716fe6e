package stakeapi

import (
	"testing"

	"props-ticket-service/internal/domain/props"
)

func TestMapStatCategoryNormalizesNames(t *testing.T) {
	cases := []struct {
		name string
		want props.StatCategory
	}{
		{"Points", props.StatPoints},
		{"  rebounds ", props.StatRebounds},
		{"Points + Rebounds + Assists", props.StatPointsReboundsAssists},
		{"Shots On Goal", props.StatShotsOnGoal},
	}
	for _, tc := range cases {
		got, ok := mapStatCategory(tc.name)
		if !ok {
			t.Fatalf("%q: expected a mapping", tc.name)
		}
		if got != tc.want {
			t.Fatalf("%q = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestMapStatCategoryUnknownDropped(t *testing.T) {
	if _, ok := mapStatCategory("double doubles"); ok {
		t.Fatalf("unsupported categories must be dropped, not guessed")
	}
}

func TestMapFixturePropsSkipsUnknownMarkets(t *testing.T) {
	fixture := fixtureResponse{Slug: "g1", Name: "Game One"}

	unknown := marketResponse{ID: "m-x"}
	unknown.Stat.Name = "fantasy score"
	unknown.Lines = []lineResponse{{ID: "l-x", Line: 30.5, Over: 1.9, Under: 1.9}}

	payload := propsBody(teamResponse{
		Name: "Team A",
		Players: []playerResponse{{
			ID:      "p-1",
			Name:    "Player One",
			Markets: []marketResponse{unknown, pointsMarket("l-1", 22.5, 1.85, 1.95)},
		}},
	})

	mapped := mapFixtureProps(fixture, payload)

	if len(mapped) != 2 {
		t.Fatalf("props = %d, want 2 from the points market only", len(mapped))
	}
	for _, p := range mapped {
		if p.Stat != props.StatPoints {
			t.Fatalf("unexpected stat %s", p.Stat)
		}
		if p.GameName != "Game One" || p.Team != "Team A" {
			t.Fatalf("fixture metadata missing: %+v", p)
		}
	}
}

func TestMapFixturePropsOmitsUnpricedSides(t *testing.T) {
	fixture := fixtureResponse{Slug: "g1"}
	payload := propsBody(teamResponse{
		Players: []playerResponse{{
			ID:      "p-1",
			Markets: []marketResponse{pointsMarket("l-1", 22.5, 1.85, 0)},
		}},
	})

	mapped := mapFixtureProps(fixture, payload)

	if len(mapped) != 1 {
		t.Fatalf("props = %d, want 1 when only the over is priced", len(mapped))
	}
	if mapped[0].Side != props.SideOver {
		t.Fatalf("side = %s, want over", mapped[0].Side)
	}
}
