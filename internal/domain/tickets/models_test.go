package tickets

import (
	"math"
	"testing"

	"props-ticket-service/internal/domain/props"
)

func pick(player, game string, stat props.StatCategory, odds float64) props.ScoredProp {
	return props.ScoredProp{
		Prop: props.Prop{PlayerID: player, GameID: game, Stat: stat, Line: 10.5, Side: props.SideOver, OfferedOdds: odds},
	}
}

func TestNewTicketDerivesGamesAndOdds(t *testing.T) {
	tk := NewTicket(2, []props.ScoredProp{
		pick("p1", "g1", props.StatPoints, 1.5),
		pick("p2", "g1", props.StatRebounds, 2.0),
		pick("p3", "g2", props.StatAssists, 1.8),
	})

	if tk.Number != 2 {
		t.Fatalf("number = %d, want 2", tk.Number)
	}
	if len(tk.Games) != 2 || tk.Games[0] != "g1" || tk.Games[1] != "g2" {
		t.Fatalf("games = %v, want [g1 g2] in first-pick order", tk.Games)
	}
	if math.Abs(tk.CombinedOdds-5.4) > 1e-9 {
		t.Fatalf("combined odds = %v, want 5.4", tk.CombinedOdds)
	}
}

func TestNewTicketSkipsUnpricedPicksInOdds(t *testing.T) {
	tk := NewTicket(1, []props.ScoredProp{
		pick("p1", "g1", props.StatPoints, 1.5),
		pick("p2", "g1", props.StatRebounds, 0),
	})

	if tk.CombinedOdds != 1.5 {
		t.Fatalf("combined odds = %v, want 1.5", tk.CombinedOdds)
	}
}

func TestPicksByGame(t *testing.T) {
	tk := NewTicket(1, []props.ScoredProp{
		pick("p1", "g1", props.StatPoints, 1.5),
		pick("p2", "g2", props.StatRebounds, 2.0),
		pick("p3", "g1", props.StatAssists, 1.8),
	})

	grouped := tk.PicksByGame()
	if len(grouped["g1"]) != 2 || len(grouped["g2"]) != 1 {
		t.Fatalf("grouped = %v", grouped)
	}
	if grouped["g1"][0].PlayerID != "p1" || grouped["g1"][1].PlayerID != "p3" {
		t.Fatalf("pick order within a game not preserved: %v", grouped["g1"])
	}
}

func TestShortfallShort(t *testing.T) {
	if (Shortfall{RequestedTickets: 5, EmittedTickets: 5}).Short() {
		t.Fatalf("full batch reported short")
	}
	if !(Shortfall{RequestedTickets: 5, EmittedTickets: 3}).Short() {
		t.Fatalf("missing tickets not reported")
	}
	if !(Shortfall{RequestedTickets: 5, EmittedTickets: 5, MissingPicks: 2}).Short() {
		t.Fatalf("missing picks not reported")
	}
}

func TestBatchUsedKeysSorted(t *testing.T) {
	batch := Batch{Tickets: []Ticket{
		NewTicket(1, []props.ScoredProp{pick("p2", "g1", props.StatPoints, 1.5)}),
		NewTicket(2, []props.ScoredProp{pick("p1", "g2", props.StatAssists, 1.8)}),
	}}

	keys := batch.UsedKeys()
	if len(keys) != 2 {
		t.Fatalf("keys = %d, want 2", len(keys))
	}
	if keys[0].PlayerID != "p1" || keys[1].PlayerID != "p2" {
		t.Fatalf("keys not sorted: %v", keys)
	}
}
