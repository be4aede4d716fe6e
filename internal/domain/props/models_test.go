package props

import "testing"

func TestSideValid(t *testing.T) {
	if !SideOver.Valid() || !SideUnder.Valid() {
		t.Fatalf("known sides must be valid")
	}
	if Side("push").Valid() {
		t.Fatalf("unknown side reported valid")
	}
}

func TestKeyIdentity(t *testing.T) {
	a := Prop{PlayerID: "p1", Stat: StatPoints, GameID: "g1", Line: 20.5, Side: SideOver}
	b := Prop{PlayerID: "p1", Stat: StatPoints, GameID: "g1", Line: 22.5, Side: SideUnder}

	// Line and side do not participate: one pick slot per player/stat/game.
	if a.Key() != b.Key() {
		t.Fatalf("keys differ for the same pick slot: %v vs %v", a.Key(), b.Key())
	}

	c := b
	c.Stat = StatAssists
	if a.Key() == c.Key() {
		t.Fatalf("different stats must produce different keys")
	}
}
