package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecordProviderAttempt(t *testing.T) {
	r := NewRecorder()

	r.RecordProviderAttempt("stake", 10*time.Millisecond, nil)
	r.RecordProviderAttempt("stake", 20*time.Millisecond, errors.New("boom"))

	snap := r.Snapshot("stake")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("snapshot = %+v, want 2 calls and 1 error", snap)
	}
	if snap.LastCallLatency != 20*time.Millisecond {
		t.Fatalf("latency = %v, want the most recent", snap.LastCallLatency)
	}
}

func TestRecordRateLimit(t *testing.T) {
	r := NewRecorder()

	r.RecordRateLimit("nbastats", 30*time.Second)
	r.RecordRateLimit("nbastats", 0)

	if r.RateLimitHits("nbastats") != 2 {
		t.Fatalf("hits = %d, want 2", r.RateLimitHits("nbastats"))
	}
	// A zero Retry-After does not clobber the last observed value.
	if r.LastRetryAfter("nbastats") != 30*time.Second {
		t.Fatalf("retry-after = %v, want 30s", r.LastRetryAfter("nbastats"))
	}
}

func TestScoringCounters(t *testing.T) {
	r := NewRecorder()

	r.RecordPropScored(true)
	r.RecordPropScored(false)
	r.RecordPropScored(true)
	r.RecordPropSkipped("player_not_found")
	r.RecordPropSkipped("player_not_found")
	r.RecordPropSkipped("fetch_failed")
	r.RecordTicketsBuilt(5)
	r.RecordTicketsBuilt(0) // ignored

	if r.PropsScored() != 3 || r.StrongProps() != 2 {
		t.Fatalf("scored/strong = %d/%d, want 3/2", r.PropsScored(), r.StrongProps())
	}
	if r.PropsSkipped("player_not_found") != 2 {
		t.Fatalf("skipped = %d, want 2", r.PropsSkipped("player_not_found"))
	}
	if r.PropsSkipped("fetch_failed") != 1 {
		t.Fatalf("skipped = %d, want 1", r.PropsSkipped("fetch_failed"))
	}
	if r.TicketsBuilt() != 5 {
		t.Fatalf("tickets = %d, want 5", r.TicketsBuilt())
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var r *Recorder

	// None of these may panic.
	r.RecordProviderAttempt("x", 0, nil)
	r.RecordRateLimit("x", 0)
	r.RecordPropScored(true)
	r.RecordPropSkipped("x")
	r.RecordTicketsBuilt(1)
	r.RecordGeneratorCycle(0, nil)
	r.RecordHTTPRequest("GET", "/tickets", 200, 0)

	if r.ProviderCalls("x") != 0 || r.PropsScored() != 0 || r.TicketsBuilt() != 0 {
		t.Fatalf("nil recorder must report zeros")
	}
}

func TestSnapshotUnknownProvider(t *testing.T) {
	r := NewRecorder()

	if snap := r.Snapshot("unknown"); snap != (Snapshot{}) {
		t.Fatalf("unknown provider snapshot = %+v, want zero", snap)
	}
}
