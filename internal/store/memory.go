package store

import (
	"sync"

	"props-ticket-service/internal/domain/props"
	"props-ticket-service/internal/domain/tickets"
)

// MemoryStore keeps a thread-safe snapshot of the latest generation run.
type MemoryStore struct {
	mu     sync.RWMutex
	batch  tickets.Batch
	scored []props.ScoredProp
	loaded bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetBatch replaces the stored run output.
func (s *MemoryStore) SetBatch(batch tickets.Batch, scored []props.ScoredProp) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batch = batch
	s.scored = make([]props.ScoredProp, len(scored))
	copy(s.scored, scored)
	s.loaded = true
}

// Batch returns the latest batch and whether one has been stored yet.
func (s *MemoryStore) Batch() (tickets.Batch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.batch, s.loaded
}

// Ticket returns a single ticket by number.
func (s *MemoryStore) Ticket(number int) (tickets.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.batch.Tickets {
		if t.Number == number {
			return t, true
		}
	}
	return tickets.Ticket{}, false
}

// ScoredProps returns a copy of the latest scored-prop set.
func (s *MemoryStore) ScoredProps() []props.ScoredProp {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]props.ScoredProp, len(s.scored))
	copy(result, s.scored)
	return result
}
