package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cardea-access/cardea/internal/cardea/types"
)

// DecisionStore is an in-memory append-only audit log for tests and dev.
type DecisionStore struct {
	mu        sync.Mutex
	decisions []types.Decision

	// Err, when set, is returned by RecordDecision. Test hook for a
	// failing audit sink.
	Err error

	// Delay, when set, is waited before writing (honoring ctx). Test
	// hook for a wedged audit sink.
	Delay time.Duration
}

func NewDecisionStore() *DecisionStore {
	return &DecisionStore{}
}

func (s *DecisionStore) RecordDecision(ctx context.Context, d types.Decision) error {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.decisions = append(s.decisions, d)
	return nil
}

func (s *DecisionStore) PruneOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	kept := s.decisions[:0]
	var deleted int64
	for _, d := range s.decisions {
		if d.DecidedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, d)
	}
	s.decisions = kept
	return deleted, nil
}

// Decisions returns a copy of all recorded decisions. Test-only helper.
func (s *DecisionStore) Decisions() []types.Decision {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Decision, len(s.decisions))
	copy(out, s.decisions)
	return out
}
