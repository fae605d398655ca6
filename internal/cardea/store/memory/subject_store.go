package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cardea-access/cardea/internal/cardea/store"
	"github.com/cardea-access/cardea/internal/cardea/types"
)

type credential struct {
	kind      types.CredentialKind
	code      string
	subjectID string
}

type scheduleKey struct {
	subjectID string
	doorID    string
}

// SubjectStore is an in-memory SubjectStore for tests and dev. Credentials
// are kept in the clear here; hashing is the sqlite store's concern.
type SubjectStore struct {
	mu        sync.RWMutex
	subjects  map[string]types.Subject
	creds     []credential
	recurring map[scheduleKey][]store.RecurringWindow
	oneTime   map[scheduleKey][]store.OneTimeWindow

	// Err, when set, is returned by every method. Test hook for store
	// outages.
	Err error

	// ScheduleErr, when set, fails only HasActiveGuestSchedule. Test hook
	// for a schedule lookup failing after the subject resolved fine.
	ScheduleErr error

	// Delay, when set, is waited before answering (honoring ctx). Test
	// hook for lookup timeouts.
	Delay time.Duration
}

func NewSubjectStore() *SubjectStore {
	return &SubjectStore{
		subjects:  make(map[string]types.Subject),
		recurring: make(map[scheduleKey][]store.RecurringWindow),
		oneTime:   make(map[scheduleKey][]store.OneTimeWindow),
	}
}

func (s *SubjectStore) AddSubject(sub types.Subject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subjects[sub.ID] = sub
}

func (s *SubjectStore) AddCredential(subjectID string, kind types.CredentialKind, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = append(s.creds, credential{kind: kind, code: code, subjectID: subjectID})
}

func (s *SubjectStore) AddRecurring(subjectID, doorID string, w store.RecurringWindow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := scheduleKey{subjectID, doorID}
	s.recurring[k] = append(s.recurring[k], w)
}

func (s *SubjectStore) AddOneTime(subjectID, doorID string, w store.OneTimeWindow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := scheduleKey{subjectID, doorID}
	s.oneTime[k] = append(s.oneTime[k], w)
}

// stall simulates store latency while honoring the caller's deadline.
func (s *SubjectStore) stall(ctx context.Context) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SubjectStore) ResolveCredential(ctx context.Context, kind types.CredentialKind, code string) (types.Subject, error) {
	if err := s.stall(ctx); err != nil {
		return types.Subject{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.creds {
		if c.kind == kind && c.code == code {
			if sub, ok := s.subjects[c.subjectID]; ok {
				return sub, nil
			}
		}
	}
	return types.Subject{}, store.ErrNotFound
}

func (s *SubjectStore) SubjectByID(ctx context.Context, id string) (types.Subject, error) {
	if err := s.stall(ctx); err != nil {
		return types.Subject{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sub, ok := s.subjects[id]; ok {
		return sub, nil
	}
	return types.Subject{}, store.ErrNotFound
}

func (s *SubjectStore) HasActiveGuestSchedule(ctx context.Context, subjectID, doorID string, at time.Time) (bool, error) {
	if err := s.stall(ctx); err != nil {
		return false, err
	}
	if s.ScheduleErr != nil {
		return false, s.ScheduleErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	k := scheduleKey{subjectID, doorID}
	for _, w := range s.recurring[k] {
		if w.Covers(at) {
			return true, nil
		}
	}
	for _, w := range s.oneTime[k] {
		if w.Covers(at) {
			return true, nil
		}
	}
	return false, nil
}
