package store

import (
	"context"
	"errors"
	"time"

	"github.com/cardea-access/cardea/internal/cardea/types"
)

// ErrNotFound is returned when a credential or subject does not resolve.
// Any other error from a store means the store itself failed and callers
// must fail closed.
var ErrNotFound = errors.New("store: not found")

// SubjectStore resolves credentials and subjects and answers guest-schedule
// queries. Implementations must honor ctx deadlines: the decision engine
// calls with a bounded timeout and treats expiry as a lookup failure.
type SubjectStore interface {
	// ResolveCredential maps a presented code of the given kind to its
	// subject. Returns ErrNotFound when no credential matches.
	ResolveCredential(ctx context.Context, kind types.CredentialKind, code string) (types.Subject, error)

	// SubjectByID returns the subject snapshot for a pre-authenticated
	// remote request. Returns ErrNotFound for unknown ids.
	SubjectByID(ctx context.Context, id string) (types.Subject, error)

	// HasActiveGuestSchedule reports whether any schedule row for
	// (subject, door) covers the instant at.
	HasActiveGuestSchedule(ctx context.Context, subjectID, doorID string, at time.Time) (bool, error)
}

// DecisionStore persists decisions as an append-only audit log.
type DecisionStore interface {
	RecordDecision(ctx context.Context, d types.Decision) error

	// PruneOlderThan deletes audit rows decided before cutoff and returns
	// the number of rows removed.
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
