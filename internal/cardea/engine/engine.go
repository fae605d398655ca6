package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cardea-access/cardea/internal/cardea/store"
	"github.com/cardea-access/cardea/internal/cardea/types"
)

// Engine produces an AccessDecision for a decoded credential (local path) or
// a pre-resolved subject id (remote path). It owns no hardware: actuation is
// the caller's job, and only ever after an allowed decision.
//
// Every resolution failure (unknown credential, store error, lookup
// timeout) fails closed.
type Engine struct {
	subjects      store.SubjectStore
	audit         store.DecisionStore
	door          types.Door
	lookupTimeout time.Duration
	logger        *slog.Logger
}

func New(subjects store.SubjectStore, audit store.DecisionStore, door types.Door, lookupTimeout time.Duration, logger *slog.Logger) *Engine {
	return &Engine{
		subjects:      subjects,
		audit:         audit,
		door:          door,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// Door returns the door this engine decides for.
func (e *Engine) Door() types.Door { return e.door }

// DecideCredential resolves a scanned credential and authorizes its subject.
// The returned decision is always recorded to the audit sink, allow or deny.
func (e *Engine) DecideCredential(ctx context.Context, cred types.Credential) types.Decision {
	now := time.Now().UTC()

	rctx, cancel := context.WithTimeout(ctx, e.lookupTimeout)
	subject, err := e.subjects.ResolveCredential(rctx, cred.Kind, cred.Code)
	cancel()

	var d types.Decision
	switch {
	case errors.Is(err, store.ErrNotFound):
		d = e.newDecision(false, types.ReasonNoSubject, "", cred.Kind, now)
	case err != nil:
		e.logger.Error("credential resolution failed", "kind", cred.Kind, "error", err)
		d = e.newDecision(false, types.ReasonLookupFailed, "", cred.Kind, now)
	default:
		d = e.authorize(ctx, subject, cred.Kind, now)
	}

	e.record(ctx, d)
	return d
}

// DecideSubject authorizes a pre-authenticated remote request. The network
// layer has already verified the caller; only the resolved subject identity
// reaches the engine.
func (e *Engine) DecideSubject(ctx context.Context, subjectID, doorID string) types.Decision {
	now := time.Now().UTC()

	if doorID != e.door.ID {
		d := e.newDecision(false, types.ReasonUnknownDoor, subjectID, types.KindToken, now)
		e.record(ctx, d)
		return d
	}

	rctx, cancel := context.WithTimeout(ctx, e.lookupTimeout)
	subject, err := e.subjects.SubjectByID(rctx, subjectID)
	cancel()

	var d types.Decision
	switch {
	case errors.Is(err, store.ErrNotFound):
		d = e.newDecision(false, types.ReasonNoSubject, subjectID, types.KindToken, now)
	case err != nil:
		e.logger.Error("subject resolution failed", "subject_id", subjectID, "error", err)
		d = e.newDecision(false, types.ReasonLookupFailed, subjectID, types.KindToken, now)
	default:
		d = e.authorize(ctx, subject, types.KindToken, now)
	}

	e.record(ctx, d)
	return d
}

// authorize applies the role/permission matrix and guest schedule rules to a
// subject snapshot. Identical (snapshot, kind, now, schedule state) always
// yields an identical decision; it performs no actuation and no persistence.
func (e *Engine) authorize(ctx context.Context, subject types.Subject, kind types.CredentialKind, now time.Time) types.Decision {
	if !subject.Active {
		return e.newDecision(false, types.ReasonInactiveSubject, subject.ID, kind, now)
	}
	if !RoleHas(subject.Role, PermDoorUnlock) {
		return e.newDecision(false, types.ReasonInsufficientRole, subject.ID, kind, now)
	}

	switch subject.Role {
	case types.RoleAdmin:
		return e.newDecision(true, types.ReasonOK, subject.ID, kind, now)

	case types.RoleApartmentAdmin, types.RoleUser:
		// A shared entrance (no apartment scope) is everyone's door; a
		// scoped door must belong to the subject's apartment.
		if e.door.ApartmentID == "" || e.door.ApartmentID == subject.ApartmentID {
			return e.newDecision(true, types.ReasonOK, subject.ID, kind, now)
		}
		return e.newDecision(false, types.ReasonInsufficientRole, subject.ID, kind, now)

	case types.RoleGuest:
		sctx, cancel := context.WithTimeout(ctx, e.lookupTimeout)
		active, err := e.subjects.HasActiveGuestSchedule(sctx, subject.ID, e.door.ID, now)
		cancel()
		if err != nil {
			e.logger.Error("guest schedule lookup failed", "subject_id", subject.ID, "error", err)
			return e.newDecision(false, types.ReasonLookupFailed, subject.ID, kind, now)
		}
		if !active {
			return e.newDecision(false, types.ReasonOutsideSchedule, subject.ID, kind, now)
		}
		return e.newDecision(true, types.ReasonOK, subject.ID, kind, now)
	}

	return e.newDecision(false, types.ReasonInsufficientRole, subject.ID, kind, now)
}

func (e *Engine) newDecision(allowed bool, reason types.Reason, subjectID string, kind types.CredentialKind, now time.Time) types.Decision {
	return types.Decision{
		ID:             uuid.NewString(),
		Allowed:        allowed,
		Reason:         reason,
		SubjectID:      subjectID,
		CredentialKind: kind,
		DoorID:         e.door.ID,
		DecidedAt:      now,
	}
}

// record appends the decision to the audit sink. Errors are logged, not
// returned; a failed audit write must not block the decision path. The
// write gets the same time bound as store lookups so a wedged database
// cannot stall the caller.
func (e *Engine) record(ctx context.Context, d types.Decision) {
	wctx, cancel := context.WithTimeout(ctx, e.lookupTimeout)
	defer cancel()
	if err := e.audit.RecordDecision(wctx, d); err != nil {
		e.logger.Error("audit write failed", "decision_id", d.ID, "error", err)
	}
}
