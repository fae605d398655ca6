package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbpkg "github.com/cardea-access/cardea/internal/db"

	"github.com/cardea-access/cardea/internal/cardea/types"
)

// DecisionStore persists access decisions append-only. Writes are funneled
// through the db worker so the scan loop, the gateway and the pruner never
// contend on the single sqlite connection.
type DecisionStore struct {
	db     *sql.DB
	writer *dbpkg.Worker
}

func NewDecisionStore(db *sql.DB, writer *dbpkg.Worker) *DecisionStore {
	return &DecisionStore{db: db, writer: writer}
}

func (s *DecisionStore) RecordDecision(ctx context.Context, d types.Decision) error {
	if d.DecidedAt.IsZero() {
		d.DecidedAt = time.Now().UTC()
	}

	var allowed int
	if d.Allowed {
		allowed = 1
	}

	var subjectID any
	if d.SubjectID != "" {
		subjectID = d.SubjectID
	}
	var kind any
	if d.CredentialKind != "" {
		kind = string(d.CredentialKind)
	}

	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO access_decisions(
  decision_id, allowed, reason, subject_id, credential_kind, door_id, decided_at_ms
) VALUES (?, ?, ?, ?, ?, ?, ?);`,
			d.ID, allowed, string(d.Reason), subjectID, kind, d.DoorID,
			d.DecidedAt.UTC().UnixMilli(),
		); err != nil {
			return fmt.Errorf("RecordDecision insert: %w", err)
		}
		return nil
	})
}

// PruneOlderThan deletes decisions decided before cutoff. Returns the number
// of rows deleted. Uses idx_decisions_time for an efficient range scan.
func (s *DecisionStore) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	cutoffMs := cutoff.UTC().UnixMilli()

	var deleted int64
	err := s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
DELETE FROM access_decisions
WHERE decided_at_ms < ?;`, cutoffMs)
		if err != nil {
			return fmt.Errorf("PruneOlderThan: %w", err)
		}
		deleted, _ = res.RowsAffected()
		return nil
	})
	return deleted, err
}
