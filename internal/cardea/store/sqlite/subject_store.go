package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cardea-access/cardea/internal/cardea/store"
	"github.com/cardea-access/cardea/internal/cardea/types"
)

// SubjectStore resolves credentials and guest schedules from sqlite.
// Lookups are read-only and run on the shared single connection; writes go
// through the db worker elsewhere.
type SubjectStore struct {
	db *sql.DB
}

func NewSubjectStore(db *sql.DB) *SubjectStore {
	return &SubjectStore{db: db}
}

// ResolveCredential hashes the presented code against every stored
// credential of the same kind. Hashes are salted per credential, so this is
// a scan by design; fleets are small (tens of credentials per door).
func (s *SubjectStore) ResolveCredential(ctx context.Context, kind types.CredentialKind, code string) (types.Subject, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT c.code_hash, c.salt, s.subject_id, s.name, s.role, s.apartment_id, s.active
FROM credentials c
JOIN subjects s ON s.subject_id = c.subject_id
WHERE c.kind = ?;`, string(kind))
	if err != nil {
		return types.Subject{}, fmt.Errorf("ResolveCredential query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var hash, salt string
		var sub types.Subject
		var role string
		var active int
		if err := rows.Scan(&hash, &salt, &sub.ID, &sub.Name, &role, &sub.ApartmentID, &active); err != nil {
			return types.Subject{}, fmt.Errorf("ResolveCredential scan: %w", err)
		}
		if store.HashEqual(hash, salt, code) {
			sub.Role = types.Role(role)
			sub.Active = active == 1
			return sub, nil
		}
	}
	if err := rows.Err(); err != nil {
		return types.Subject{}, fmt.Errorf("ResolveCredential rows: %w", err)
	}
	return types.Subject{}, store.ErrNotFound
}

func (s *SubjectStore) SubjectByID(ctx context.Context, id string) (types.Subject, error) {
	var sub types.Subject
	var role string
	var active int
	err := s.db.QueryRowContext(ctx, `
SELECT subject_id, name, role, apartment_id, active
FROM subjects
WHERE subject_id = ?;`, id).Scan(&sub.ID, &sub.Name, &role, &sub.ApartmentID, &active)
	if err == sql.ErrNoRows {
		return types.Subject{}, store.ErrNotFound
	}
	if err != nil {
		return types.Subject{}, fmt.Errorf("SubjectByID query: %w", err)
	}
	sub.Role = types.Role(role)
	sub.Active = active == 1
	return sub, nil
}

// HasActiveGuestSchedule loads the subject's schedule rows for the door and
// evaluates them in Go against the shared window semantics, so sqlite and
// memory stores can never drift apart on interval edges.
func (s *SubjectStore) HasActiveGuestSchedule(ctx context.Context, subjectID, doorID string, at time.Time) (bool, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT weekday, start_minute, end_minute
FROM recurring_schedules
WHERE subject_id = ? AND door_id = ?;`, subjectID, doorID)
	if err != nil {
		return false, fmt.Errorf("HasActiveGuestSchedule recurring query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekday, start, end int
		if err := rows.Scan(&weekday, &start, &end); err != nil {
			return false, fmt.Errorf("HasActiveGuestSchedule recurring scan: %w", err)
		}
		w := store.RecurringWindow{
			Weekday: time.Weekday(weekday),
			Start:   store.TimeOfDay(start),
			End:     store.TimeOfDay(end),
		}
		if w.Covers(at) {
			return true, nil
		}
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("HasActiveGuestSchedule recurring rows: %w", err)
	}

	oneTime, err := s.db.QueryContext(ctx, `
SELECT start_date, end_date, start_minute, end_minute
FROM one_time_schedules
WHERE subject_id = ? AND door_id = ?;`, subjectID, doorID)
	if err != nil {
		return false, fmt.Errorf("HasActiveGuestSchedule one-time query: %w", err)
	}
	defer oneTime.Close()

	for oneTime.Next() {
		var startDate, endDate string
		var start, end int
		if err := oneTime.Scan(&startDate, &endDate, &start, &end); err != nil {
			return false, fmt.Errorf("HasActiveGuestSchedule one-time scan: %w", err)
		}
		sd, err := time.ParseInLocation("2006-01-02", startDate, at.Location())
		if err != nil {
			return false, fmt.Errorf("HasActiveGuestSchedule bad start_date %q: %w", startDate, err)
		}
		ed, err := time.ParseInLocation("2006-01-02", endDate, at.Location())
		if err != nil {
			return false, fmt.Errorf("HasActiveGuestSchedule bad end_date %q: %w", endDate, err)
		}
		w := store.OneTimeWindow{
			StartDate: sd,
			EndDate:   ed,
			Start:     store.TimeOfDay(start),
			End:       store.TimeOfDay(end),
		}
		if w.Covers(at) {
			return true, nil
		}
	}
	if err := oneTime.Err(); err != nil {
		return false, fmt.Errorf("HasActiveGuestSchedule one-time rows: %w", err)
	}

	return false, nil
}
