package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cardea-access/cardea/internal/cardea/store"
)

// SeedDevOptions configures the dev seeder.
type SeedDevOptions struct {
	DoorID          string
	DoorApartmentID string
}

// SeedDev inserts a starter door and a handful of subjects with known
// credentials so a fresh dev unit accepts input immediately:
//
//	admin "ada"    PIN 1234
//	user  "uwe"    PIN 4321, RFID 0012345678
//	guest "gabi"   PIN 9876 (no schedule rows: denied until one is added)
//
// Dev only; prod units are provisioned by the management tooling.
func SeedDev(ctx context.Context, db *sql.DB, opt SeedDevOptions) error {
	now := time.Now().UTC().UnixMilli()

	doorID := opt.DoorID
	if doorID == "" {
		doorID = "door-main"
	}

	if _, err := db.ExecContext(ctx, `
INSERT OR IGNORE INTO doors(door_id, name, apartment_id, created_at_ms)
VALUES (?, 'Main Entrance', ?, ?);`, doorID, opt.DoorApartmentID, now); err != nil {
		return fmt.Errorf("seed door: %w", err)
	}

	subjects := []struct {
		id, name, role, apartment string
	}{
		{"sub-ada", "ada", "admin", ""},
		{"sub-uwe", "uwe", "user", opt.DoorApartmentID},
		{"sub-gabi", "gabi", "guest", opt.DoorApartmentID},
	}
	for _, s := range subjects {
		if _, err := db.ExecContext(ctx, `
INSERT OR IGNORE INTO subjects(subject_id, name, role, apartment_id, active, created_at_ms, updated_at_ms)
VALUES (?, ?, ?, ?, 1, ?, ?);`, s.id, s.name, s.role, s.apartment, now, now); err != nil {
			return fmt.Errorf("seed subject %s: %w", s.id, err)
		}
	}

	creds := []struct {
		subjectID, kind, code, label string
	}{
		{"sub-ada", "PIN", "1234", "dev admin pin"},
		{"sub-uwe", "PIN", "4321", "dev user pin"},
		{"sub-uwe", "RFID", "0012345678", "dev user fob"},
		{"sub-gabi", "PIN", "9876", "dev guest pin"},
	}
	for _, c := range creds {
		var n int
		err := db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM credentials WHERE subject_id = ? AND kind = ? AND label = ?;`,
			c.subjectID, c.kind, c.label).Scan(&n)
		if err != nil {
			return fmt.Errorf("seed credential check %s: %w", c.label, err)
		}
		if n > 0 {
			continue
		}

		salt, err := store.GenerateSalt()
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `
INSERT INTO credentials(subject_id, kind, code_hash, salt, label, created_at_ms)
VALUES (?, ?, ?, ?, ?, ?);`,
			c.subjectID, c.kind, store.HashSecret(salt, c.code), salt, c.label, now); err != nil {
			return fmt.Errorf("seed credential %s: %w", c.label, err)
		}
	}

	return nil
}
