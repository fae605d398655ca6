package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cardea-access/cardea/internal/cardea/store"
	"github.com/cardea-access/cardea/internal/cardea/types"
	"github.com/cardea-access/cardea/internal/db"
)

// openTestDB returns an in-memory SQLite connection with the same PRAGMAs
// and schema as production.  The connection is closed automatically when the
// test finishes.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// Each call gets a unique in-memory database.  The shared-cache URI
	// keeps the database alive for the lifetime of the connection pool
	// (important because sql.DB may close/reopen the underlying conn).
	dsn := fmt.Sprintf(
		"file:test_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)",
		t.Name(),
	)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("openTestDB: sql.Open: %v", err)
	}

	// Match production: single connection for SQLite safety.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := conn.Ping(); err != nil {
		conn.Close()
		t.Fatalf("openTestDB: ping: %v", err)
	}

	// Apply the same migrations as production.
	if err := db.Migrate(context.Background(), conn); err != nil {
		conn.Close()
		t.Fatalf("openTestDB: migrate: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// newTestWriter returns a db.Worker backed by conn.  The worker is closed
// automatically when the test finishes.
func newTestWriter(t *testing.T, conn *sql.DB) *db.Worker {
	t.Helper()

	w := db.NewWorker(conn)
	t.Cleanup(func() { w.Close() })
	return w
}

func insertDoor(t *testing.T, conn *sql.DB, doorID, apartmentID string) {
	t.Helper()
	_, err := conn.Exec(`
INSERT INTO doors(door_id, name, apartment_id, created_at_ms)
VALUES (?, '', ?, ?);`, doorID, apartmentID, time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("insertDoor: %v", err)
	}
}

func insertSubject(t *testing.T, conn *sql.DB, sub types.Subject) {
	t.Helper()
	active := 0
	if sub.Active {
		active = 1
	}
	now := time.Now().UnixMilli()
	_, err := conn.Exec(`
INSERT INTO subjects(subject_id, name, role, apartment_id, active, created_at_ms, updated_at_ms)
VALUES (?, ?, ?, ?, ?, ?, ?);`,
		sub.ID, sub.Name, string(sub.Role), sub.ApartmentID, active, now, now)
	if err != nil {
		t.Fatalf("insertSubject: %v", err)
	}
}

func insertCredential(t *testing.T, conn *sql.DB, subjectID string, kind types.CredentialKind, code string) {
	t.Helper()
	salt, err := store.GenerateSalt()
	if err != nil {
		t.Fatalf("insertCredential: salt: %v", err)
	}
	_, err = conn.Exec(`
INSERT INTO credentials(subject_id, kind, code_hash, salt, label, created_at_ms)
VALUES (?, ?, ?, ?, '', ?);`,
		subjectID, string(kind), store.HashSecret(salt, code), salt, time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("insertCredential: %v", err)
	}
}
