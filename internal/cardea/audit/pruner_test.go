package audit_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/cardea-access/cardea/internal/cardea/audit"
	"github.com/cardea-access/cardea/internal/cardea/store/memory"
	"github.com/cardea-access/cardea/internal/cardea/types"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPruner_DisabledWhenRetentionZero(t *testing.T) {
	ds := memory.NewDecisionStore()
	pruner := audit.NewPruner(ds, audit.PrunerConfig{
		RetentionDays: 0,
		Interval:      time.Hour,
	}, silentLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pruner.Start(ctx)
	// Stop should return immediately without error.
	pruner.Stop()
}

func TestPruner_PrunesOldDecisionsOnStartup(t *testing.T) {
	ds := memory.NewDecisionStore()
	ctx := context.Background()

	old := types.Decision{ID: "dec-old", Reason: types.ReasonOK, DoorID: "d",
		DecidedAt: time.Now().UTC().AddDate(0, 0, -120)}
	recent := types.Decision{ID: "dec-new", Reason: types.ReasonOK, DoorID: "d",
		DecidedAt: time.Now().UTC().AddDate(0, 0, -1)}
	for _, d := range []types.Decision{old, recent} {
		if err := ds.RecordDecision(ctx, d); err != nil {
			t.Fatalf("RecordDecision: %v", err)
		}
	}

	pruner := audit.NewPruner(ds, audit.PrunerConfig{
		RetentionDays: 90,
		Interval:      time.Hour,
	}, silentLogger())
	pruner.Start(ctx)
	defer pruner.Stop()

	// The startup prune is asynchronous; give it a moment.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if len(ds.Decisions()) == 1 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	remaining := ds.Decisions()
	if len(remaining) != 1 {
		t.Fatalf("expected 1 decision to survive, got %d", len(remaining))
	}
	if remaining[0].ID != "dec-new" {
		t.Errorf("expected dec-new to survive, got %s", remaining[0].ID)
	}
}
