package actuator_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/cardea-access/cardea/internal/cardea/actuator"
	"github.com/cardea-access/cardea/internal/hardware"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// waitForState polls until the actuator reaches want or the deadline hits.
// Timer-driven transitions need real elapsed time, so pulses in these tests
// are tens of milliseconds.
func waitForState(t *testing.T, a *actuator.Actuator, want actuator.State, within time.Duration) {
	t.Helper()
	deadline := time.Now().Add(within)
	for time.Now().Before(deadline) {
		if st, _ := a.State(); st == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	st, _ := a.State()
	t.Fatalf("state %s not reached within %s (still %s)", want, within, st)
}

func TestUnlock_PulsesHighThenAutoRelocks(t *testing.T) {
	relay := hardware.NewFakeRelay()
	a := actuator.New(relay, 30*time.Millisecond, 200*time.Millisecond, discardLogger())
	defer a.Close()

	if err := a.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if st, _ := a.State(); st != actuator.Active {
		t.Fatalf("expected Active after unlock, got %s", st)
	}
	if relay.Level() != hardware.High {
		t.Fatal("expected relay high while active")
	}

	waitForState(t, a, actuator.Idle, time.Second)
	if relay.Level() != hardware.Low {
		t.Error("expected relay low after auto-relock")
	}
	writes := relay.Writes()
	if len(writes) != 2 || writes[0] != hardware.High || writes[1] != hardware.Low {
		t.Errorf("expected exactly [high low], got %v", writes)
	}
}

func TestUnlock_WhileActive_ExtendsWithoutRewriting(t *testing.T) {
	relay := hardware.NewFakeRelay()
	a := actuator.New(relay, 50*time.Millisecond, 500*time.Millisecond, discardLogger())
	defer a.Close()

	if err := a.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	_, firstRelease := a.State()

	time.Sleep(20 * time.Millisecond)
	if err := a.Unlock(); err != nil {
		t.Fatalf("second Unlock: %v", err)
	}
	_, secondRelease := a.State()

	if !secondRelease.After(firstRelease) {
		t.Error("expected the unlock window to extend")
	}
	if got := len(relay.Writes()); got != 1 {
		t.Errorf("expected a single hardware write while active, got %d", got)
	}
}

func TestUnlock_ExtensionIsCappedAtMaxWindow(t *testing.T) {
	relay := hardware.NewFakeRelay()
	pulse := 40 * time.Millisecond
	maxWindow := 60 * time.Millisecond
	a := actuator.New(relay, pulse, maxWindow, discardLogger())
	defer a.Close()

	if err := a.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	start := time.Now()

	// Hammer the trigger inside the window; it must still close by
	// maxWindow after the first activation.
	for i := 0; i < 4; i++ {
		time.Sleep(10 * time.Millisecond)
		if err := a.Unlock(); err != nil {
			t.Fatalf("Unlock #%d: %v", i, err)
		}
	}

	waitForState(t, a, actuator.Idle, time.Second)
	active := time.Since(start)
	// Generous slack for timer scheduling; the invariant is that repeated
	// triggers cannot hold the door open indefinitely.
	if active > maxWindow+150*time.Millisecond {
		t.Errorf("window stayed open %s, cap was %s", active, maxWindow)
	}
}

func TestUnlock_WriteFailure_StaysIdleAndReportsFault(t *testing.T) {
	relay := hardware.NewFakeRelay()
	relay.SetFailWrites(true)
	a := actuator.New(relay, 30*time.Millisecond, 200*time.Millisecond, discardLogger())
	defer a.Close()

	err := a.Unlock()
	if err == nil {
		t.Fatal("expected a fault when the relay write fails")
	}
	var fault *actuator.HardwareFault
	if !errors.As(err, &fault) {
		t.Fatalf("expected *HardwareFault, got %T", err)
	}
	if fault.Op != "unlock" {
		t.Errorf("expected op=unlock, got %q", fault.Op)
	}
	if !errors.Is(err, hardware.ErrWrite) {
		t.Error("expected fault to wrap the relay error")
	}
	if st, _ := a.State(); st != actuator.Idle {
		t.Errorf("expected Idle after failed unlock, got %s", st)
	}
}

func TestAutoRelock_WriteFailure_ReachesFaultHandler(t *testing.T) {
	relay := hardware.NewFakeRelay()
	a := actuator.New(relay, 20*time.Millisecond, 200*time.Millisecond, discardLogger())
	defer a.Close()

	faults := make(chan error, 1)
	a.SetFaultHandler(func(err error) { faults <- err })

	if err := a.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	relay.SetFailWrites(true)

	select {
	case err := <-faults:
		var fault *actuator.HardwareFault
		if !errors.As(err, &fault) {
			t.Fatalf("expected *HardwareFault, got %T", err)
		}
		if fault.Op != "relock" {
			t.Errorf("expected op=relock, got %q", fault.Op)
		}
	case <-time.After(time.Second):
		t.Fatal("fault never reached the handler")
	}

	// Idle even though the low write failed: the next trigger retries.
	if st, _ := a.State(); st != actuator.Idle {
		t.Errorf("expected Idle after failed relock, got %s", st)
	}
}

func TestRelock_EndsWindowEarly(t *testing.T) {
	relay := hardware.NewFakeRelay()
	a := actuator.New(relay, time.Minute, 2*time.Minute, discardLogger())
	defer a.Close()

	if err := a.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if err := a.Relock(); err != nil {
		t.Fatalf("Relock: %v", err)
	}
	if st, _ := a.State(); st != actuator.Idle {
		t.Errorf("expected Idle after relock, got %s", st)
	}
	if relay.Level() != hardware.Low {
		t.Error("expected relay low after relock")
	}
}

func TestRelock_WhileIdle_IsNoOp(t *testing.T) {
	relay := hardware.NewFakeRelay()
	a := actuator.New(relay, 30*time.Millisecond, 200*time.Millisecond, discardLogger())
	defer a.Close()

	if err := a.Relock(); err != nil {
		t.Fatalf("Relock on idle actuator: %v", err)
	}
	if got := len(relay.Writes()); got != 0 {
		t.Errorf("expected no hardware writes, got %d", got)
	}
}

func TestClose_ForcesRelayLow(t *testing.T) {
	relay := hardware.NewFakeRelay()
	a := actuator.New(relay, time.Minute, 2*time.Minute, discardLogger())

	if err := a.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if relay.Level() != hardware.Low {
		t.Error("expected relay low after close")
	}
}
