package actuator

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cardea-access/cardea/internal/hardware"
)

// State is the relay lifecycle state. There is at most one Active window
// system-wide; every transition goes through the Actuator's mutex.
type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// HardwareFault reports a failed relay write. It is distinct from a denial:
// it must reach the alarm path, and it never means the door unlocked.
type HardwareFault struct {
	Op  string // "unlock" | "relock"
	Err error
}

func (f *HardwareFault) Error() string {
	return fmt.Sprintf("hardware fault during %s: %v", f.Op, f.Err)
}

func (f *HardwareFault) Unwrap() error { return f.Err }

// Actuator converts allow decisions into relay behavior. The local scan loop
// and the remote gateway both call it concurrently; the mutex is the single
// point of serialized access to the relay state.
type Actuator struct {
	relay     hardware.Relay
	pulse     time.Duration
	maxWindow time.Duration
	logger    *slog.Logger

	// onFault, when set, receives faults raised by the background
	// auto-relock (which has no caller to return an error to).
	onFault func(error)

	mu          sync.Mutex
	state       State
	activatedAt time.Time
	releaseAt   time.Time
	timer       *time.Timer
}

// New builds an Actuator. pulse is the unlock duration per allow; maxWindow
// caps cumulative active time under repeated rapid triggers.
func New(relay hardware.Relay, pulse, maxWindow time.Duration, logger *slog.Logger) *Actuator {
	return &Actuator{
		relay:     relay,
		pulse:     pulse,
		maxWindow: maxWindow,
		logger:    logger,
	}
}

// SetFaultHandler routes faults from the auto-relock timer (e.g. to an MQTT
// alarm). Must be called before the actuator is in use.
func (a *Actuator) SetFaultHandler(fn func(error)) { a.onFault = fn }

// Unlock drives the relay for the configured pulse. While already Active it
// does not re-write the hardware output; it only extends the relock timer,
// never past activation time + maxWindow.
func (a *Actuator) Unlock() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := time.Now()

	if a.state == Active {
		release := now.Add(a.pulse)
		if capAt := a.activatedAt.Add(a.maxWindow); release.After(capAt) {
			release = capAt
		}
		if release.After(a.releaseAt) {
			a.releaseAt = release
			a.timer.Reset(time.Until(release))
			a.logger.Debug("unlock window extended", "release_at", release)
		}
		return nil
	}

	if err := a.relay.Set(hardware.High); err != nil {
		// Still Idle: the door did not open and must not be reported
		// as unlocked.
		return &HardwareFault{Op: "unlock", Err: err}
	}

	a.state = Active
	a.activatedAt = now
	a.releaseAt = now.Add(a.pulse)
	a.timer = time.AfterFunc(a.pulse, a.autoRelock)
	a.logger.Info("relay activated", "release_at", a.releaseAt)
	return nil
}

// Relock ends an Active window early. It is a no-op while Idle.
func (a *Actuator) Relock() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != Active {
		return nil
	}
	return a.relockLocked("relock")
}

// autoRelock runs on timer expiry. The window may have been extended after
// the timer fired but before the lock was acquired; in that case it
// reschedules instead of relocking.
func (a *Actuator) autoRelock() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != Active {
		return
	}
	if remaining := time.Until(a.releaseAt); remaining > 0 {
		a.timer.Reset(remaining)
		return
	}
	if err := a.relockLocked("relock"); err != nil {
		a.logger.Error("auto-relock failed", "error", err)
		if a.onFault != nil {
			a.onFault(err)
		}
	}
}

// relockLocked writes the relay low and returns to Idle. Callers hold a.mu.
// The state goes Idle even when the write fails so the next trigger retries
// from a clean slate; the fault itself travels the alarm path.
func (a *Actuator) relockLocked(op string) error {
	a.state = Idle
	if a.timer != nil {
		a.timer.Stop()
	}
	if err := a.relay.Set(hardware.Low); err != nil {
		return &HardwareFault{Op: op, Err: err}
	}
	a.logger.Info("relay released", "active_for", time.Since(a.activatedAt).Round(time.Millisecond))
	return nil
}

// State returns the current state and, while Active, the scheduled release
// time.
func (a *Actuator) State() (State, time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state, a.releaseAt
}

// Close forces the relay locked and stops the timer.
func (a *Actuator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == Active {
		return a.relockLocked("relock")
	}
	return nil
}
