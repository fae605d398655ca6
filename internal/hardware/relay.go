package hardware

import "errors"

// Level is the logical relay drive level. High energizes the lock release;
// the physical pin polarity is an implementation concern (active-low wiring
// is common on cheap relay boards).
type Level int

const (
	Low Level = iota
	High
)

func (l Level) String() string {
	if l == High {
		return "high"
	}
	return "low"
}

// ErrWrite marks a failed hardware write. Callers must treat it as a
// hardware fault, never as a denial.
var ErrWrite = errors.New("hardware: relay write failed")

// Relay is the single output the controller drives. Writes are synchronous
// and expected to complete immediately.
type Relay interface {
	Set(level Level) error
	Close() error
}
