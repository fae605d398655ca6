package decoder

import "fmt"

// DecodeError cause categories.
const (
	CauseOverflow   = "overflow"
	CauseNonDigit   = "non_digit"
	CauseBadFraming = "bad_framing"
)

// DecodeError reports malformed raw input. The reader's session has already
// been reset to Idle when this is returned; nothing was emitted.
type DecodeError struct {
	Reader string
	Cause  string
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("decode %s on reader %q: %s", e.Cause, e.Reader, e.Detail)
	}
	return fmt.Sprintf("decode %s on reader %q", e.Cause, e.Reader)
}
