package decoder

import (
	"time"

	"github.com/cardea-access/cardea/internal/cardea/types"
)

// EventKind is the type of a raw input event.
type EventKind int

const (
	// EventDigit is a single keystroke or burst character from a reader.
	EventDigit EventKind = iota
	// EventSubmit finalizes the current entry (ENTER on a keypad, end of
	// a reader burst).
	EventSubmit
	// EventCancel discards the current entry ('*' / '#' on a keypad, or a
	// device disconnect).
	EventCancel
)

// Event is one raw input event from a physical reader. Reader identifies
// the device; entries from different readers never share a buffer.
type Event struct {
	Reader string
	Kind   EventKind
	Digit  rune // populated for EventDigit
	At     time.Time
}

// session is the collection state for a single reader.
// Idle is represented by collecting == false.
type session struct {
	collecting bool
	buf        []rune
	startedAt  time.Time
	lastAt     time.Time
}

func (s *session) reset() {
	s.collecting = false
	s.buf = s.buf[:0]
}

// Decoder turns raw reader events into at most one Credential per completed
// entry. It keeps an independent session per reader and delegates the
// PIN-vs-RFID call to a Classifier.
//
// Decoder is not safe for concurrent use; the scan loop that owns it is
// single-threaded by design.
type Decoder struct {
	classifier Classifier
	maxLen     int
	timeout    time.Duration
	sessions   map[string]*session
}

// New builds a Decoder. maxLen bounds the entry buffer; timeout is the
// inactivity window after which a partial entry is considered stale.
func New(classifier Classifier, maxLen int, timeout time.Duration) *Decoder {
	return &Decoder{
		classifier: classifier,
		maxLen:     maxLen,
		timeout:    timeout,
		sessions:   make(map[string]*session),
	}
}

// Feed processes one event. It returns a non-nil Credential exactly when an
// entry was finalized, or a *DecodeError when the entry was malformed. In
// every case the reader's session is left in a consistent state and the next
// event starts fresh where required.
func (d *Decoder) Feed(ev Event) (*types.Credential, error) {
	s := d.sessions[ev.Reader]
	if s == nil {
		s = &session{}
		d.sessions[ev.Reader] = s
	}

	// A stale partial entry must never merge with a later scan: if the
	// gap since the previous event exceeds the inactivity timeout, the
	// old buffer is discarded before this event is considered.
	if s.collecting && ev.At.Sub(s.lastAt) > d.timeout {
		s.reset()
	}

	switch ev.Kind {
	case EventDigit:
		if ev.Digit < '0' || ev.Digit > '9' {
			s.reset()
			return nil, &DecodeError{Reader: ev.Reader, Cause: CauseNonDigit}
		}
		if !s.collecting {
			s.collecting = true
			s.startedAt = ev.At
		}
		if len(s.buf) >= d.maxLen {
			s.reset()
			return nil, &DecodeError{Reader: ev.Reader, Cause: CauseOverflow}
		}
		s.buf = append(s.buf, ev.Digit)
		s.lastAt = ev.At
		return nil, nil

	case EventSubmit:
		if !s.collecting || len(s.buf) == 0 {
			// Submit with nothing collected is a no-op.
			s.reset()
			return nil, nil
		}
		code := string(s.buf)
		span := s.lastAt.Sub(s.startedAt)
		s.reset()

		kind, normalized, err := d.classifier.Classify(code, span)
		if err != nil {
			return nil, &DecodeError{Reader: ev.Reader, Cause: CauseBadFraming, Detail: err.Error()}
		}
		return &types.Credential{
			Kind:       kind,
			Code:       normalized,
			ReceivedAt: ev.At,
		}, nil

	case EventCancel:
		s.reset()
		return nil, nil
	}

	return nil, nil
}

// ExpireBefore discards any session whose last activity is older than the
// inactivity timeout relative to now. The scan loop calls this between
// events so a reader left mid-entry returns to Idle even with no further
// input from it.
func (d *Decoder) ExpireBefore(now time.Time) {
	for _, s := range d.sessions {
		if s.collecting && now.Sub(s.lastAt) > d.timeout {
			s.reset()
		}
	}
}

// Collecting reports whether the given reader currently has a partial entry.
func (d *Decoder) Collecting(reader string) bool {
	s := d.sessions[reader]
	return s != nil && s.collecting
}
