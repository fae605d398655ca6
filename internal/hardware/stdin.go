package hardware

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"

	"github.com/cardea-access/cardea/internal/cardea/decoder"
)

// StdinSource adapts a byte stream (a keyboard-mode reader, or a terminal in
// dev) into decoder events. Digits become digit events, newline submits,
// '*' and '#' cancel. Timestamps are taken at read time, which is what the
// timing classifier measures against.
type StdinSource struct {
	reader    string
	events    chan decoder.Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewStdinSource starts reading from r immediately. readerID names the
// physical device for session separation.
func NewStdinSource(r io.Reader, readerID string) *StdinSource {
	s := &StdinSource{
		reader: readerID,
		events: make(chan decoder.Event, 64),
		done:   make(chan struct{}),
	}
	go s.pump(r)
	return s
}

// Close releases the pump goroutine. The underlying reader may still be
// blocked in a read, but no event will be delivered after Close and the
// goroutine exits on its next send attempt.
func (s *StdinSource) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

// send delivers ev unless the source has been closed. Reports whether the
// pump should keep running.
func (s *StdinSource) send(ev decoder.Event) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.done:
		return false
	}
}

func (s *StdinSource) pump(r io.Reader) {
	defer close(s.events)
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err != nil {
			// Device gone: discard any partial entry downstream.
			s.send(decoder.Event{Reader: s.reader, Kind: decoder.EventCancel, At: time.Now()})
			return
		}
		now := time.Now()
		var ok bool
		switch {
		case b >= '0' && b <= '9':
			ok = s.send(decoder.Event{Reader: s.reader, Kind: decoder.EventDigit, Digit: rune(b), At: now})
		case b == '\n' || b == '\r':
			ok = s.send(decoder.Event{Reader: s.reader, Kind: decoder.EventSubmit, At: now})
		case b == '*' || b == '#':
			ok = s.send(decoder.Event{Reader: s.reader, Kind: decoder.EventCancel, At: now})
		case b == ' ' || b == '\t':
			ok = true // ignore
		default:
			// Anything else is a malformed keystroke; let the decoder
			// report it as a decode error.
			ok = s.send(decoder.Event{Reader: s.reader, Kind: decoder.EventDigit, Digit: rune(b), At: now})
		}
		if !ok {
			return
		}
	}
}

// Next returns the next raw event. It returns io.EOF once the underlying
// stream has closed and all buffered events were consumed.
func (s *StdinSource) Next(ctx context.Context) (decoder.Event, error) {
	select {
	case <-ctx.Done():
		return decoder.Event{}, ctx.Err()
	case ev, ok := <-s.events:
		if !ok {
			return decoder.Event{}, io.EOF
		}
		return ev, nil
	}
}
