package listener

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/cardea-access/cardea/internal/cardea/actuator"
	"github.com/cardea-access/cardea/internal/cardea/decoder"
	"github.com/cardea-access/cardea/internal/cardea/engine"
	"github.com/cardea-access/cardea/internal/cardea/types"
)

// Source yields raw reader events. Next blocks until an event arrives, the
// context is cancelled, or the device disconnects (io.EOF).
type Source interface {
	Next(ctx context.Context) (decoder.Event, error)
}

// Notifier receives decisions and hardware faults for the event/alarm path.
// Implementations must not block.
type Notifier interface {
	Decision(d types.Decision)
	Fault(err error)
}

// Listener is the local scan loop: one goroutine that fully processes each
// raw event, from decoding through actuation, before reading the next.
// Local scans are therefore strictly serialized; only the remote gateway
// races with it, and only inside the actuator.
type Listener struct {
	source   Source
	dec      *decoder.Decoder
	eng      *engine.Engine
	act      *actuator.Actuator
	notifier Notifier // optional
	logger   *slog.Logger
}

func New(source Source, dec *decoder.Decoder, eng *engine.Engine, act *actuator.Actuator, notifier Notifier, logger *slog.Logger) *Listener {
	return &Listener{
		source:   source,
		dec:      dec,
		eng:      eng,
		act:      act,
		notifier: notifier,
		logger:   logger,
	}
}

// Run processes events until ctx is cancelled or the source closes. No
// outcome takes the loop down: decode errors, denials and hardware faults
// all leave it ready for the next event.
func (l *Listener) Run(ctx context.Context) error {
	for {
		ev, err := l.source.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.logger.Info("input source closed")
				return nil
			}
			return err
		}

		// Sweep sessions on every event so a reader abandoned
		// mid-entry returns to Idle even if it never speaks again.
		l.dec.ExpireBefore(time.Now())

		cred, err := l.dec.Feed(ev)
		if err != nil {
			var de *decoder.DecodeError
			if errors.As(err, &de) {
				l.logger.Warn("input discarded", "reader", de.Reader, "cause", de.Cause)
				continue
			}
			l.logger.Error("decoder error", "error", err)
			continue
		}
		if cred == nil {
			continue
		}

		l.handle(ctx, *cred)
	}
}

func (l *Listener) handle(ctx context.Context, cred types.Credential) {
	d := l.eng.DecideCredential(ctx, cred)

	if !d.Allowed {
		if l.notifier != nil {
			l.notifier.Decision(d)
		}
		l.logger.Info("access denied",
			"reason", d.Reason, "kind", d.CredentialKind, "subject_id", d.SubjectID)
		return
	}

	l.logger.Info("access granted", "kind", d.CredentialKind, "subject_id", d.SubjectID)

	// Energize the relay before publishing anything. The alarm path is
	// observability; it must never delay the door.
	actErr := l.act.Unlock()
	if l.notifier != nil {
		l.notifier.Decision(d)
	}
	if actErr != nil {
		// A failed write is not a denial: it already went through an
		// allowed decision. Raise the alarm and keep the loop alive.
		l.logger.Error("relay actuation failed", "error", actErr)
		if l.notifier != nil {
			l.notifier.Fault(actErr)
		}
	}
}
