package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/cardea-access/cardea/internal/cardea/store"
)

// Pruner periodically deletes audit decisions older than a configurable
// retention period. It runs as a background goroutine and is safe to stop
// via its context or the Stop method.
//
// A retention of 0 disables pruning entirely.
type Pruner struct {
	store     store.DecisionStore
	retention time.Duration
	interval  time.Duration
	logger    *slog.Logger
	cancel    context.CancelFunc
	done      chan struct{}
}

// PrunerConfig holds the parameters for NewPruner.
type PrunerConfig struct {
	// RetentionDays is how many days of decisions to keep. 0 means keep
	// everything (the pruner will not start).
	RetentionDays int

	// Interval is how often the pruner runs. Defaults to 6 hours.
	Interval time.Duration
}

// NewPruner creates a pruner but does not start it. Call Start to begin the
// background loop.
func NewPruner(s store.DecisionStore, cfg PrunerConfig, logger *slog.Logger) *Pruner {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 6 * time.Hour
	}

	return &Pruner{
		store:     s,
		retention: time.Duration(cfg.RetentionDays) * 24 * time.Hour,
		interval:  interval,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Start begins the background pruning loop. It runs an immediate prune on
// startup, then repeats on the configured interval. The loop exits when ctx
// is cancelled or Stop is called.
func (p *Pruner) Start(ctx context.Context) {
	if p.retention <= 0 {
		p.logger.Info("audit pruner disabled", "retention_days", 0)
		close(p.done)
		return
	}

	ctx, p.cancel = context.WithCancel(ctx)

	go p.loop(ctx)

	p.logger.Info("audit pruner started",
		"retention_days", int(p.retention.Hours()/24), "interval", p.interval)
}

// Stop signals the pruner to exit and waits for it to finish.
func (p *Pruner) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	<-p.done
}

func (p *Pruner) loop(ctx context.Context) {
	defer close(p.done)

	// Run immediately on startup to clean up any backlog.
	p.prune(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.prune(ctx)
		}
	}
}

func (p *Pruner) prune(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-p.retention)
	deleted, err := p.store.PruneOlderThan(ctx, cutoff)
	if err != nil {
		p.logger.Error("audit prune failed", "error", err)
		return
	}
	if deleted > 0 {
		p.logger.Info("audit prune", "deleted", deleted, "cutoff", cutoff.Format(time.RFC3339))
	}
}
