package hardware

import "sync"

// FakeRelay records level writes. Used by tests and by dev deployments that
// have no GPIO hardware attached.
type FakeRelay struct {
	mu         sync.Mutex
	level      Level
	writes     []Level
	failWrites bool
}

func NewFakeRelay() *FakeRelay {
	return &FakeRelay{}
}

// SetFailWrites makes every subsequent Set return ErrWrite. Test hook for
// the hardware-fault path; safe to flip while timers are running.
func (r *FakeRelay) SetFailWrites(fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failWrites = fail
}

func (r *FakeRelay) Set(level Level) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrites {
		return ErrWrite
	}
	r.level = level
	r.writes = append(r.writes, level)
	return nil
}

func (r *FakeRelay) Close() error { return nil }

// Level returns the last written level.
func (r *FakeRelay) Level() Level {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.level
}

// Writes returns a copy of every level written so far.
func (r *FakeRelay) Writes() []Level {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Level, len(r.writes))
	copy(out, r.writes)
	return out
}
