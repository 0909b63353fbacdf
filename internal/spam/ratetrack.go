package spam

import (
	"context"
	"sync"
	"time"
)

// RateTracker tracks recent activity per key over sliding windows. It
// backs the frequency extractor so tests do not need real time to pass.
type RateTracker interface {
	// RecordAndCount records one event for key now and returns the
	// number of events within the window, including this one.
	RecordAndCount(ctx context.Context, key string, window time.Duration) (int64, error)
	// CountWindow returns the number of events within the window
	// without recording a new one.
	CountWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// MemoryRateTracker is an in-process RateTracker. Suitable for tests and
// single-instance deployments.
type MemoryRateTracker struct {
	mu     sync.Mutex
	events map[string][]time.Time
	now    func() time.Time
}

func NewMemoryRateTracker() *MemoryRateTracker {
	return &MemoryRateTracker{
		events: make(map[string][]time.Time),
		now:    time.Now,
	}
}

func (t *MemoryRateTracker) RecordAndCount(_ context.Context, key string, window time.Duration) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	kept := t.prune(key, now.Add(-window))
	kept = append(kept, now)
	t.events[key] = kept
	return int64(len(kept)), nil
}

func (t *MemoryRateTracker) CountWindow(_ context.Context, key string, window time.Duration) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	kept := t.prune(key, t.now().Add(-window))
	t.events[key] = kept
	return int64(len(kept)), nil
}

// prune drops events older than cutoff. Caller holds the lock.
func (t *MemoryRateTracker) prune(key string, cutoff time.Time) []time.Time {
	all := t.events[key]
	kept := all[:0]
	for _, ts := range all {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}
