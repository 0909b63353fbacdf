package spam

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMemoryRateTracker_RecordAndCount(t *testing.T) {
	tr := NewMemoryRateTracker()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		n, err := tr.RecordAndCount(ctx, "k", time.Hour)
		if err != nil {
			t.Fatalf("RecordAndCount failed: %v", err)
		}
		if n != int64(i) {
			t.Fatalf("after %d records count = %d", i, n)
		}
	}

	n, err := tr.CountWindow(ctx, "k", time.Hour)
	if err != nil {
		t.Fatalf("CountWindow failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("CountWindow = %d, want 3", n)
	}
}

func TestMemoryRateTracker_WindowExpiry(t *testing.T) {
	tr := NewMemoryRateTracker()
	ctx := context.Background()

	base := time.Now()
	tr.now = func() time.Time { return base }
	if _, err := tr.RecordAndCount(ctx, "k", time.Hour); err != nil {
		t.Fatalf("RecordAndCount failed: %v", err)
	}
	if _, err := tr.RecordAndCount(ctx, "k", time.Hour); err != nil {
		t.Fatalf("RecordAndCount failed: %v", err)
	}

	// Two hours later both events have aged out of the one-hour window.
	tr.now = func() time.Time { return base.Add(2 * time.Hour) }
	n, err := tr.CountWindow(ctx, "k", time.Hour)
	if err != nil {
		t.Fatalf("CountWindow failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("CountWindow = %d, want 0 after expiry", n)
	}
}

func TestMemoryRateTracker_KeysAreIndependent(t *testing.T) {
	tr := NewMemoryRateTracker()
	ctx := context.Background()

	if _, err := tr.RecordAndCount(ctx, "a", time.Hour); err != nil {
		t.Fatalf("RecordAndCount failed: %v", err)
	}
	n, err := tr.CountWindow(ctx, "b", time.Hour)
	if err != nil {
		t.Fatalf("CountWindow failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("key b saw key a's events: %d", n)
	}
}

func TestTrackedCounter_RoundTrip(t *testing.T) {
	counter := NewTrackedCounter(NewMemoryRateTracker())
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 4; i++ {
		if err := counter.Record(ctx, userID.String(), "property"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	n, err := counter.CountSince(ctx, userID, "property", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("CountSince failed: %v", err)
	}
	if n != 4 {
		t.Fatalf("CountSince = %d, want 4", n)
	}

	// A different content type shares nothing.
	n, err = counter.CountSince(ctx, userID, "booking", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("CountSince failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("CountSince = %d, want 0 for untracked type", n)
	}
}

func TestTrackedCounter_FutureSince(t *testing.T) {
	counter := NewTrackedCounter(NewMemoryRateTracker())
	n, err := counter.CountSince(context.Background(), uuid.New(), "property", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("CountSince failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("CountSince = %d, want 0 for a future cutoff", n)
	}
}
