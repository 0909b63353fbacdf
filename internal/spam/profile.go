package spam

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccountInfo is the read-only view of a user the risk extractor needs.
type AccountInfo struct {
	CreatedAt time.Time
	HasName   bool
	HasPhone  bool
	HasAvatar bool
}

// UserDirectory resolves an author to their account info. A nil result
// with nil error means the user does not exist.
type UserDirectory interface {
	Lookup(ctx context.Context, userID uuid.UUID) (*AccountInfo, error)
}

// ReportHistory counts confirmed reports against a user.
type ReportHistory interface {
	ConfirmedCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ActivityCounter counts how many items of a content type a user created
// since a point in time. Implementations may undercount recent writes;
// that only softens detection.
type ActivityCounter interface {
	CountSince(ctx context.Context, userID uuid.UUID, contentType string, since time.Time) (int64, error)
}

// trackedProfileFields is the number of profile fields considered for
// completeness (name, phone, avatar).
const trackedProfileFields = 3

// frequencyContentTypes are the content types the frequency extractor
// knows how to count. Anything else contributes 0.
var frequencyContentTypes = map[string]bool{
	"property": true,
	"booking":  true,
	"message":  true,
}

// UserScore computes account risk: young accounts, incomplete profiles
// and prior confirmed reports all raise it. Returns 0 if the user does
// not exist.
func UserScore(ctx context.Context, dir UserDirectory, hist ReportHistory, userID uuid.UUID) (float64, error) {
	info, err := dir.Lookup(ctx, userID)
	if err != nil {
		return 0, err
	}
	if info == nil {
		return 0, nil
	}

	var score float64
	age := time.Since(info.CreatedAt)
	switch {
	case age < 24*time.Hour:
		score += 0.30
	case age < 7*24*time.Hour:
		score += 0.15
	}

	missing := 0
	if !info.HasName {
		missing++
	}
	if !info.HasPhone {
		missing++
	}
	if !info.HasAvatar {
		missing++
	}
	score += float64(missing) / trackedProfileFields * 0.20

	confirmed, err := hist.ConfirmedCount(ctx, userID)
	if err != nil {
		return 0, err
	}
	reportRisk := float64(confirmed) * 0.20
	if reportRisk > 0.50 {
		reportRisk = 0.50
	}
	score += reportRisk

	return clamp01(score), nil
}

// FrequencyScore computes posting-frequency risk over the last hour and
// day. Unknown content types contribute 0.
func FrequencyScore(ctx context.Context, counter ActivityCounter, userID uuid.UUID, contentType string) (float64, error) {
	if !frequencyContentTypes[contentType] {
		return 0, nil
	}

	now := time.Now()
	hourly, err := counter.CountSince(ctx, userID, contentType, now.Add(-time.Hour))
	if err != nil {
		return 0, err
	}
	daily, err := counter.CountSince(ctx, userID, contentType, now.Add(-24*time.Hour))
	if err != nil {
		return 0, err
	}

	var score float64
	switch {
	case hourly > 5:
		score += 0.40
	case hourly > 3:
		score += 0.20
	}
	switch {
	case daily > 20:
		score += 0.30
	case daily > 10:
		score += 0.15
	}
	return clamp01(score), nil
}
