package spam

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Detector runs all four extractors against a content item and its
// author and aggregates the result. Every extractor is fail-open: an
// error or panic degrades that sub-score to 0 instead of failing the
// detection.
type Detector struct {
	dir     UserDirectory
	hist    ReportHistory
	counter ActivityCounter
}

func NewDetector(dir UserDirectory, hist ReportHistory, counter ActivityCounter) *Detector {
	return &Detector{dir: dir, hist: hist, counter: counter}
}

// Detect scores the content. It never returns an error; callers on the
// content-mutation path must not be blocked by detection failures.
func (d *Detector) Detect(ctx context.Context, content Content, contentType string, userID uuid.UUID) Result {
	var scores Scores
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		scores.Keyword = safeScore("keyword", func() (float64, error) {
			return KeywordScore(content), nil
		})
	}()
	go func() {
		defer wg.Done()
		scores.Pattern = safeScore("pattern", func() (float64, error) {
			return PatternScore(content), nil
		})
	}()
	go func() {
		defer wg.Done()
		scores.User = safeScore("user", func() (float64, error) {
			return UserScore(ctx, d.dir, d.hist, userID)
		})
	}()
	go func() {
		defer wg.Done()
		scores.Frequency = safeScore("frequency", func() (float64, error) {
			return FrequencyScore(ctx, d.counter, userID, contentType)
		})
	}()
	wg.Wait()

	return Aggregate(scores)
}

// safeScore runs one extractor, converting errors and panics into a
// zero contribution.
func safeScore(name string, fn func() (float64, error)) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("spam extractor panicked", "extractor", name, "panic", r)
			score = 0
		}
	}()

	score, err := fn()
	if err != nil {
		slog.Error("spam extractor failed", "extractor", name, "error", err)
		return 0
	}
	return clamp01(score)
}
