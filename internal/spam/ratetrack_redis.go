package spam

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisRateTracker is a RateTracker over a Redis sorted set per key,
// scored by event timestamp. Works across multiple backend instances.
type RedisRateTracker struct {
	client *redis.Client
	prefix string
}

func NewRedisRateTracker(client *redis.Client) *RedisRateTracker {
	return &RedisRateTracker{client: client, prefix: "ratetrack:"}
}

func (t *RedisRateTracker) RecordAndCount(ctx context.Context, key string, window time.Duration) (int64, error) {
	now := time.Now()
	redisKey := t.prefix + key
	cutoff := strconv.FormatInt(now.Add(-window).UnixNano(), 10)

	pipe := t.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", cutoff)
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: strconv.FormatInt(now.UnixNano(), 10),
	})
	card := pipe.ZCard(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return card.Val(), nil
}

func (t *RedisRateTracker) CountWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := t.prefix + key
	cutoff := strconv.FormatInt(time.Now().Add(-window).UnixNano(), 10)
	return t.client.ZCount(ctx, redisKey, cutoff, "+inf").Result()
}

// TrackedCounter adapts a RateTracker into an ActivityCounter keyed by
// user and content type. Record must be called by the submission gate
// for counts to accumulate.
type TrackedCounter struct {
	tracker RateTracker
}

func NewTrackedCounter(tracker RateTracker) *TrackedCounter {
	return &TrackedCounter{tracker: tracker}
}

func activityKey(userID, contentType string) string {
	return "activity:" + userID + ":" + contentType
}

// Record notes one content submission for the user.
func (c *TrackedCounter) Record(ctx context.Context, userID, contentType string) error {
	_, err := c.tracker.RecordAndCount(ctx, activityKey(userID, contentType), 24*time.Hour)
	return err
}

func (c *TrackedCounter) CountSince(ctx context.Context, userID uuid.UUID, contentType string, since time.Time) (int64, error) {
	window := time.Since(since)
	if window <= 0 {
		return 0, nil
	}
	return c.tracker.CountWindow(ctx, activityKey(userID.String(), contentType), window)
}
