package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Limiter caps how many generation calls a user may issue per UTC day.
// Counters live in Redis so the cap survives restarts; a nil Limiter
// (quota disabled) allows everything.
type Limiter struct {
	rdb   *redis.Client
	limit int
}

func NewLimiter(rdb *redis.Client, limit int) *Limiter {
	if rdb == nil || limit <= 0 {
		return nil
	}
	return &Limiter{
		rdb:   rdb,
		limit: limit,
	}
}

func dailyKey(userId uuid.UUID, now time.Time) string {
	return fmt.Sprintf("gen_quota:%s:%s", userId, now.UTC().Format("2006-01-02"))
}

// Allow increments the user's daily counter and reports whether the call
// is still within the cap. The key expires two days out so stale counters
// clean themselves up.
func (l *Limiter) Allow(ctx context.Context, userId uuid.UUID) (bool, error) {
	if l == nil {
		return true, nil
	}

	key := dailyKey(userId, time.Now())

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("quota: incr %s: %w", key, err)
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, 48*time.Hour).Err(); err != nil {
			return false, fmt.Errorf("quota: expire %s: %w", key, err)
		}
	}

	return count <= int64(l.limit), nil
}
