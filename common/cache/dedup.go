package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wildcat/spartan/common/logger"
)

const keyPrefix = "spartan:photo:"

// Dedup is a best-effort Redis cache in front of the picture existence
// check. It only ever short-circuits work that the record store would also
// skip; any cache failure is logged and treated as a miss, so a broken
// cache degrades to extra database reads, never to data loss.
type Dedup struct {
	redis *redis.Client
	ttl   time.Duration
	log   *logger.Logger
}

// NewDedup creates a dedup cache. A nil redis client yields a disabled
// cache that reports every photo as unseen.
func NewDedup(redisClient *redis.Client, ttl time.Duration, log *logger.Logger) *Dedup {
	return &Dedup{
		redis: redisClient,
		ttl:   ttl,
		log:   log,
	}
}

// Seen reports whether the photo id was marked by a previous run.
func (d *Dedup) Seen(ctx context.Context, photoID string) bool {
	if d == nil || d.redis == nil {
		return false
	}

	_, err := d.redis.Get(ctx, keyPrefix+photoID).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		d.log.Warn("dedup cache read failed", "photo_id", photoID, "error", err)
		return false
	}

	return true
}

// Mark records that the photo id has been ingested. Failures are logged
// and ignored.
func (d *Dedup) Mark(ctx context.Context, photoID string) {
	if d == nil || d.redis == nil {
		return
	}

	if err := d.redis.Set(ctx, keyPrefix+photoID, "1", d.ttl).Err(); err != nil {
		d.log.Warn("dedup cache write failed", "photo_id", photoID, "error", err)
	}
}
