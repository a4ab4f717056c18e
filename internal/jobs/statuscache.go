package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// statusSetter is the subset of storage.RedisClient StatusCache needs.
type statusSetter interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// StatusCache best-effort mirrors a job's terminal status into Redis with a
// TTL equal to the registry's retention window. The registry itself remains
// the source of truth for status reads; nothing ever reads this cache back
// -- it exists purely so an external dashboard could poll Redis instead of
// this service's own HTTP surface without needing read access to the
// registry.
type StatusCache struct {
	client statusSetter
	ttl    time.Duration
	logger *slog.Logger
}

// NewStatusCache wraps a Redis-like client. A nil client yields a no-op
// cache.
func NewStatusCache(client statusSetter, ttl time.Duration) *StatusCache {
	return &StatusCache{client: client, ttl: ttl, logger: slog.Default().With("component", "status-cache")}
}

// SetTerminalStatus mirrors id's terminal status. Errors are logged, never
// propagated.
func (c *StatusCache) SetTerminalStatus(ctx context.Context, id string, status Status) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(status)
	if err != nil {
		c.logger.Warn("marshal status for cache failed", "id", id, "error", err)
		return
	}
	if err := c.client.Set(ctx, cacheKey(id), data, c.ttl); err != nil {
		c.logger.Warn("cache status failed", "id", id, "error", err)
	}
}

func cacheKey(id string) string {
	return "jobhub:status:" + id
}
