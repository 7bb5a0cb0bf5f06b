// Package cache holds the Redis-backed cache for the states listing.
// The cache is strictly best-effort: a missing or unreachable Redis never
// fails a request, it only means the listing is computed from the store.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const statesKey = "positions:states"

// StateCache caches the distinct-states listing. A nil *StateCache is
// valid and behaves as a permanent miss.
type StateCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

// NewStateCache connects to Redis using a redis:// URL. Connection
// problems surface lazily per command, not here.
func NewStateCache(redisURL string, ttl time.Duration, logger *logrus.Logger) (*StateCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	return &StateCache{
		client: redis.NewClient(opts),
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Get returns the cached states listing, or ok=false on miss or any
// Redis error.
func (c *StateCache) Get(ctx context.Context) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, statesKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).Warn("States cache read failed")
		}
		return nil, false
	}

	var states []string
	if err := json.Unmarshal(raw, &states); err != nil {
		c.logger.WithError(err).Warn("States cache entry corrupt, ignoring")
		return nil, false
	}

	return states, true
}

// Set stores the states listing. Failures are logged and swallowed.
func (c *StateCache) Set(ctx context.Context, states []string) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(states)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, statesKey, raw, c.ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("States cache write failed")
	}
}

// Invalidate drops the cached listing. Called after position or facility
// mutations that can change state availability.
func (c *StateCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, statesKey).Err(); err != nil {
		c.logger.WithError(err).Warn("States cache invalidation failed")
	}
}

// Close releases the underlying Redis connection
func (c *StateCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
