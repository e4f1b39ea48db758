// Package cache is a Redis read-through cache for catalog GET-by-ID
// responses. Writes invalidate; reads fall back to the store on any cache
// failure, so Redis being down never breaks a request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"voterguide/internal/platform/redis"
)

const defaultTTL = 5 * time.Minute

// Cache stores JSON-encoded records keyed by entity kind and ID. A nil
// *Cache is valid and caches nothing, so callers need no nil checks when
// Redis is not configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func New(client *redis.Client, logger *slog.Logger) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client, ttl: defaultTTL, logger: logger}
}

// Get unmarshals the cached record into dest and reports whether it was
// found.
func (c *Cache) Get(ctx context.Context, entity string, id uuid.UUID, dest any) bool {
	if c == nil {
		return false
	}
	payload, err := c.client.Get(ctx, key(entity, id)).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.logger.Warn("cache read failed", "entity", entity, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.logger.Warn("cache payload corrupt", "entity", entity, "error", err)
		return false
	}
	return true
}

// Set stores the record under its entity key.
func (c *Cache) Set(ctx context.Context, entity string, id uuid.UUID, value any) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache marshal failed", "entity", entity, "error", err)
		return
	}
	if err := c.client.Set(ctx, key(entity, id), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "entity", entity, "error", err)
	}
}

// Invalidate drops the cached record after a write.
func (c *Cache) Invalidate(ctx context.Context, entity string, id uuid.UUID) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, key(entity, id)).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", "entity", entity, "error", err)
	}
}

func key(entity string, id uuid.UUID) string {
	return fmt.Sprintf("catalog:%s:%s", entity, id)
}
