// AngelaMos | 2026
// cache.go

package views

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "view:"

// Invalidator drops cached views after a committed write. It never fails
// the caller; problems are logged.
type Invalidator interface {
	Invalidate(ctx context.Context, topic Topic, params Params)
}

type CacheRecorder interface {
	RecordCacheLookup(view string, hit bool)
	RecordInvalidation(topic string, err error)
}

// Cache stores rendered projections in one Redis hash per route. Hash
// fields are the concrete entry: an id, a normalized query or a caller
// variant.
type Cache struct {
	rdb      *redis.Client
	ttl      time.Duration
	recorder CacheRecorder
}

func NewCache(rdb *redis.Client, ttl time.Duration, recorder CacheRecorder) *Cache {
	return &Cache{rdb: rdb, ttl: ttl, recorder: recorder}
}

func Key(route string) string {
	return keyPrefix + route
}

func (c *Cache) Get(
	ctx context.Context,
	route, field string,
) ([]byte, bool) {
	payload, err := c.rdb.HGet(ctx, Key(route), field).Bytes()
	hit := err == nil

	if err != nil && !errors.Is(err, redis.Nil) {
		slog.WarnContext(ctx, "view cache read failed",
			"route", route,
			"error", err,
		)
	}

	if c.recorder != nil {
		c.recorder.RecordCacheLookup(route, hit)
	}

	return payload, hit
}

func (c *Cache) Set(
	ctx context.Context,
	route, field string,
	payload []byte,
) {
	key := Key(route)

	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, field, payload)
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	if err != nil {
		slog.WarnContext(ctx, "view cache write failed",
			"route", route,
			"error", err,
		)
	}
}

func (c *Cache) Invalidate(ctx context.Context, topic Topic, params Params) {
	err := c.invalidate(ctx, topic, params)
	if err != nil {
		slog.WarnContext(ctx, "view invalidation failed",
			"topic", topic,
			"error", err,
		)
	}

	if c.recorder != nil {
		c.recorder.RecordInvalidation(string(topic), err)
	}
}

func (c *Cache) invalidate(ctx context.Context, topic Topic, params Params) error {
	deps := Dependents(topic)
	if len(deps) == 0 {
		return fmt.Errorf("invalidate %s: unknown topic", topic)
	}

	_, err := c.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, dep := range deps {
			key := Key(dep.Route)
			if value := params[dep.Param]; dep.Param != "" && value != "" {
				pipe.HDel(ctx, key, value)
				continue
			}
			pipe.Del(ctx, key)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate %s: %w", topic, err)
	}

	return nil
}
