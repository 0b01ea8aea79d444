// Package cache provides the Redis-backed profile cache.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rently/internal/domain/entity"
	"rently/internal/domain/service"
	"rently/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const profileKeyPrefix = "rently:account:"

// redisProfileCache stores account profiles as JSON documents with a fixed TTL.
type redisProfileCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func newRedisProfileCache(client redis.Cmdable, ttl time.Duration) *redisProfileCache {
	return &redisProfileCache{client: client, ttl: ttl}
}

func profileKey(id uuid.UUID) string {
	return fmt.Sprintf("%s%s", profileKeyPrefix, id.String())
}

// Get returns nil, nil on a cache miss.
func (c *redisProfileCache) Get(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	data, err := c.client.Get(ctx, profileKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "redis get profile")
	}

	var cached cachedAccount
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, errors.Wrap(err, "decode cached profile")
	}

	return cached.toEntity(), nil
}

// Set stores the account without its password hash.
func (c *redisProfileCache) Set(ctx context.Context, account *entity.Account) error {
	data, err := json.Marshal(newCachedAccount(account))
	if err != nil {
		return errors.Wrap(err, "encode profile")
	}

	return errors.Wrap(c.client.Set(ctx, profileKey(account.ID), data, c.ttl).Err(), "redis set profile")
}

func (c *redisProfileCache) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.Wrap(c.client.Del(ctx, profileKey(id)).Err(), "redis delete profile")
}

// noopProfileCache always misses. It is used when Redis is not configured.
type noopProfileCache struct{}

func (noopProfileCache) Get(context.Context, uuid.UUID) (*entity.Account, error) { return nil, nil }
func (noopProfileCache) Set(context.Context, *entity.Account) error            { return nil }
func (noopProfileCache) Delete(context.Context, uuid.UUID) error               { return nil }

var (
	_ service.ProfileCache = (*redisProfileCache)(nil)
	_ service.ProfileCache = noopProfileCache{}
)
