package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dorixona/pharmacy-api/internal/domain"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
	"github.com/dorixona/pharmacy-api/pkg/config"
)

var _ repository.SessionVault = (*Vault)(nil)

// keyPrefix namespaces the session record keys inside redis.
const keyPrefix = "dorixona:session:"

// Vault persists the session record on redis so it survives restarts,
// the server-side equivalent of the browser's local storage.
type Vault struct {
	client *redis.Client
}

// NewVault connects to redis and verifies the connection with a ping.
func NewVault(ctx context.Context, cfg config.RedisConfig) (*Vault, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Vault{client: client}, nil
}

// Get returns the value for key, or domain.ErrNotFound.
func (v *Vault) Get(ctx context.Context, key string) (string, error) {
	val, err := v.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// Set stores value under key without expiry; logout clears it.
func (v *Vault) Set(ctx context.Context, key, value string) error {
	if err := v.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Del removes the given keys.
func (v *Vault) Del(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}
	if err := v.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close releases the redis connection.
func (v *Vault) Close() error {
	return v.client.Close()
}
