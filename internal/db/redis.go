package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisAddress is used when no address is configured.
const DefaultRedisAddress = "localhost:6379"

// ConnectRedis opens a client and pings the server.
func ConnectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		addr = DefaultRedisAddress
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

// Compile-time check that RedisBlobStore satisfies BlobStore.
var _ BlobStore = (*RedisBlobStore)(nil)

// RedisBlobStore stores each key as a plain string value with no expiry.
type RedisBlobStore struct {
	Client *redis.Client
}

// Load gets the value for key.
func (s *RedisBlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	if s.Client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}
	val, err := s.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrBlobNotFound
		}
		return nil, err
	}
	return val, nil
}

// Store sets the value for key.
func (s *RedisBlobStore) Store(ctx context.Context, key string, data []byte) error {
	if s.Client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return s.Client.Set(ctx, key, data, 0).Err()
}
