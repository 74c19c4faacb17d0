// Package redisstore implements fiber.Storage on top of go-redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/designspec/designspec-web/internal/config"
)

const opTimeout = 3 * time.Second

// Storage is a fiber.Storage backed by redis.
type Storage struct {
	client *redis.Client
	prefix string
}

// New connects to redis and verifies the connection.
func New(cfg config.Redis) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second, //nolint:mnd
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second) //nolint:mnd
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Storage{client: client, prefix: cfg.KeyPrefix}, nil
}

// Get returns nil, nil for unknown keys.
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	return val, nil
}

// Set stores val under key. Empty keys and values are ignored, exp 0 means no expiry.
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.client.Set(ctx, s.prefix+key, val, exp).Err() //nolint:wrapcheck
}

// Delete removes key.
func (s *Storage) Delete(key string) error {
	if key == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.client.Del(ctx, s.prefix+key).Err() //nolint:wrapcheck
}

// Reset removes every key under the prefix.
func (s *Storage) Reset() error {
	ctx := context.Background()

	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator() //nolint:mnd
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis del failed: %w", err)
		}
	}

	return iter.Err() //nolint:wrapcheck
}

// Close closes the client.
func (s *Storage) Close() error {
	return s.client.Close() //nolint:wrapcheck
}
