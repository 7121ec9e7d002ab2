// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package prefs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PreferenceTTL is how long an untouched session keeps its preferences
const PreferenceTTL = 30 * 24 * time.Hour

// RedisStore keeps preferences in Redis so they survive restarts
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redisURL and verifies the connection
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func prefKey(session, key string) string {
	return fmt.Sprintf("prefs:%s:%s", session, key)
}

func (s *RedisStore) Get(ctx context.Context, session, key string) (string, error) {
	v, err := s.client.Get(ctx, prefKey(session, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference: %w", err)
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, session, key, value string) error {
	if session == "" {
		return ErrNoSession
	}
	if err := s.client.Set(ctx, prefKey(session, key), value, PreferenceTTL).Err(); err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}
	return nil
}
