package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"voice-task-parser/internal/voice"
	"voice-task-parser/internal/voice/repository"
)

const (
	keyPrefix  = "voice:task:"
	DefaultTTL = 10 * time.Minute
)

type implCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a ResultCache shared between instances through Redis.
func New(client *redis.Client, ttl time.Duration) repository.ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implCache{client: client, ttl: ttl}
}

// Connect opens a client for addr and checks it with PING.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

func (c *implCache) Get(ctx context.Context, key string) (voice.TaskDraft, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return voice.TaskDraft{}, false, nil
	}
	if err != nil {
		return voice.TaskDraft{}, false, fmt.Errorf("redis get: %w", err)
	}

	var d voice.TaskDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		return voice.TaskDraft{}, false, fmt.Errorf("redis decode: %w", err)
	}
	return d, true, nil
}

func (c *implCache) Set(ctx context.Context, key string, draft voice.TaskDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("redis encode: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
