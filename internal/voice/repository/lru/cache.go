package lru

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-task-parser/internal/voice"
	"voice-task-parser/internal/voice/repository"
)

const (
	DefaultSize = 1024
	DefaultTTL  = 10 * time.Minute
)

type implCache struct {
	entries *expirable.LRU[string, voice.TaskDraft]
}

// New creates an in-process ResultCache holding at most size entries, each
// evicted ttl after it was written.
func New(size int, ttl time.Duration) repository.ResultCache {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implCache{entries: expirable.NewLRU[string, voice.TaskDraft](size, nil, ttl)}
}

func (c *implCache) Get(ctx context.Context, key string) (voice.TaskDraft, bool, error) {
	d, ok := c.entries.Get(key)
	if !ok {
		return voice.TaskDraft{}, false, nil
	}
	return clone(d), true, nil
}

func (c *implCache) Set(ctx context.Context, key string, draft voice.TaskDraft) error {
	c.entries.Add(key, clone(draft))
	return nil
}

// clone copies the optional integers so callers cannot mutate a cached entry.
func clone(d voice.TaskDraft) voice.TaskDraft {
	if d.Duration != nil {
		d.Duration = voice.IntPtr(*d.Duration)
	}
	if d.ReminderMinutes != nil {
		d.ReminderMinutes = voice.IntPtr(*d.ReminderMinutes)
	}
	return d
}
