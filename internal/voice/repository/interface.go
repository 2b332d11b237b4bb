package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"voice-task-parser/internal/voice"
)

// ResultCache stores remote extraction results so that repeating the same
// utterance on the same day does not call the hosted model again.
type ResultCache interface {
	Get(ctx context.Context, key string) (voice.TaskDraft, bool, error)
	Set(ctx context.Context, key string, draft voice.TaskDraft) error
}

// CacheKey derives the cache key for transcript on day (YYYY-MM-DD). The
// result of a relative phrase like "tomorrow" depends on the day it was said.
func CacheKey(transcript, day string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(transcript)) + "\x00" + day))
	return hex.EncodeToString(sum[:])
}
