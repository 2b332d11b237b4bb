package usecase

import (
	"context"
	"strings"
	"time"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice"
	"voice-task-parser/internal/voice/schema"
)

// ParseFilter extracts filter criteria from a query utterance.
func (uc *implUseCase) ParseFilter(ctx context.Context, input voice.ParseFilterInput) (voice.ParseFilterOutput, error) {
	f := uc.parseFilter(ctx, strings.TrimSpace(input.Transcript), uc.now(input.Now))
	return voice.ParseFilterOutput{Filter: f}, nil
}

// ApplyFilter parses a query utterance and keeps the supplied tasks that
// match it, in their original order. An empty query keeps every task.
func (uc *implUseCase) ApplyFilter(ctx context.Context, input voice.ApplyFilterInput) (voice.ApplyFilterOutput, error) {
	now := uc.now(input.Now)
	f := uc.parseFilter(ctx, strings.TrimSpace(input.Transcript), now)
	today := uc.today(now)

	matched := make([]model.Task, 0, len(input.Tasks))
	for _, t := range input.Tasks {
		if f.Matches(t, today) {
			matched = append(matched, t)
		}
	}

	uc.l.Debug(ctx, "voice.usecase.ApplyFilter: filtered", "in", len(input.Tasks), "out", len(matched))
	return voice.ApplyFilterOutput{Filter: f, Tasks: matched}, nil
}

// parseFilter returns empty criteria for an empty transcript.
func (uc *implUseCase) parseFilter(ctx context.Context, transcript string, now time.Time) (out voice.FilterCriteria) {
	if transcript == "" {
		return voice.FilterCriteria{}
	}
	defer uc.recoverFilter(ctx, transcript, &out)

	valid, err := schema.ValidateFilter(uc.filter.Parse(transcript, now))
	if err != nil {
		uc.l.Warnf(ctx, "voice.usecase.ParseFilter: %v", err)
		return voice.FilterCriteria{SearchText: transcript}
	}
	return valid
}
