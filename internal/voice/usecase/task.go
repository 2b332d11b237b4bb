package usecase

import (
	"context"
	"strings"

	"voice-task-parser/internal/voice"
	"voice-task-parser/internal/voice/extract"
	"voice-task-parser/internal/voice/repository"
	"voice-task-parser/internal/voice/schema"
)

// ParseTask extracts a task draft with the local heuristic extractors. An
// empty transcript yields the all-defaults record.
func (uc *implUseCase) ParseTask(ctx context.Context, input voice.ParseTaskInput) (out voice.ParseTaskOutput, err error) {
	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		return voice.ParseTaskOutput{Task: voice.DefaultTaskDraft(), Source: voice.SourceFallback}, nil
	}
	defer uc.recoverTask(ctx, transcript, &out, &err)

	draft := extract.Task(transcript, uc.now(input.Now), uc.dateMath)

	valid, verr := schema.ValidateTask(draft)
	if verr != nil {
		uc.l.Warnf(ctx, "voice.usecase.ParseTask: %v", verr)
		valid.Name = transcriptName(transcript)
		return voice.ParseTaskOutput{Task: valid, Source: voice.SourceFallback}, nil
	}

	uc.l.Debug(ctx, "voice.usecase.ParseTask: parsed",
		"name", valid.Name,
		"due_date", valid.DueDate,
		"due_time", valid.DueTime,
		"priority", string(valid.Priority),
	)
	return voice.ParseTaskOutput{Task: valid, Source: voice.SourceLocal}, nil
}

// ParseTaskRemote extracts a task draft through the hosted model. Every
// remote failure, and an empty transcript, resolves to the all-defaults
// record.
func (uc *implUseCase) ParseTaskRemote(ctx context.Context, input voice.ParseTaskInput) (out voice.ParseTaskOutput, err error) {
	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		return voice.ParseTaskOutput{Task: voice.DefaultTaskDraft(), Source: voice.SourceFallback}, nil
	}
	defer uc.recoverTask(ctx, transcript, &out, &err)

	if !uc.remote.Enabled() {
		uc.l.Warnf(ctx, "voice.usecase.ParseTaskRemote: remote extraction not configured")
		return voice.ParseTaskOutput{Task: voice.DefaultTaskDraft(), Source: voice.SourceFallback}, nil
	}

	now := uc.now(input.Now)
	key := repository.CacheKey(transcript, uc.today(now))

	if uc.cache != nil {
		cached, ok, cerr := uc.cache.Get(ctx, key)
		if cerr != nil {
			uc.l.Warnf(ctx, "voice.usecase.ParseTaskRemote: cache get: %v", cerr)
		}
		if ok {
			uc.l.Debug(ctx, "voice.usecase.ParseTaskRemote: cache hit", "key", key)
			return voice.ParseTaskOutput{Task: cached, Source: voice.SourceRemote}, nil
		}
	}

	draft, rerr := uc.remote.ExtractTask(ctx, transcript, now)
	if rerr != nil {
		uc.l.Warnf(ctx, "voice.usecase.ParseTaskRemote: falling back to defaults: %v", rerr)
		return voice.ParseTaskOutput{Task: voice.DefaultTaskDraft(), Source: voice.SourceFallback}, nil
	}

	if uc.cache != nil {
		if cerr := uc.cache.Set(ctx, key, draft); cerr != nil {
			uc.l.Warnf(ctx, "voice.usecase.ParseTaskRemote: cache set: %v", cerr)
		}
	}
	return voice.ParseTaskOutput{Task: draft, Source: voice.SourceRemote}, nil
}
