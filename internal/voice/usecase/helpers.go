package usecase

import (
	"context"
	"runtime/debug"
	"strings"
	"time"
	"unicode/utf8"

	"voice-task-parser/internal/voice"
	"voice-task-parser/internal/voice/extract"
	"voice-task-parser/pkg/datemath"
)

// now returns the reference instant for an input.
func (uc *implUseCase) now(t time.Time) time.Time {
	if t.IsZero() {
		return uc.clock()
	}
	return t
}

// today is the calendar day of t in the reference location.
func (uc *implUseCase) today(t time.Time) string {
	return uc.dateMath.Now(t).Format(datemath.DateFormat)
}

// transcriptName turns the raw transcript into a name that passes
// validation, for the paths that fall back to "name is what was said".
func transcriptName(transcript string) string {
	name := strings.Join(strings.Fields(transcript), " ")
	if utf8.RuneCountInString(name) <= extract.MaxNameLen {
		return name
	}
	return strings.TrimSpace(string([]rune(name)[:extract.MaxNameLen]))
}

// recoverTask is the outer safety net of the task entry points: a panic in
// any extractor yields {name: transcript}.
func (uc *implUseCase) recoverTask(ctx context.Context, transcript string, out *voice.ParseTaskOutput, err *error) {
	if r := recover(); r != nil {
		uc.l.Errorf(ctx, "voice.usecase: panic while parsing task: %v\n%s", r, debug.Stack())
		d := voice.DefaultTaskDraft()
		d.Name = transcriptName(transcript)
		*out = voice.ParseTaskOutput{Task: d, Source: voice.SourceFallback}
		*err = nil
	}
}

// recoverFilter is the filter counterpart of recoverTask: {searchText: transcript}.
func (uc *implUseCase) recoverFilter(ctx context.Context, transcript string, out *voice.FilterCriteria) {
	if r := recover(); r != nil {
		uc.l.Errorf(ctx, "voice.usecase: panic while parsing filter: %v\n%s", r, debug.Stack())
		*out = voice.FilterCriteria{SearchText: transcript}
	}
}
