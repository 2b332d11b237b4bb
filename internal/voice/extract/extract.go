// Package extract turns a transcribed task utterance into a voice.TaskDraft
// with rule-based extractors. Every extractor is a pure function of the
// normalized text; the reference time is passed in explicitly.
package extract

import (
	"time"

	"voice-task-parser/internal/voice"
	"voice-task-parser/pkg/datemath"
)

// Task normalizes raw and runs every field extractor over it.
func Task(raw string, now time.Time, dates *datemath.Parser) voice.TaskDraft {
	text := Normalize(raw)
	if text == "" {
		return voice.DefaultTaskDraft()
	}

	due := ResolveDueDateTime(text, now, dates)
	name := ExtractName(text)

	return voice.TaskDraft{
		Name:            name,
		Description:     ExtractDescription(text, name),
		DueDate:         due.Date,
		DueTime:         due.Time,
		Duration:        ExtractDuration(text),
		Priority:        ExtractPriority(text),
		Category:        ExtractCategory(text),
		ReminderMinutes: ExtractReminder(text),
	}
}
