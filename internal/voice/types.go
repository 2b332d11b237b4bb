package voice

import (
	"strings"
	"time"

	"voice-task-parser/internal/model"
)

// TaskDraft is the structured record extracted from a task utterance.
// Optional integers are pointers so that an explicit zero ("no reminder")
// stays distinguishable from an absent field.
type TaskDraft struct {
	Name            string         `json:"name"                      validate:"required,max=100"`
	Description     string         `json:"description,omitempty"`
	DueDate         string         `json:"dueDate,omitempty"         validate:"omitempty,datetime=2006-01-02"`
	DueTime         string         `json:"dueTime,omitempty"         validate:"omitempty,hhmm"`
	Duration        *int           `json:"duration,omitempty"        validate:"omitempty,gte=0"`
	Priority        model.Priority `json:"priority"                  validate:"required,oneof=low medium high"`
	Category        model.Category `json:"category"                  validate:"required,oneof=work personal urgent other"`
	ReminderMinutes *int           `json:"reminderMinutes,omitempty" validate:"omitempty,gte=0"`
}

// DefaultTaskDraft is the all-defaults record returned when extraction or
// validation cannot produce anything better.
func DefaultTaskDraft() TaskDraft {
	return TaskDraft{
		Priority: model.PriorityMedium,
		Category: model.CategoryOther,
	}
}

// FilterCriteria is the structured record extracted from a query utterance.
// Unlike TaskDraft, priority and category stay empty when no cue is present.
type FilterCriteria struct {
	Priority    model.Priority `json:"priority,omitempty"    validate:"omitempty,oneof=low medium high"`
	Category    model.Category `json:"category,omitempty"    validate:"omitempty,oneof=work personal urgent other"`
	SearchText  string         `json:"searchText,omitempty"`
	DueToday    bool           `json:"dueToday"`
	DueTime     string         `json:"dueTime,omitempty"     validate:"omitempty,hhmm"`
	MaxDuration *int           `json:"maxDuration,omitempty" validate:"omitempty,gte=0"`
}

// IsEmpty reports whether no criterion is set. DueToday=false does not count.
func (f FilterCriteria) IsEmpty() bool {
	return f.Priority == "" &&
		f.Category == "" &&
		f.SearchText == "" &&
		!f.DueToday &&
		f.DueTime == "" &&
		f.MaxDuration == nil
}

// Matches reports whether task satisfies every criterion that is set.
// today is the caller's current date as YYYY-MM-DD. Criteria referring to a
// field the task does not carry are not applied.
func (f FilterCriteria) Matches(task model.Task, today string) bool {
	if f.Priority != "" && task.Priority != f.Priority {
		return false
	}
	if f.Category != "" && task.Category != f.Category {
		return false
	}
	if f.SearchText != "" {
		needle := strings.ToLower(f.SearchText)
		if !strings.Contains(strings.ToLower(task.Name), needle) &&
			!strings.Contains(strings.ToLower(task.Description), needle) {
			return false
		}
	}
	if f.DueToday && task.DueDate != "" && task.DueDate != today {
		return false
	}
	if f.DueTime != "" && task.DueTime != "" && task.DueTime != f.DueTime {
		return false
	}
	if f.MaxDuration != nil && task.Duration > 0 && task.Duration > *f.MaxDuration {
		return false
	}
	return true
}

// --- UseCase Inputs ---
// Now is the reference instant relative phrases resolve against. The zero
// value means the current time.

type ParseTaskInput struct {
	Transcript string
	Now        time.Time
}

type ParseFilterInput struct {
	Transcript string
	Now        time.Time
}

type ApplyFilterInput struct {
	Transcript string
	Tasks      []model.Task
	Now        time.Time
}

// --- UseCase Outputs ---

// Source tells which producer built a result.
type Source string

const (
	SourceLocal    Source = "local"
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

type ParseTaskOutput struct {
	Task   TaskDraft
	Source Source
}

type ParseFilterOutput struct {
	Filter FilterCriteria
}

type ApplyFilterOutput struct {
	Filter FilterCriteria
	Tasks  []model.Task
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
