package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice"
	"voice-task-parser/internal/voice/extract"
	"voice-task-parser/pkg/datemath"
)

// Alternate spellings seen in model output, first match wins.
var (
	nameKeys        = []string{"name", "taskName", "task_name", "title", "task"}
	descriptionKeys = []string{"description", "desc", "details", "notes"}
	dueDateKeys     = []string{"dueDate", "due_date", "date"}
	dueTimeKeys     = []string{"dueTime", "due_time", "time"}
	durationKeys    = []string{"duration", "durationMinutes", "duration_minutes"}
	priorityKeys    = []string{"priority"}
	categoryKeys    = []string{"category"}
	reminderKeys    = []string{"reminderMinutes", "reminder_minutes", "reminder", "reminderBefore"}
)

var (
	firstIntRe   = regexp.MustCompile(`\d+`)
	hourAfterRe  = regexp.MustCompile(`(?i)^\d+\s*(?:hours?|hrs?)\b`)
	slashDateRe  = regexp.MustCompile(`^(\d{4})[/.](\d{1,2})[/.](\d{1,2})$`)
	dashedDateRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
)

// CoerceTask builds a draft from a loosely typed object, accepting alternate
// key spellings and string-or-number integers. It fails when a present value
// cannot be coerced.
func CoerceTask(raw map[string]any) (voice.TaskDraft, error) {
	d := voice.TaskDraft{}

	var err error
	if d.Name, err = stringField(raw, nameKeys); err != nil {
		return voice.DefaultTaskDraft(), err
	}
	if d.Description, err = stringField(raw, descriptionKeys); err != nil {
		return voice.DefaultTaskDraft(), err
	}

	date, err := stringField(raw, dueDateKeys)
	if err != nil {
		return voice.DefaultTaskDraft(), err
	}
	d.DueDate = coerceDate(date)

	clock, err := stringField(raw, dueTimeKeys)
	if err != nil {
		return voice.DefaultTaskDraft(), err
	}
	d.DueTime = coerceClock(clock)

	if d.Duration, err = minutesField(raw, durationKeys); err != nil {
		return voice.DefaultTaskDraft(), err
	}
	if d.ReminderMinutes, err = minutesField(raw, reminderKeys); err != nil {
		return voice.DefaultTaskDraft(), err
	}

	priority, err := stringField(raw, priorityKeys)
	if err != nil {
		return voice.DefaultTaskDraft(), err
	}
	d.Priority = model.Priority(strings.ToLower(priority))

	category, err := stringField(raw, categoryKeys)
	if err != nil {
		return voice.DefaultTaskDraft(), err
	}
	d.Category = model.Category(strings.ToLower(category))

	return d, nil
}

// DecodeTask coerces then validates raw. Any failure yields the all-defaults
// record together with the error.
func DecodeTask(raw map[string]any) (voice.TaskDraft, error) {
	d, err := CoerceTask(raw)
	if err != nil {
		return voice.DefaultTaskDraft(), err
	}
	return ValidateTask(d)
}

func lookup(raw map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(raw map[string]any, keys []string) (string, error) {
	v, ok := lookup(raw, keys)
	if !ok {
		return "", nil
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), nil
	case float64, int, json.Number:
		return fmt.Sprint(t), nil
	}
	return "", fmt.Errorf("%w: %s has type %T", ErrCoerce, keys[0], v)
}

func minutesField(raw map[string]any, keys []string) (*int, error) {
	v, ok := lookup(raw, keys)
	if !ok {
		return nil, nil
	}
	n, err := coerceMinutes(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCoerce, keys[0], err)
	}
	return n, nil
}

// maxMinutes bounds numeric durations and reminders.
const maxMinutes = math.MaxInt32

// coerceMinutes accepts numbers and prose such as "10 minutes before" or
// "1 hour". The first integer token is used; an hour unit right after it
// multiplies by 60. Blank strings count as absent.
func coerceMinutes(v any) (*int, error) {
	switch t := v.(type) {
	case float64:
		if t < 0 || t > maxMinutes || t != math.Trunc(t) {
			return nil, fmt.Errorf("not a non-negative integer: %v", t)
		}
		n := int(t)
		return &n, nil
	case int:
		if t < 0 || t > maxMinutes {
			return nil, fmt.Errorf("out of range: %d", t)
		}
		return &t, nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			if i < 0 || i > maxMinutes {
				return nil, fmt.Errorf("out of range: %d", i)
			}
			n := int(i)
			return &n, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %v", t, err)
		}
		return coerceMinutes(f)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, nil
		}
		loc := firstIntRe.FindStringIndex(s)
		if loc == nil {
			return nil, fmt.Errorf("no integer in %q", s)
		}
		if loc[0] > 0 && s[loc[0]-1] == '-' {
			return nil, fmt.Errorf("negative: %q", s)
		}
		n, err := strconv.Atoi(s[loc[0]:loc[1]])
		if err != nil {
			return nil, err
		}
		if hourAfterRe.MatchString(s[loc[0]:]) {
			n *= 60
		}
		return &n, nil
	}
	return nil, fmt.Errorf("unsupported type %T", v)
}

// coerceDate normalizes common date spellings to YYYY-MM-DD. Values it does
// not recognise are returned unchanged and left to validation.
func coerceDate(s string) string {
	if s == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(datemath.DateFormat)
	}
	for _, re := range []*regexp.Regexp{dashedDateRe, slashDateRe} {
		if m := re.FindStringSubmatch(s); m != nil {
			y, _ := strconv.Atoi(m[1])
			mo, _ := strconv.Atoi(m[2])
			day, _ := strconv.Atoi(m[3])
			return fmt.Sprintf("%04d-%02d-%02d", y, mo, day)
		}
	}
	return s
}

// coerceClock normalizes "5 pm", "9:05" or an RFC 3339 timestamp to HH:MM.
// Unrecognised values are returned unchanged.
func coerceClock(s string) string {
	if s == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(datemath.ClockFormat)
	}
	if len(s) == len("15:04:05") {
		if t, err := time.Parse("15:04:05", s); err == nil {
			return t.Format(datemath.ClockFormat)
		}
	}
	if c, ok := extract.ClockTime(s); ok {
		return c
	}
	return s
}
