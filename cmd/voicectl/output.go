package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"voice-task-parser/internal/voice"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type taskOutput struct {
	Name            string `json:"name"                      yaml:"name"`
	Description     string `json:"description,omitempty"     yaml:"description,omitempty"`
	DueDate         string `json:"dueDate,omitempty"         yaml:"dueDate,omitempty"`
	DueTime         string `json:"dueTime,omitempty"         yaml:"dueTime,omitempty"`
	Duration        *int   `json:"duration,omitempty"        yaml:"duration,omitempty"`
	Priority        string `json:"priority"                  yaml:"priority"`
	Category        string `json:"category"                  yaml:"category"`
	ReminderMinutes *int   `json:"reminderMinutes,omitempty" yaml:"reminderMinutes,omitempty"`
	Source          string `json:"source"                    yaml:"source"`
}

func newTaskOutput(out voice.ParseTaskOutput) taskOutput {
	d := out.Task
	return taskOutput{
		Name:            d.Name,
		Description:     d.Description,
		DueDate:         d.DueDate,
		DueTime:         d.DueTime,
		Duration:        d.Duration,
		Priority:        string(d.Priority),
		Category:        string(d.Category),
		ReminderMinutes: d.ReminderMinutes,
		Source:          string(out.Source),
	}
}

type filterOutput struct {
	Priority    string `json:"priority,omitempty"    yaml:"priority,omitempty"`
	Category    string `json:"category,omitempty"    yaml:"category,omitempty"`
	SearchText  string `json:"searchText,omitempty"  yaml:"searchText,omitempty"`
	DueToday    bool   `json:"dueToday"              yaml:"dueToday"`
	DueTime     string `json:"dueTime,omitempty"     yaml:"dueTime,omitempty"`
	MaxDuration *int   `json:"maxDuration,omitempty" yaml:"maxDuration,omitempty"`
}

func newFilterOutput(f voice.FilterCriteria) filterOutput {
	return filterOutput{
		Priority:    string(f.Priority),
		Category:    string(f.Category),
		SearchText:  f.SearchText,
		DueToday:    f.DueToday,
		DueTime:     f.DueTime,
		MaxDuration: f.MaxDuration,
	}
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
