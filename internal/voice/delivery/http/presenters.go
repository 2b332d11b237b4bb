package http

import (
	"fmt"
	"time"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice"
)

// --- Request DTOs ---

type transcriptReq struct {
	Transcript string `json:"transcript" binding:"required,max=2000"`
	// Now is the caller's current instant (RFC 3339). Defaults to server time.
	Now string `json:"now"`
}

func (r transcriptReq) validate() error {
	_, err := r.now()
	return err
}

func (r transcriptReq) now() (time.Time, error) {
	if r.Now == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, r.Now)
	if err != nil {
		return time.Time{}, fmt.Errorf("now must be RFC 3339: %w", err)
	}
	return t, nil
}

func (r transcriptReq) toTaskInput() voice.ParseTaskInput {
	now, _ := r.now()
	return voice.ParseTaskInput{Transcript: r.Transcript, Now: now}
}

func (r transcriptReq) toFilterInput() voice.ParseFilterInput {
	now, _ := r.now()
	return voice.ParseFilterInput{Transcript: r.Transcript, Now: now}
}

// ---

type applyFilterReq struct {
	transcriptReq
	Tasks []model.Task `json:"tasks" binding:"max=1000"`
}

func (r applyFilterReq) toInput() voice.ApplyFilterInput {
	now, _ := r.now()
	return voice.ApplyFilterInput{Transcript: r.Transcript, Tasks: r.Tasks, Now: now}
}

// --- Response DTOs ---

type taskResp struct {
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DueDate         string `json:"dueDate,omitempty"`
	DueTime         string `json:"dueTime,omitempty"`
	Duration        *int   `json:"duration,omitempty"`
	Priority        string `json:"priority"`
	Category        string `json:"category"`
	ReminderMinutes *int   `json:"reminderMinutes,omitempty"`
}

func newTaskResp(d voice.TaskDraft) taskResp {
	return taskResp{
		Name:            d.Name,
		Description:     d.Description,
		DueDate:         d.DueDate,
		DueTime:         d.DueTime,
		Duration:        d.Duration,
		Priority:        string(d.Priority),
		Category:        string(d.Category),
		ReminderMinutes: d.ReminderMinutes,
	}
}

type parseTaskResp struct {
	Task   taskResp `json:"task"`
	Source string   `json:"source"`
}

func (h *handler) newParseTaskResp(out voice.ParseTaskOutput) parseTaskResp {
	return parseTaskResp{Task: newTaskResp(out.Task), Source: string(out.Source)}
}

type filterResp struct {
	Priority    string `json:"priority,omitempty"`
	Category    string `json:"category,omitempty"`
	SearchText  string `json:"searchText,omitempty"`
	DueToday    bool   `json:"dueToday"`
	DueTime     string `json:"dueTime,omitempty"`
	MaxDuration *int   `json:"maxDuration,omitempty"`
}

func newFilterResp(f voice.FilterCriteria) filterResp {
	return filterResp{
		Priority:    string(f.Priority),
		Category:    string(f.Category),
		SearchText:  f.SearchText,
		DueToday:    f.DueToday,
		DueTime:     f.DueTime,
		MaxDuration: f.MaxDuration,
	}
}

type parseFilterResp struct {
	Filter filterResp `json:"filter"`
}

func (h *handler) newParseFilterResp(out voice.ParseFilterOutput) parseFilterResp {
	return parseFilterResp{Filter: newFilterResp(out.Filter)}
}

type applyFilterResp struct {
	Filter filterResp   `json:"filter"`
	Tasks  []model.Task `json:"tasks"`
	Count  int          `json:"count"`
}

func (h *handler) newApplyFilterResp(out voice.ApplyFilterOutput) applyFilterResp {
	tasks := out.Tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	return applyFilterResp{Filter: newFilterResp(out.Filter), Tasks: tasks, Count: len(tasks)}
}
