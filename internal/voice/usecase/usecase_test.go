package usecase_test

import (
	"context"
	"sync"
	"testing"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice"
	"voice-task-parser/internal/voice/repository/lru"
	"voice-task-parser/internal/voice/usecase"
	"voice-task-parser/pkg/llmprovider"
)

func TestParseTask(t *testing.T) {
	uc := newUseCase(nil, nil)
	ctx := context.Background()

	t.Run("Empty Transcript Defaults", func(t *testing.T) {
		out, err := uc.ParseTask(ctx, voice.ParseTaskInput{Transcript: "  \n "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task != voice.DefaultTaskDraft() || out.Source != voice.SourceFallback {
			t.Errorf("expected defaults from fallback, got %+v (%s)", out.Task, out.Source)
		}
	})

	t.Run("Local Extraction", func(t *testing.T) {
		out, err := uc.ParseTask(ctx, voice.ParseTaskInput{Transcript: "Call John at 5 PM tomorrow urgent", Now: baseTime})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != voice.SourceLocal {
			t.Errorf("Source = %q, want local", out.Source)
		}
		got := out.Task
		if got.Name != "Call John" || got.DueDate != "2024-05-02" || got.DueTime != "17:00" || got.Priority != model.PriorityHigh {
			t.Errorf("unexpected task %+v", got)
		}
	})

	t.Run("No Reminder Stays Explicit", func(t *testing.T) {
		out, err := uc.ParseTask(ctx, voice.ParseTaskInput{Transcript: "Water the plants, no reminder", Now: baseTime})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ReminderMinutes == nil || *out.Task.ReminderMinutes != 0 {
			t.Errorf("ReminderMinutes = %v, want explicit 0", out.Task.ReminderMinutes)
		}
	})

	t.Run("Panic Falls Back To Transcript", func(t *testing.T) {
		broken := usecase.New(&mockLogger{}, nil, nil, nil, nil)
		out, err := broken.ParseTask(ctx, voice.ParseTaskInput{Transcript: "call mom", Now: baseTime})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != voice.SourceFallback || out.Task.Name != "call mom" {
			t.Errorf("expected {name: transcript}, got %+v (%s)", out.Task, out.Source)
		}
		if out.Task.Priority != model.PriorityMedium || out.Task.Category != model.CategoryOther {
			t.Errorf("expected default enums, got %+v", out.Task)
		}
	})
}

func TestParseTaskRemote(t *testing.T) {
	ctx := context.Background()
	reply := `{"name": "Call mom", "dueDate": "2024-05-02", "dueTime": "17:00", "priority": "high", "category": "personal"}`

	t.Run("Not Configured", func(t *testing.T) {
		out, err := newUseCase(nil, nil).ParseTaskRemote(ctx, voice.ParseTaskInput{Transcript: "call mom", Now: baseTime})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task != voice.DefaultTaskDraft() || out.Source != voice.SourceFallback {
			t.Errorf("expected defaults from fallback, got %+v (%s)", out.Task, out.Source)
		}
	})

	t.Run("Empty Transcript Defaults", func(t *testing.T) {
		gen := &mockGenerator{text: reply}
		out, err := newUseCase(gen, nil).ParseTaskRemote(ctx, voice.ParseTaskInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task != voice.DefaultTaskDraft() || out.Source != voice.SourceFallback {
			t.Errorf("expected defaults from fallback, got %+v (%s)", out.Task, out.Source)
		}
		if gen.calls.Load() != 0 {
			t.Errorf("model called %d times for empty transcript", gen.calls.Load())
		}
	})

	t.Run("Transport Failure Resolves To Defaults", func(t *testing.T) {
		gen := &mockGenerator{err: llmprovider.ErrAllProvidersFailed}
		out, err := newUseCase(gen, nil).ParseTaskRemote(ctx, voice.ParseTaskInput{Transcript: "call mom", Now: baseTime})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task != voice.DefaultTaskDraft() || out.Source != voice.SourceFallback {
			t.Errorf("expected defaults, got %+v (%s)", out.Task, out.Source)
		}
	})

	t.Run("Remote Result Is Cached Per Day", func(t *testing.T) {
		gen := &mockGenerator{text: reply}
		uc := newUseCase(gen, lru.New(16, 0))

		for i := 0; i < 3; i++ {
			out, err := uc.ParseTaskRemote(ctx, voice.ParseTaskInput{Transcript: "Call mom tomorrow at 5 pm", Now: baseTime})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Source != voice.SourceRemote || out.Task.Name != "Call mom" || out.Task.Priority != model.PriorityHigh {
				t.Fatalf("unexpected output %+v (%s)", out.Task, out.Source)
			}
		}
		if n := gen.calls.Load(); n != 1 {
			t.Errorf("model called %d times, want 1", n)
		}

		nextDay := baseTime.AddDate(0, 0, 1)
		if _, err := uc.ParseTaskRemote(ctx, voice.ParseTaskInput{Transcript: "Call mom tomorrow at 5 pm", Now: nextDay}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := gen.calls.Load(); n != 2 {
			t.Errorf("model called %d times after day change, want 2", n)
		}
	})

	t.Run("Failures Are Not Cached", func(t *testing.T) {
		gen := &mockGenerator{text: "nope"}
		uc := newUseCase(gen, lru.New(16, 0))
		for i := 0; i < 2; i++ {
			_, _ = uc.ParseTaskRemote(ctx, voice.ParseTaskInput{Transcript: "call mom", Now: baseTime})
		}
		if n := gen.calls.Load(); n != 2 {
			t.Errorf("model called %d times, want 2", n)
		}
	})

	t.Run("Cache Errors Are Ignored", func(t *testing.T) {
		gen := &mockGenerator{text: reply}
		out, err := newUseCase(gen, failingCache{}).ParseTaskRemote(ctx, voice.ParseTaskInput{Transcript: "call mom", Now: baseTime})
		if err != nil || out.Source != voice.SourceRemote {
			t.Errorf("got %+v (%s), %v; want remote result", out.Task, out.Source, err)
		}
	})
}

func TestParseFilter(t *testing.T) {
	uc := newUseCase(nil, nil)
	ctx := context.Background()

	t.Run("Empty Transcript Gives Empty Criteria", func(t *testing.T) {
		out, err := uc.ParseFilter(ctx, voice.ParseFilterInput{Transcript: " "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Filter.IsEmpty() {
			t.Errorf("expected empty criteria, got %+v", out.Filter)
		}
	})

	t.Run("Criteria", func(t *testing.T) {
		out, err := uc.ParseFilter(ctx, voice.ParseFilterInput{Transcript: "High priority work tasks", Now: baseTime})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Filter.Priority != model.PriorityHigh || out.Filter.Category != model.CategoryWork || out.Filter.SearchText != "" {
			t.Errorf("unexpected filter %+v", out.Filter)
		}
	})

	t.Run("Panic Falls Back To Search Text", func(t *testing.T) {
		broken := usecase.New(&mockLogger{}, newDates(), nil, nil, nil)
		out, err := broken.ParseFilter(ctx, voice.ParseFilterInput{Transcript: "urgent work", Now: baseTime})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Filter != (voice.FilterCriteria{SearchText: "urgent work"}) {
			t.Errorf("expected {searchText: transcript}, got %+v", out.Filter)
		}
	})
}

func TestApplyFilter(t *testing.T) {
	uc := newUseCase(nil, nil)
	ctx := context.Background()

	tasks := []model.Task{
		{ID: "1", Name: "Prepare slides", DueDate: "2024-05-01", Duration: 60, Priority: model.PriorityHigh, Category: model.CategoryWork},
		{ID: "2", Name: "Buy groceries", Description: "milk and eggs", DueDate: "2024-05-02", Duration: 20, Priority: model.PriorityMedium, Category: model.CategoryPersonal},
		{ID: "3", Name: "Email the team", DueDate: "2024-05-01", Duration: 10, Priority: model.PriorityLow, Category: model.CategoryWork},
		{ID: "4", Name: "Read a book", Priority: model.PriorityLow, Category: model.CategoryPersonal},
	}

	tests := []struct {
		name       string
		transcript string
		wantIDs    []string
	}{
		{name: "today", transcript: "Show me today's tasks", wantIDs: []string{"1", "3", "4"}},
		{name: "quick", transcript: "Tasks I can do in 15 minutes", wantIDs: []string{"3", "4"}},
		{name: "high work", transcript: "High priority work tasks", wantIDs: []string{"1"}},
		{name: "search", transcript: "Tell me tasks where I have to buy groceries", wantIDs: []string{"2"}},
		{name: "search description", transcript: "find eggs", wantIDs: []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.ApplyFilter(ctx, voice.ApplyFilterInput{Transcript: tt.transcript, Tasks: tasks, Now: baseTime})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Tasks) != len(tt.wantIDs) {
				t.Fatalf("got %d tasks %+v, want %v (filter %+v)", len(out.Tasks), out.Tasks, tt.wantIDs, out.Filter)
			}
			for i, id := range tt.wantIDs {
				if out.Tasks[i].ID != id {
					t.Errorf("tasks[%d].ID = %s, want %s", i, out.Tasks[i].ID, id)
				}
			}
		})
	}

	t.Run("Empty Query Keeps Every Task", func(t *testing.T) {
		out, err := uc.ApplyFilter(ctx, voice.ApplyFilterInput{Transcript: "", Tasks: tasks, Now: baseTime})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != len(tasks) {
			t.Errorf("got %d tasks, want %d", len(out.Tasks), len(tasks))
		}
	})

	t.Run("Nil Tasks Gives Empty List", func(t *testing.T) {
		out, err := uc.ApplyFilter(ctx, voice.ApplyFilterInput{Transcript: "work tasks", Now: baseTime})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tasks == nil || len(out.Tasks) != 0 {
			t.Errorf("Tasks = %#v, want empty non-nil slice", out.Tasks)
		}
	})
}

func TestConcurrentUse(t *testing.T) {
	gen := &mockGenerator{text: `{"name": "Call mom"}`}
	uc := newUseCase(gen, lru.New(16, 0))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.ParseTask(ctx, voice.ParseTaskInput{Transcript: "Buy groceries for 30 minutes", Now: baseTime})
			_, _ = uc.ParseFilter(ctx, voice.ParseFilterInput{Transcript: "urgent personal tasks", Now: baseTime})
			_, _ = uc.ParseTaskRemote(ctx, voice.ParseTaskInput{Transcript: "call mom", Now: baseTime})
		}()
	}
	wg.Wait()
}
