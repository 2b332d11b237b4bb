package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type mockUseCase struct {
	err       error
	taskIn    voice.ParseTaskInput
	filterIn  voice.ParseFilterInput
	applyIn   voice.ApplyFilterInput
	taskOut   voice.ParseTaskOutput
	filterOut voice.ParseFilterOutput
	applyOut  voice.ApplyFilterOutput
}

func (m *mockUseCase) ParseTask(ctx context.Context, in voice.ParseTaskInput) (voice.ParseTaskOutput, error) {
	m.taskIn = in
	return m.taskOut, m.err
}

func (m *mockUseCase) ParseTaskRemote(ctx context.Context, in voice.ParseTaskInput) (voice.ParseTaskOutput, error) {
	m.taskIn = in
	return m.taskOut, m.err
}

func (m *mockUseCase) ParseFilter(ctx context.Context, in voice.ParseFilterInput) (voice.ParseFilterOutput, error) {
	m.filterIn = in
	return m.filterOut, m.err
}

func (m *mockUseCase) ApplyFilter(ctx context.Context, in voice.ApplyFilterInput) (voice.ApplyFilterOutput, error) {
	m.applyIn = in
	return m.applyOut, m.err
}

func newRouter(uc voice.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(&mockLogger{}, uc))
	return r
}

func do(t *testing.T, r *gin.Engine, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return w, out
}

func TestParseTask(t *testing.T) {
	uc := &mockUseCase{taskOut: voice.ParseTaskOutput{
		Task: voice.TaskDraft{
			Name:     "Call mom",
			DueDate:  "2024-05-02",
			Duration: voice.IntPtr(30),
			Priority: model.PriorityHigh,
			Category: model.CategoryPersonal,
		},
		Source: voice.SourceLocal,
	}}
	r := newRouter(uc)

	w, body := do(t, r, "/api/v1/voice/task", `{"transcript":"call mom tomorrow","now":"2024-05-01T09:30:00+05:30"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	if uc.taskIn.Transcript != "call mom tomorrow" {
		t.Errorf("transcript = %q", uc.taskIn.Transcript)
	}
	want := time.Date(2024, 5, 1, 4, 0, 0, 0, time.UTC)
	if !uc.taskIn.Now.Equal(want) {
		t.Errorf("now = %v, want %v", uc.taskIn.Now, want)
	}

	data := body["data"].(map[string]any)
	if data["source"] != "local" {
		t.Errorf("source = %v, want local", data["source"])
	}
	task := data["task"].(map[string]any)
	if task["name"] != "Call mom" || task["priority"] != "high" || task["duration"] != float64(30) {
		t.Errorf("unexpected task: %v", task)
	}
	if _, ok := task["reminderMinutes"]; ok {
		t.Error("absent reminderMinutes should be omitted")
	}
}

func TestParseTaskRemoteRoute(t *testing.T) {
	uc := &mockUseCase{taskOut: voice.ParseTaskOutput{Task: voice.DefaultTaskDraft(), Source: voice.SourceFallback}}
	r := newRouter(uc)

	w, body := do(t, r, "/api/v1/voice/task/remote", `{"transcript":"buy milk"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !uc.taskIn.Now.IsZero() {
		t.Errorf("now should default to zero, got %v", uc.taskIn.Now)
	}
	data := body["data"].(map[string]any)
	if data["source"] != "fallback" {
		t.Errorf("source = %v, want fallback", data["source"])
	}
}

func TestParseFilter(t *testing.T) {
	uc := &mockUseCase{filterOut: voice.ParseFilterOutput{Filter: voice.FilterCriteria{
		Priority: model.PriorityHigh,
		DueToday: true,
	}}}
	r := newRouter(uc)

	w, body := do(t, r, "/api/v1/voice/filter", `{"transcript":"urgent tasks today"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	filter := body["data"].(map[string]any)["filter"].(map[string]any)
	if filter["priority"] != "high" || filter["dueToday"] != true {
		t.Errorf("unexpected filter: %v", filter)
	}
	if _, ok := filter["category"]; ok {
		t.Error("empty category should be omitted")
	}
}

func TestApplyFilter(t *testing.T) {
	tasks := []model.Task{{ID: "1", Name: "Report"}}
	uc := &mockUseCase{applyOut: voice.ApplyFilterOutput{Tasks: tasks}}
	r := newRouter(uc)

	w, body := do(t, r, "/api/v1/voice/filter/apply", `{"transcript":"report","tasks":[{"id":"1","name":"Report"},{"id":"2","name":"Gym"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(uc.applyIn.Tasks) != 2 {
		t.Errorf("use case got %d tasks, want 2", len(uc.applyIn.Tasks))
	}
	data := body["data"].(map[string]any)
	if data["count"] != float64(1) {
		t.Errorf("count = %v, want 1", data["count"])
	}

	uc.applyOut = voice.ApplyFilterOutput{}
	_, body = do(t, r, "/api/v1/voice/filter/apply", `{"transcript":"nothing"}`)
	got, ok := body["data"].(map[string]any)["tasks"].([]any)
	if !ok || len(got) != 0 {
		t.Errorf("tasks = %v, want empty array", body["data"])
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{"malformed body", "/api/v1/voice/task", `{"transcript":`, nil, http.StatusBadRequest},
		{"bad now", "/api/v1/voice/task", `{"transcript":"x","now":"yesterday"}`, nil, http.StatusBadRequest},
		{"empty transcript", "/api/v1/voice/filter", `{"transcript":""}`, nil, http.StatusBadRequest},
		{"missing transcript", "/api/v1/voice/task", `{}`, nil, http.StatusBadRequest},
		{"apply missing transcript", "/api/v1/voice/filter/apply", `{"tasks":[]}`, nil, http.StatusBadRequest},
		{"internal", "/api/v1/voice/task/remote", `{"transcript":"x"}`, errors.New("boom"), http.StatusInternalServerError},
		{"apply internal", "/api/v1/voice/filter/apply", `{"transcript":"x"}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&mockUseCase{err: tt.ucErr})
			w, body := do(t, r, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusInternalServerError && body["message"] == "boom" {
				t.Error("internal error message leaked to client")
			}
			if msg, _ := body["message"].(string); tt.wantStatus == http.StatusBadRequest && !strings.HasPrefix(msg, "bad request: ") {
				t.Errorf("message = %q, want bad request prefix", msg)
			}
		})
	}
}
