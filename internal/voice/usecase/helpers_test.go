package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"voice-task-parser/internal/voice"
	"voice-task-parser/internal/voice/filter"
	"voice-task-parser/internal/voice/remote"
	"voice-task-parser/internal/voice/repository"
	"voice-task-parser/internal/voice/usecase"
	"voice-task-parser/pkg/datemath"
	"voice-task-parser/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock hosted model counting its calls
type mockGenerator struct {
	text  string
	err   error
	calls atomic.Int32
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, ProviderName: "mock"}, nil
}

var errCacheDown = errors.New("cache down")

// Mock cache whose calls always fail
type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) (voice.TaskDraft, bool, error) {
	return voice.TaskDraft{}, false, errCacheDown
}

func (failingCache) Set(ctx context.Context, key string, d voice.TaskDraft) error {
	return errCacheDown
}

// 2024-05-01 09:30 in +5:30, a Wednesday.
var baseTime = time.Date(2024, 5, 1, 4, 0, 0, 0, time.UTC)

func newDates() *datemath.Parser {
	return datemath.NewFixedParser("IST", 330)
}

func newUseCase(gen remote.Generator, cache repository.ResultCache) voice.UseCase {
	dates := newDates()
	var adapter *remote.Adapter
	if gen != nil {
		adapter = remote.New(&mockLogger{}, gen, dates)
	}
	return usecase.New(&mockLogger{}, dates, filter.New(dates, filter.MinSearchTextLen), adapter, cache)
}
