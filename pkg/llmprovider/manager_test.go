package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	failTimes  int
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail || m.callCount <= m.failTimes {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func hello() *Request {
	return UserPrompt("", "Hello")
}

func okProvider(name string) *mockProvider {
	return &mockProvider{
		name:     name,
		model:    name + "-model",
		response: &Response{Text: "Hello from " + name, ProviderName: name, ModelName: name + "-model", Usage: &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150}},
	}
}

func failProvider(name string) *mockProvider {
	return &mockProvider{name: name, model: name + "-model", shouldFail: true}
}

func TestGenerateContent(t *testing.T) {
	tests := []struct {
		name         string
		providers    []*mockProvider
		config       Config
		wantErr      error
		wantProvider string
		wantCalls    []int
		wantInfo     int
		wantWarn     int
	}{
		{
			name:         "primary succeeds",
			providers:    []*mockProvider{okProvider("primary")},
			config:       Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: time.Millisecond},
			wantProvider: "primary",
			wantCalls:    []int{1},
			wantInfo:     1,
		},
		{
			name:         "fallback to secondary",
			providers:    []*mockProvider{failProvider("primary"), okProvider("secondary")},
			config:       Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			wantProvider: "secondary",
			wantCalls:    []int{2, 1},
			wantInfo:     1,
			wantWarn:     1,
		},
		{
			name:      "all providers fail",
			providers: []*mockProvider{failProvider("primary"), failProvider("secondary")},
			config:    Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			wantErr:   ErrAllProvidersFailed,
			wantCalls: []int{2, 2},
			wantWarn:  2,
		},
		{
			name:      "no fallback when disabled",
			providers: []*mockProvider{failProvider("primary"), okProvider("secondary")},
			config:    Config{FallbackEnabled: false, RetryAttempts: 2, RetryDelay: time.Millisecond},
			wantErr:   ErrAllProvidersFailed,
			wantCalls: []int{2, 0},
			wantWarn:  1,
		},
		{
			name:      "zero retry attempts still calls once",
			providers: []*mockProvider{failProvider("primary")},
			config:    Config{},
			wantErr:   ErrAllProvidersFailed,
			wantCalls: []int{1},
			wantWarn:  1,
		},
		{
			name:    "no providers configured",
			config:  Config{FallbackEnabled: true, RetryAttempts: 3},
			wantErr: ErrNoProvidersConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers := make([]Provider, len(tt.providers))
			for i, p := range tt.providers {
				providers[i] = p
			}
			logger := &mockLogger{}
			cfg := tt.config
			manager := NewManager(providers, &cfg, logger)

			resp, err := manager.GenerateContent(context.Background(), hello())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if resp != nil {
					t.Errorf("expected nil response, got %+v", resp)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.ProviderName != tt.wantProvider {
					t.Errorf("ProviderName = %q, want %q", resp.ProviderName, tt.wantProvider)
				}
			}

			for i, want := range tt.wantCalls {
				if tt.providers[i].callCount != want {
					t.Errorf("provider %s called %d times, want %d", tt.providers[i].name, tt.providers[i].callCount, want)
				}
			}
			if len(logger.infoMessages) != tt.wantInfo {
				t.Errorf("info logs = %d, want %d", len(logger.infoMessages), tt.wantInfo)
			}
			if len(logger.warnMessages) != tt.wantWarn {
				t.Errorf("warn logs = %d, want %d", len(logger.warnMessages), tt.wantWarn)
			}
		})
	}
}

func TestGenerateContent_RetryRecovers(t *testing.T) {
	p := okProvider("primary")
	p.failTimes = 1
	manager := NewManager([]Provider{p}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), hello())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Hello from primary" || p.callCount != 2 {
		t.Errorf("Text = %q calls = %d, want success on second call", resp.Text, p.callCount)
	}
}

func TestGenerateContent_NilUsage(t *testing.T) {
	p := &mockProvider{name: "p", model: "m", response: &Response{Text: "ok"}}
	manager := NewManager([]Provider{p}, &Config{RetryAttempts: 1}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), hello()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	manager := NewManager([]Provider{okProvider("p")}, &Config{RetryAttempts: 1}, &mockLogger{})

	for _, req := range []*Request{nil, {SystemInstruction: "only system"}} {
		if _, err := manager.GenerateContent(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	manager := NewManager([]Provider{failProvider("a"), failProvider("b")}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      50 * time.Millisecond,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), hello())
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("error = %v, want deadline or all-failed", err)
	}
}

func TestProviders(t *testing.T) {
	manager := NewManager([]Provider{okProvider("deepseek"), okProvider("qwen")}, &Config{}, &mockLogger{})
	got := manager.Providers()
	if len(got) != 2 || got[0] != "deepseek" || got[1] != "qwen" {
		t.Errorf("Providers() = %v", got)
	}
}
