package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"voice-task-parser/config"
	"voice-task-parser/internal/voice"
	"voice-task-parser/pkg/log"
)

func testConfig() *config.Config {
	return &config.Config{
		Extractor: config.ExtractorConfig{UTCOffsetMinutes: 330, ZoneName: "IST", MinSearchTextLen: 3},
		Cache:     config.CacheConfig{Enabled: true, Size: 16, TTL: time.Minute},
		LLM: config.LLMConfig{
			RetryAttempts:   1,
			RetryDelay:      "10ms",
			MaxTotalTimeout: "1s",
		},
	}
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "development", Encoding: "console"})
}

func TestNewVoiceWithoutProviders(t *testing.T) {
	v, err := NewVoice(context.Background(), testConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewVoice: %v", err)
	}
	defer v.Close()

	if v.RemoteEnabled {
		t.Error("remote should be disabled without providers")
	}

	ctx := context.Background()
	now := time.Date(2024, 5, 1, 4, 0, 0, 0, time.UTC)

	out, err := v.UseCase.ParseTaskRemote(ctx, voice.ParseTaskInput{Transcript: "buy milk", Now: now})
	if err != nil {
		t.Fatalf("ParseTaskRemote: %v", err)
	}
	if out.Source != voice.SourceFallback {
		t.Errorf("source = %q, want fallback", out.Source)
	}

	local, err := v.UseCase.ParseTask(ctx, voice.ParseTaskInput{Transcript: "call mom at 5 pm tomorrow", Now: now})
	if err != nil {
		t.Fatalf("ParseTask: %v", err)
	}
	if local.Task.DueDate != "2024-05-02" || local.Task.DueTime != "17:00" {
		t.Errorf("got date %q time %q, want 2024-05-02 17:00", local.Task.DueDate, local.Task.DueTime)
	}
}

func TestNewVoiceWithProvider(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	defer mr.Close()

	cfg := testConfig()
	cfg.Cache.RedisAddr = mr.Addr()
	cfg.LLM.Providers = []config.ProviderConfig{
		{Name: "qwen", Enabled: true, Priority: 1, APIKey: "k", BaseURL: "http://127.0.0.1:1", Model: "qwen-plus", Timeout: "1s"},
	}

	v, err := NewVoice(context.Background(), cfg, testLogger())
	if err != nil {
		t.Fatalf("NewVoice: %v", err)
	}
	defer v.Close()

	if !v.RemoteEnabled {
		t.Fatal("remote should be enabled")
	}
	if len(v.Providers) != 1 || v.Providers[0] != "qwen" {
		t.Errorf("providers = %v, want [qwen]", v.Providers)
	}
	if v.redisClient == nil {
		t.Error("expected redis cache to be used")
	}
}

func TestNewVoiceRedisUnavailable(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.RedisAddr = "127.0.0.1:1"
	cfg.LLM.Providers = []config.ProviderConfig{
		{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-2.5-flash"},
	}

	v, err := NewVoice(context.Background(), cfg, testLogger())
	if err != nil {
		t.Fatalf("NewVoice: %v", err)
	}
	if v.redisClient != nil {
		t.Error("redis client should not be kept when ping fails")
	}
	if err := v.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNewVoiceProviderWithoutKey(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.Providers = []config.ProviderConfig{
		{Name: "deepseek", Enabled: true, Priority: 1, Model: "deepseek-chat"},
	}

	v, err := NewVoice(context.Background(), cfg, testLogger())
	if err != nil {
		t.Fatalf("NewVoice: %v", err)
	}
	if v.RemoteEnabled {
		t.Error("remote should be disabled when no provider has a key")
	}
}

func TestNewVoiceNilConfig(t *testing.T) {
	if _, err := NewVoice(context.Background(), nil, testLogger()); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestNewVoiceTimezone(t *testing.T) {
	// 20:00 UTC is already the next day in IST
	now := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		timezone string
		wantDate string
	}{
		{name: "fixed offset", timezone: "", wantDate: "2024-05-03"},
		{name: "iana zone", timezone: "UTC", wantDate: "2024-05-02"},
		{name: "invalid zone falls back", timezone: "Invalid/Zone", wantDate: "2024-05-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Extractor.Timezone = tt.timezone

			v, err := NewVoice(context.Background(), cfg, testLogger())
			if err != nil {
				t.Fatalf("NewVoice: %v", err)
			}
			defer v.Close()

			out, err := v.UseCase.ParseTask(context.Background(), voice.ParseTaskInput{Transcript: "call mom at 5 pm tomorrow", Now: now})
			if err != nil {
				t.Fatalf("ParseTask: %v", err)
			}
			if out.Task.DueDate != tt.wantDate {
				t.Errorf("due date = %q, want %q", out.Task.DueDate, tt.wantDate)
			}
		})
	}
}
