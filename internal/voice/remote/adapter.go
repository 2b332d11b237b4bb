package remote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-task-parser/internal/voice"
	"voice-task-parser/internal/voice/schema"
	"voice-task-parser/pkg/datemath"
	"voice-task-parser/pkg/llmprovider"
	"voice-task-parser/pkg/log"
)

// Generator is the hosted-model boundary. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Adapter extracts task drafts through a hosted language model.
type Adapter struct {
	llm   Generator
	l     log.Logger
	dates *datemath.Parser
}

// New creates an Adapter. A nil llm is allowed and makes every call resolve
// to the all-defaults record with ErrNoCredential.
func New(l log.Logger, llm Generator, dates *datemath.Parser) *Adapter {
	return &Adapter{llm: llm, l: l, dates: dates}
}

// Enabled reports whether a model is configured.
func (a *Adapter) Enabled() bool {
	return a != nil && a.llm != nil
}

// ExtractTask asks the model for a task record for transcript. The returned
// draft is always valid: on any failure it is the all-defaults record and
// the error says why.
func (a *Adapter) ExtractTask(ctx context.Context, transcript string, now time.Time) (voice.TaskDraft, error) {
	if !a.Enabled() {
		return voice.DefaultTaskDraft(), ErrNoCredential
	}

	localNow := a.dates.Now(now)
	req := llmprovider.UserPrompt(PromptSystem, BuildTaskPrompt(transcript, localNow))
	req.Temperature = RemoteTemperature
	req.MaxTokens = RemoteMaxTokens
	req.JSONResponse = true

	resp, err := a.llm.GenerateContent(ctx, req)
	if err != nil {
		a.l.Warnf(ctx, "%s: %s: %v", LogPrefixExtract, ErrMsgLLMCallFailed, err)
		return voice.DefaultTaskDraft(), fmt.Errorf("%s: %w", LogPrefixExtract, err)
	}

	text := strings.TrimSpace(resp.Text)
	if len(text) < minResponseLen {
		a.l.Warnf(ctx, "%s: %s (%d bytes)", LogPrefixExtract, ErrMsgEmptyResponse, len(text))
		return voice.DefaultTaskDraft(), ErrEmptyResponse
	}
	a.l.Debugf(ctx, "%s: raw response from %s: %s", LogPrefixExtract, resp.ProviderName, text)

	raw, ok := parseJSON(text)
	if !ok {
		a.l.Infof(ctx, "%s: %s", LogPrefixExtract, ErrMsgJSONParseFailed)
		raw = scrapeText(text, now, a.dates)
	}

	draft, err := schema.DecodeTask(raw)
	if err != nil {
		a.l.Warnf(ctx, "%s: %s: %v", LogPrefixExtract, ErrMsgValidation, err)
		return draft, err
	}
	return draft, nil
}
