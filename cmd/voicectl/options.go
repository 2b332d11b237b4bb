package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-task-parser/config"
	"voice-task-parser/internal/bootstrap"
	"voice-task-parser/pkg/log"
)

type rootOptions struct {
	configPath string
	output     string
	now        string
	verbose    bool
}

func (o *rootOptions) validate() error {
	if o.output != formatJSON && o.output != formatYAML {
		return fmt.Errorf("unknown output format %q (want json or yaml)", o.output)
	}
	_, err := o.referenceTime()
	return err
}

// referenceTime returns the zero time when --now is unset, which the use
// case reads as the current instant.
func (o *rootOptions) referenceTime() (time.Time, error) {
	if o.now == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, o.now)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now must be RFC 3339: %w", err)
	}
	return t, nil
}

// voice loads configuration and builds the use case. Logs are muted unless
// --verbose is set so that stdout carries only the result.
func (o *rootOptions) voice(ctx context.Context) (*bootstrap.Voice, error) {
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return nil, err
	}

	level := "fatal"
	if o.verbose {
		level = cfg.Logger.Level
	}
	logger := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	return bootstrap.NewVoice(ctx, cfg, logger)
}

func transcriptArg(args []string) string {
	return strings.Join(args, " ")
}
