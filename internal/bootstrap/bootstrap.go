// Package bootstrap builds the voice use case from configuration. It is the
// composition root shared by the API server and the CLI.
package bootstrap

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"voice-task-parser/config"
	"voice-task-parser/internal/voice"
	"voice-task-parser/internal/voice/filter"
	"voice-task-parser/internal/voice/remote"
	"voice-task-parser/internal/voice/repository"
	"voice-task-parser/internal/voice/repository/lru"
	"voice-task-parser/internal/voice/repository/redis"
	"voice-task-parser/internal/voice/usecase"
	"voice-task-parser/pkg/datemath"
	"voice-task-parser/pkg/llmprovider"
	"voice-task-parser/pkg/log"
)

// Voice holds the built use case and the resources it owns.
type Voice struct {
	UseCase       voice.UseCase
	RemoteEnabled bool
	Providers     []string

	redisClient *goredis.Client
}

// Close releases the redis connection, if any.
func (v *Voice) Close() error {
	if v.redisClient == nil {
		return nil
	}
	return v.redisClient.Close()
}

// NewVoice wires the extractors, the optional remote path and its cache.
// Missing or unusable LLM providers only disable the remote path; an
// unreachable redis falls back to the in-process cache.
func NewVoice(ctx context.Context, cfg *config.Config, logger log.Logger) (*Voice, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	dates := newDateParser(ctx, cfg.Extractor, logger)
	filterParser := filter.New(dates, cfg.Extractor.MinSearchTextLen)

	out := &Voice{}

	var gen remote.Generator
	providers, err := llmprovider.InitializeProviders(&cfg.LLM, logger)
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		logger.Warn(ctx, "No LLM providers configured, remote extraction disabled")
	case err != nil:
		// typically every enabled provider lacks its API key
		logger.Warnf(ctx, "LLM providers unavailable, remote extraction disabled: %v", err)
	default:
		manager := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(&cfg.LLM), logger)
		gen = manager
		out.RemoteEnabled = true
		out.Providers = manager.Providers()
		logger.Infof(ctx, "Remote extraction enabled, providers: %v", out.Providers)
	}
	remoteAdapter := remote.New(logger, gen, dates)

	var cache repository.ResultCache
	if cfg.Cache.Enabled && out.RemoteEnabled {
		cache = out.newCache(ctx, cfg.Cache, logger)
	}

	out.UseCase = usecase.New(logger, dates, filterParser, remoteAdapter, cache)
	return out, nil
}

func (v *Voice) newCache(ctx context.Context, cfg config.CacheConfig, logger log.Logger) repository.ResultCache {
	if cfg.RedisAddr != "" {
		client, err := redis.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err == nil {
			v.redisClient = client
			logger.Infof(ctx, "Remote result cache: redis at %s", cfg.RedisAddr)
			return redis.New(client, cfg.TTL)
		}
		logger.Warnf(ctx, "Redis unavailable at %s, using in-process cache: %v", cfg.RedisAddr, err)
	}

	logger.Infof(ctx, "Remote result cache: in-process LRU, size %d", cfg.Size)
	return lru.New(cfg.Size, cfg.TTL)
}

// newDateParser prefers the IANA timezone and falls back to the fixed offset
// when it is unset or cannot be loaded.
func newDateParser(ctx context.Context, cfg config.ExtractorConfig, logger log.Logger) *datemath.Parser {
	if cfg.Timezone != "" {
		p, err := datemath.NewParser(cfg.Timezone)
		if err == nil {
			return p
		}
		logger.Warnf(ctx, "Falling back to fixed offset %d: %v", cfg.UTCOffsetMinutes, err)
	}
	return datemath.NewFixedParser(cfg.ZoneName, cfg.UTCOffsetMinutes)
}
