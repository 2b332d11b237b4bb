package middleware

import (
	"voice-task-parser/config"
	"voice-task-parser/pkg/log"
)

// Middleware bundles the gin middlewares shared by every route group.
type Middleware struct {
	l       log.Logger
	cors    config.CORSConfig
	limiter *rateLimiter
}

// New builds the middleware set. A disabled or non-positive rate limit turns
// RateLimit into a pass-through.
func New(l log.Logger, corsCfg config.CORSConfig, rlCfg config.RateLimitConfig) Middleware {
	mw := Middleware{
		l:    l,
		cors: corsCfg,
	}
	if rlCfg.Enabled && rlCfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rlCfg.RequestsPerMin)
	}
	return mw
}
