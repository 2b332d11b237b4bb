package middleware

import "time"

const (
	RequestIDHeader = "X-Request-ID"

	limiterCacheSize = 1000
	limiterTTL       = 5 * time.Minute

	corsMaxAge = 12 * time.Hour
)
