package middleware

import (
	"reminder-nlp-service/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *clientRateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newClientRateLimiter(cfg.RateLimitPerMin),
	}
}
