package middleware

import (
	"weekly-task-planner/internal/session"
	"weekly-task-planner/pkg/log"
)

// SessionHeader carries the planner session id in both directions.
const SessionHeader = "X-Planner-Session"

type Middleware struct {
	l        log.Logger
	sessions *session.Manager
	limiter  *rateLimiter
}

// New creates the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, sessions *session.Manager, requestsPerMin int) Middleware {
	return Middleware{
		l:        l,
		sessions: sessions,
		limiter:  newRateLimiter(requestsPerMin),
	}
}
