package fetch

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"
)

// transientStatuses are the HTTP codes worth retrying: rate limiting and
// server-side failures that typically clear on their own.
var transientStatuses = map[int]bool{
	429: true,
	500: true,
	502: true,
	503: true,
	504: true,
}

// IsTransient reports whether err represents a condition that warrants an
// automatic retry: retryable HTTP statuses, timeouts, and connection-level
// failures. Everything else is treated as permanent.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return transientStatuses[statusErr.Status]
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	message := strings.ToLower(err.Error())
	for _, token := range []string{
		"rate limit",
		"too many requests",
		"timeout",
		"deadline exceeded",
		"connection reset",
		"connection refused",
		"temporary failure",
	} {
		if strings.Contains(message, token) {
			return true
		}
	}
	return false
}

// Backoff returns the wait before retry number attempt (1-based); the delay
// grows by roughly one second per additional attempt.
func Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return time.Duration(attempt) * time.Second
}

// SleepWithContext blocks for d, returning early with the context error if
// the context is cancelled first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
