package providers

import (
	"context"
	"log/slog"

	"transcriptgrab/internal/fetch"
	"transcriptgrab/internal/logging"
)

// defaultAttempts is the per-provider retry budget for subprocess and HTTP
// based strategies.
const defaultAttempts = 3

// withRetry runs op up to attempts times, sleeping with growing backoff
// between tries. Only transient errors are retried; anything else aborts
// immediately. The last error is returned when the budget is exhausted.
func withRetry(ctx context.Context, logger *slog.Logger, provider string, attempts int, op func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !fetch.IsTransient(lastErr) || attempt == attempts {
			return lastErr
		}
		backoff := fetch.Backoff(attempt)
		if logger != nil {
			logger.Warn("transient failure, retrying",
				logging.String(logging.FieldComponent, provider),
				logging.Int("attempt", attempt),
				logging.Int("max_attempts", attempts),
				logging.Duration("backoff", backoff),
				logging.Error(lastErr))
		}
		if err := fetch.SleepWithContext(ctx, backoff); err != nil {
			return err
		}
	}
	return lastErr
}
