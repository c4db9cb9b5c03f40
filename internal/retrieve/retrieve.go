// Package retrieve runs the ordered transcript strategies until one
// succeeds, distinguishing "nothing available" from "everything broke".
package retrieve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"transcriptgrab/internal/logging"
	"transcriptgrab/internal/providers"
)

// Cache stores transcripts keyed by video and language. Implementations
// must treat Lookup misses as (Result{}, false, nil).
type Cache interface {
	Lookup(ctx context.Context, videoID, lang string) (providers.Result, bool, error)
	Store(ctx context.Context, videoID, lang string, result providers.Result) error
}

// Option configures the runner.
type Option func(*Runner)

// WithCache attaches a transcript cache. A nil cache disables caching.
func WithCache(cache Cache) Option {
	return func(r *Runner) {
		r.cache = cache
	}
}

// Runner executes the strategy chain in priority order.
type Runner struct {
	providers []providers.Provider
	cache     Cache
	logger    *slog.Logger
}

// NewRunner builds a runner over the given strategies. Order is priority
// order; the first strategy to yield a non-empty transcript wins.
func NewRunner(list []providers.Provider, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Runner{
		providers: list,
		logger:    logging.NewComponentLogger(logger, "retrieve"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run tries each strategy in order and returns the terminal outcome. Strategy
// errors are collected, not fatal: a later strategy can still succeed. A
// cancelled context stops the chain immediately.
func (r *Runner) Run(ctx context.Context, videoID, lang string) Outcome {
	logger := r.logger.With(logging.String(logging.FieldRequestID, uuid.NewString()),
		logging.String("video_id", videoID),
		logging.String("language", lang))

	if r.cache != nil {
		result, ok, err := r.cache.Lookup(ctx, videoID, lang)
		if err != nil {
			logger.Warn("cache lookup failed", logging.Error(err))
		} else if ok {
			logger.Debug("cache hit", logging.String("source", result.Source))
			return Outcome{Kind: KindFound, Result: result}
		}
	}

	var failures []string
	for _, provider := range r.providers {
		if err := ctx.Err(); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", provider.Name(), err))
			break
		}

		result, err := provider.Fetch(ctx, videoID, lang)
		if err == nil && result.Transcript != "" {
			logger.Info("transcript retrieved",
				logging.String("source", result.Source),
				logging.Int("transcript_chars", len(result.Transcript)))
			r.store(ctx, logger, videoID, lang, result)
			return Outcome{Kind: KindFound, Result: result}
		}
		if err == nil || errors.Is(err, providers.ErrNoCaptions) {
			logger.Debug("strategy found no captions",
				logging.String(logging.FieldComponent, provider.Name()))
			continue
		}

		logger.Warn("strategy failed",
			logging.String(logging.FieldComponent, provider.Name()),
			logging.Error(err))
		failures = append(failures, fmt.Sprintf("%s: %v", provider.Name(), err))
	}

	if len(failures) > 0 {
		return Outcome{Kind: KindFailed, Errors: failures}
	}
	return Outcome{Kind: KindNoTranscript}
}

func (r *Runner) store(ctx context.Context, logger *slog.Logger, videoID, lang string, result providers.Result) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Store(ctx, videoID, lang, result); err != nil {
		logger.Warn("cache store failed", logging.Error(err))
	}
}
