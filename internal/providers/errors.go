package providers

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoCaptions marks the clean absence of captions: an empty catalog,
	// no language match, or transcripts disabled for the video. Not a failure.
	ErrNoCaptions = errors.New("no captions available")
	// ErrTransient tags failures that were retried within the provider's
	// policy and still did not clear.
	ErrTransient = errors.New("transient provider failure")
	// ErrPermanent tags failures that no retry will fix: missing tools,
	// rejected requests, unusable responses.
	ErrPermanent = errors.New("permanent provider failure")
)

// Wrap tags err with marker and provider/operation context so the
// orchestrator can classify and report it.
func Wrap(marker error, provider, operation string, err error) error {
	detail := buildDetail(provider, operation)
	if marker == nil {
		marker = ErrPermanent
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(provider, operation string) string {
	parts := make([]string, 0, 2)
	if provider = strings.TrimSpace(provider); provider != "" {
		parts = append(parts, provider)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if len(parts) == 0 {
		return "provider failure"
	}
	return strings.Join(parts, ": ")
}
