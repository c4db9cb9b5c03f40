package providers

import "context"

// Result is a retrieved transcript plus the label describing which provider
// produced it and whether the track was auto-generated. The label is for
// observability and downstream tie-breaks; it is never re-parsed.
type Result struct {
	Transcript string
	Source     string
}

// Provider is one independent strategy for obtaining a transcript.
//
// Fetch returns a non-empty Result on success. It returns an error wrapping
// ErrNoCaptions when the video legitimately has no usable captions for the
// requested language, and any other error for strategy failures. Retries for
// transient conditions happen inside Fetch, not in the caller.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, videoID, lang string) (Result, error)
}
