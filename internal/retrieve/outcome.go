package retrieve

import "transcriptgrab/internal/providers"

// Kind classifies the terminal state of a retrieval run.
type Kind int

const (
	// KindFound means a strategy produced a non-empty transcript.
	KindFound Kind = iota
	// KindNoTranscript means every strategy completed cleanly and none had
	// captions to offer. Not a failure.
	KindNoTranscript
	// KindFailed means no transcript was produced and at least one strategy
	// reported a real error.
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindFound:
		return "found"
	case KindNoTranscript:
		return "no-transcript"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of running the strategy chain. Result is meaningful
// only for KindFound; Errors carries per-strategy failure detail only for
// KindFailed.
type Outcome struct {
	Kind   Kind
	Result providers.Result
	Errors []string
}
