// Package providers implements the independent caption-retrieval strategies:
// the yt-dlp subprocess, two HTTP scrape variants (watch-page catalog and the
// innertube player API), and the youtube-transcript-api-go library.
//
// Each provider owns its retry policy: transient failures (rate limiting,
// server errors, timeouts) are retried a bounded number of times with growing
// backoff before the provider reports to the orchestrator; permanent failures
// abort the provider immediately. "No captions available" is a valid outcome
// signalled with ErrNoCaptions, distinct from any failure.
package providers
