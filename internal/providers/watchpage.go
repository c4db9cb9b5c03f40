package providers

import (
	"context"
	"errors"
	"log/slog"

	"transcriptgrab/internal/fetch"
	"transcriptgrab/internal/logging"
	"transcriptgrab/internal/tracks"
	"transcriptgrab/internal/videoid"
)

const watchPageName = "watch-page"

// WatchPage scrapes the caption-track catalog embedded in a video's watch
// page, then fetches the selected track's timedtext payload.
type WatchPage struct {
	client   *fetch.Client
	attempts int
	baseURL  string
	logger   *slog.Logger
}

// NewWatchPage constructs the watch-page scrape strategy.
func NewWatchPage(client *fetch.Client, attempts int, logger *slog.Logger) *WatchPage {
	if attempts < 1 {
		attempts = defaultAttempts
	}
	return &WatchPage{
		client:   client,
		attempts: attempts,
		baseURL:  "https://www.youtube.com",
		logger:   logging.NewComponentLogger(logger, watchPageName),
	}
}

// Name identifies the strategy in source labels and error reports.
func (w *WatchPage) Name() string { return watchPageName }

// ListTracks fetches the watch page and returns the embedded caption track
// catalog. An absent catalog yields ErrNoCaptions.
func (w *WatchPage) ListTracks(ctx context.Context, videoID string) ([]tracks.Track, error) {
	var catalog []tracks.Track
	err := withRetry(ctx, w.logger, watchPageName, w.attempts, func() error {
		body, err := w.client.Get(ctx, w.watchURL(videoID))
		if err != nil {
			return err
		}
		raw, ok := extractJSONArray(body, `"captionTracks":`)
		if !ok {
			return ErrNoCaptions
		}
		decoded, err := decodeTrackList([]byte(raw))
		if err != nil {
			return err
		}
		catalog = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, ErrNoCaptions
	}
	return catalog, nil
}

// Fetch retrieves the transcript for the best matching caption track.
func (w *WatchPage) Fetch(ctx context.Context, videoID, lang string) (Result, error) {
	catalog, err := w.ListTracks(ctx, videoID)
	if err != nil {
		if errors.Is(err, ErrNoCaptions) {
			return Result{}, Wrap(ErrNoCaptions, watchPageName, "list tracks", nil)
		}
		if fetch.IsTransient(err) {
			return Result{}, Wrap(ErrTransient, watchPageName, "list tracks", err)
		}
		return Result{}, Wrap(ErrPermanent, watchPageName, "list tracks", err)
	}

	track, ok := tracks.Select(catalog, lang)
	if !ok {
		return Result{}, Wrap(ErrNoCaptions, watchPageName, "no track for language "+lang, nil)
	}

	var transcript string
	err = withRetry(ctx, w.logger, watchPageName, w.attempts, func() error {
		text, err := fetchTrackTranscript(ctx, w.client, track)
		if err != nil {
			return err
		}
		transcript = text
		return nil
	})
	if err != nil {
		if fetch.IsTransient(err) {
			return Result{}, Wrap(ErrTransient, watchPageName, "fetch captions", err)
		}
		return Result{}, Wrap(ErrPermanent, watchPageName, "fetch captions", err)
	}
	if transcript == "" {
		return Result{}, Wrap(ErrNoCaptions, watchPageName, "empty transcript", nil)
	}

	w.logger.Debug("transcript retrieved",
		logging.String("video_id", videoID),
		logging.String("track_language", track.LanguageCode),
		logging.Bool("auto_generated", track.IsGenerated()))
	return Result{
		Transcript: transcript,
		Source:     sourceLabel(watchPageName, track.IsGenerated()),
	}, nil
}

func (w *WatchPage) watchURL(videoID string) string {
	if w.baseURL == "" {
		return videoid.WatchURL(videoID)
	}
	return w.baseURL + "/watch?v=" + videoID
}
