package providers

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"

	"transcriptgrab/internal/captions"
	"transcriptgrab/internal/logging"
	"transcriptgrab/internal/tracks"
)

const libraryName = "transcript-api"

// Lister is the slice of the youtube-transcript-api client the strategy
// needs; tests substitute a fake.
type Lister interface {
	GetTranscripts(videoID string, languages []string) ([]yt_transcript_models.Transcript, error)
}

type listerFunc func(videoID string, languages []string) ([]yt_transcript_models.Transcript, error)

func (f listerFunc) GetTranscripts(videoID string, languages []string) ([]yt_transcript_models.Transcript, error) {
	return f(videoID, languages)
}

func defaultLister() Lister {
	client := yt_transcript.NewClient()
	return listerFunc(client.GetTranscripts)
}

// LibraryOption configures the library strategy.
type LibraryOption func(*Library)

// WithLister injects a custom transcript lister (primarily for tests).
func WithLister(lister Lister) LibraryOption {
	return func(l *Library) {
		if lister != nil {
			l.lister = lister
		}
	}
}

// Library fetches transcripts through the youtube-transcript-api client. It
// is the last-resort strategy and runs a single attempt; the client performs
// its own HTTP handling and its failures rarely clear on immediate retry.
type Library struct {
	lister Lister
	logger *slog.Logger
}

// NewLibrary constructs the transcript-api library strategy.
func NewLibrary(logger *slog.Logger, opts ...LibraryOption) *Library {
	l := &Library{
		lister: defaultLister(),
		logger: logging.NewComponentLogger(logger, libraryName),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name identifies the strategy in source labels and error reports.
func (l *Library) Name() string { return libraryName }

// Fetch lists available transcripts, picks the best language match, and
// reconciles its lines into paragraph text.
func (l *Library) Fetch(ctx context.Context, videoID, lang string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, Wrap(ErrTransient, libraryName, "context done", err)
	}

	available, err := l.lister.GetTranscripts(videoID, []string{lang})
	if err != nil {
		if isNoTranscriptError(err) {
			return Result{}, Wrap(ErrNoCaptions, libraryName, "list transcripts", nil)
		}
		return Result{}, Wrap(ErrPermanent, libraryName, "list transcripts", err)
	}

	candidates := make([]yt_transcript_models.Transcript, 0, len(available))
	probe := tracks.Track{}
	for _, transcript := range available {
		probe.LanguageCode = transcript.LanguageCode
		if probe.Matches(lang) {
			candidates = append(candidates, transcript)
		}
	}
	if len(candidates) == 0 {
		return Result{}, Wrap(ErrNoCaptions, libraryName, "no transcript for language "+lang, nil)
	}

	// Manual transcripts first, then lexicographic on the language code.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].IsGenerated != candidates[j].IsGenerated {
			return !candidates[i].IsGenerated
		}
		return candidates[i].LanguageCode < candidates[j].LanguageCode
	})
	chosen := candidates[0]

	segments := make([]captions.Segment, 0, len(chosen.Lines))
	for _, line := range chosen.Lines {
		segments = append(segments, captions.Segment{
			Start: line.Start,
			End:   line.Start + line.Duration,
			Text:  captions.CleanText(line.Text),
		})
	}
	transcript := captions.TranscriptText(segments)
	if transcript == "" {
		return Result{}, Wrap(ErrNoCaptions, libraryName, "empty transcript", nil)
	}

	l.logger.Debug("transcript retrieved",
		logging.String("video_id", videoID),
		logging.String("track_language", chosen.LanguageCode),
		logging.Bool("auto_generated", chosen.IsGenerated))
	return Result{
		Transcript: transcript,
		Source:     sourceLabel(libraryName, chosen.IsGenerated),
	}, nil
}

// isNoTranscriptError recognizes the library's "nothing available" failures
// so they classify as the benign no-captions case instead of a hard error.
func isNoTranscriptError(err error) bool {
	message := strings.ToLower(err.Error())
	for _, token := range []string{
		"no transcript",
		"transcripts disabled",
		"subtitles are disabled",
		"could not retrieve a transcript",
	} {
		if strings.Contains(message, token) {
			return true
		}
	}
	return false
}
