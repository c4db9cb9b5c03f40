package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"

	"transcriptgrab/internal/logging"
)

func fakeLister(transcripts []yt_transcript_models.Transcript, err error) Lister {
	return listerFunc(func(videoID string, languages []string) ([]yt_transcript_models.Transcript, error) {
		return transcripts, err
	})
}

func transcriptLines(texts ...string) []yt_transcript_models.TranscriptLine {
	lines := make([]yt_transcript_models.TranscriptLine, 0, len(texts))
	for i, text := range texts {
		lines = append(lines, yt_transcript_models.TranscriptLine{
			Text:     text,
			Start:    float64(i),
			Duration: 1,
		})
	}
	return lines
}

func TestLibraryFetch(t *testing.T) {
	lister := fakeLister([]yt_transcript_models.Transcript{
		{LanguageCode: "en", IsGenerated: true, Lines: transcriptLines("hello there", "there friend")},
	}, nil)
	provider := NewLibrary(logging.NewNop(), WithLister(lister))

	result, err := provider.Fetch(context.Background(), "dQw4w9WgXcQ", "en")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if result.Transcript != "hello there friend" {
		t.Fatalf("expected overlap reconciled, got %q", result.Transcript)
	}
	if result.Source != "transcript-api-auto" {
		t.Fatalf("unexpected source %q", result.Source)
	}
}

func TestLibraryPrefersManualTrack(t *testing.T) {
	lister := fakeLister([]yt_transcript_models.Transcript{
		{LanguageCode: "en", IsGenerated: true, Lines: transcriptLines("auto words")},
		{LanguageCode: "en-GB", IsGenerated: false, Lines: transcriptLines("manual words")},
	}, nil)
	provider := NewLibrary(logging.NewNop(), WithLister(lister))

	result, err := provider.Fetch(context.Background(), "dQw4w9WgXcQ", "en")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if result.Transcript != "manual words" {
		t.Fatalf("expected manual region variant preferred, got %q", result.Transcript)
	}
	if result.Source != "transcript-api-manual" {
		t.Fatalf("unexpected source %q", result.Source)
	}
}

func TestLibraryNoLanguageMatch(t *testing.T) {
	lister := fakeLister([]yt_transcript_models.Transcript{
		{LanguageCode: "fr", Lines: transcriptLines("bonjour")},
	}, nil)
	provider := NewLibrary(logging.NewNop(), WithLister(lister))

	_, err := provider.Fetch(context.Background(), "dQw4w9WgXcQ", "en")
	if !errors.Is(err, ErrNoCaptions) {
		t.Fatalf("expected ErrNoCaptions, got %v", err)
	}
}

func TestLibraryDisabledTranscripts(t *testing.T) {
	lister := fakeLister(nil, errors.New("Subtitles are disabled for this video"))
	provider := NewLibrary(logging.NewNop(), WithLister(lister))

	_, err := provider.Fetch(context.Background(), "dQw4w9WgXcQ", "en")
	if !errors.Is(err, ErrNoCaptions) {
		t.Fatalf("expected ErrNoCaptions for disabled transcripts, got %v", err)
	}
}

func TestLibraryHardFailure(t *testing.T) {
	lister := fakeLister(nil, errors.New("unexpected response"))
	provider := NewLibrary(logging.NewNop(), WithLister(lister))

	_, err := provider.Fetch(context.Background(), "dQw4w9WgXcQ", "en")
	if !errors.Is(err, ErrPermanent) {
		t.Fatalf("expected ErrPermanent, got %v", err)
	}
}
