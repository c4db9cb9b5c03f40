package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"transcriptgrab/internal/captions"
	"transcriptgrab/internal/fetch"
	"transcriptgrab/internal/tracks"
)

// captionTrackJSON mirrors the captionTracks entries embedded in watch pages
// and player API responses. The display name arrives as simpleText on the web
// surface and as runs on the innertube surface.
type captionTrackJSON struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
	Name         struct {
		SimpleText string `json:"simpleText"`
		Runs       []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"name"`
}

func (c captionTrackJSON) displayName() string {
	if c.Name.SimpleText != "" {
		return c.Name.SimpleText
	}
	var parts []string
	for _, run := range c.Name.Runs {
		if run.Text != "" {
			parts = append(parts, run.Text)
		}
	}
	return strings.Join(parts, "")
}

// decodeTrackList converts raw captionTracks JSON into the track model.
func decodeTrackList(raw []byte) ([]tracks.Track, error) {
	var entries []captionTrackJSON
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode caption track list: %w", err)
	}
	catalog := make([]tracks.Track, 0, len(entries))
	for _, entry := range entries {
		if entry.BaseURL == "" || entry.LanguageCode == "" {
			continue
		}
		catalog = append(catalog, tracks.Track{
			LanguageCode: entry.LanguageCode,
			Name:         entry.displayName(),
			Kind:         entry.Kind,
			SourceURL:    entry.BaseURL,
		})
	}
	return catalog, nil
}

// extractJSONArray returns the balanced JSON array that starts at the first
// '[' after marker, honoring strings and escapes. ok is false when the marker
// or a balanced array cannot be found.
func extractJSONArray(body, marker string) (string, bool) {
	idx := strings.Index(body, marker)
	if idx < 0 {
		return "", false
	}
	rest := body[idx+len(marker):]
	open := strings.IndexByte(rest, '[')
	if open < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := open; i < len(rest); i++ {
		ch := rest[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return rest[open : i+1], true
			}
		}
	}
	return "", false
}

// fetchTrackTranscript downloads a track's payload, parses it by shape, and
// merges the segments into paragraph text. An empty string means the track
// had no usable text.
func fetchTrackTranscript(ctx context.Context, client *fetch.Client, track tracks.Track) (string, error) {
	payload, err := client.Get(ctx, track.SourceURL)
	if err != nil {
		return "", err
	}
	return captions.TranscriptText(captions.Parse(payload)), nil
}

// sourceLabel builds the conventional "<provider>-auto" / "<provider>-manual"
// origin label.
func sourceLabel(provider string, generated bool) string {
	if generated {
		return provider + "-auto"
	}
	return provider + "-manual"
}
