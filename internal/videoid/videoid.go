// Package videoid normalizes YouTube video references. It accepts bare
// 11-character IDs and the common URL shapes (watch, youtu.be, shorts, embed)
// and produces the canonical watch URL used by retrieval strategies.
package videoid

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ErrUnrecognized is returned when the input is neither a video ID nor a
// supported YouTube URL.
var ErrUnrecognized = errors.New("input must be a YouTube URL or 11-character video ID")

// Extract pulls a video ID out of a URL or bare ID string. The second return
// value is false when no ID could be recovered.
func Extract(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if idPattern.MatchString(value) {
		return value, true
	}

	parsed, err := url.Parse(value)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case host == "youtu.be" || host == "www.youtu.be":
		id := firstPathSegment(parsed.Path)
		return truncateID(id)
	case strings.Contains(host, "youtube.com"):
		if parsed.Path == "/watch" {
			if id := parsed.Query().Get("v"); id != "" {
				return truncateID(id)
			}
			return "", false
		}
		for _, prefix := range []string{"/shorts/", "/embed/"} {
			if strings.HasPrefix(parsed.Path, prefix) {
				return truncateID(strings.TrimPrefix(parsed.Path, prefix))
			}
		}
	}
	return "", false
}

// Canonical resolves the input to (videoID, watch URL).
func Canonical(value string) (string, string, error) {
	id, ok := Extract(value)
	if !ok {
		return "", "", ErrUnrecognized
	}
	return id, WatchURL(id), nil
}

// WatchURL returns the canonical watch-page URL for a video ID.
func WatchURL(id string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", id)
}

func firstPathSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if idx := strings.IndexByte(path, '/'); idx >= 0 {
		path = path[:idx]
	}
	return path
}

func truncateID(value string) (string, bool) {
	if idx := strings.IndexByte(value, '/'); idx >= 0 {
		value = value[:idx]
	}
	if len(value) > 11 {
		value = value[:11]
	}
	if !idPattern.MatchString(value) {
		return "", false
	}
	return value, true
}
