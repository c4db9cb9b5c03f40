package captions

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanText normalizes one cue's text: inline markup tags are removed, HTML
// entities decoded, the ">>" speaker-change marker replaced with a space, and
// runs of whitespace collapsed to single spaces.
func CleanText(value string) string {
	value = tagPattern.ReplaceAllString(value, "")
	value = html.UnescapeString(value)
	value = strings.ReplaceAll(value, ">>", " ")
	value = whitespacePattern.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

// LooksLikeXML reports whether a caption payload should be decoded as
// timedtext XML rather than as WebVTT cue blocks.
func LooksLikeXML(payload string) bool {
	return strings.HasPrefix(strings.TrimSpace(payload), "<")
}

// Parse decodes a payload using format sniffing: XML payloads go through
// ParseTimedText, everything else through ParseVTT.
func Parse(payload string) []Segment {
	if LooksLikeXML(payload) {
		return ParseTimedText(payload)
	}
	return ParseVTT(payload)
}
