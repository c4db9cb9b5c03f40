package captions

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ParseTimedText decodes a timedtext XML payload into ordered segments.
//
// Any element carrying a numeric "start" and "dur" (or "duration") attribute
// becomes a segment; its character data, including data inside nested word
// elements, forms the cue text. Malformed XML yields nil rather than an
// error, so callers treat it as "no usable captions from this payload".
func ParseTimedText(payload string) []Segment {
	decoder := xml.NewDecoder(strings.NewReader(payload))

	var segments []Segment
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		startSec, dur, ok := timedAttrs(start)
		if !ok {
			continue
		}
		text, err := collectText(decoder)
		if err != nil {
			return nil
		}
		segments = append(segments, Segment{
			Start: startSec,
			End:   startSec + dur,
			Text:  CleanText(text),
		})
	}
	return segments
}

// timedAttrs extracts start and duration seconds from a caption element.
func timedAttrs(elem xml.StartElement) (start, dur float64, ok bool) {
	hasStart := false
	hasDur := false
	for _, attr := range elem.Attr {
		switch attr.Name.Local {
		case "start":
			value, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
			if err != nil {
				return 0, 0, false
			}
			start = value
			hasStart = true
		case "dur", "duration":
			value, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
			if err != nil {
				return 0, 0, false
			}
			dur = value
			hasDur = true
		}
	}
	return start, dur, hasStart && hasDur
}

// collectText consumes tokens until the element that opened the current
// depth closes, concatenating all character data along the way.
func collectText(decoder *xml.Decoder) (string, error) {
	var builder strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			builder.Write(t)
		}
	}
	return builder.String(), nil
}
