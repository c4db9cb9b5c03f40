package captions

import (
	"regexp"
	"strconv"
	"strings"
)

var cueTimingPattern = regexp.MustCompile(
	`(\d{2}:\d{2}(?::\d{2})?\.\d{3})\s*-->\s*(\d{2}:\d{2}(?::\d{2})?\.\d{3})`,
)

// ParseVTT decodes a WebVTT-style cue-block payload into ordered segments.
//
// Blocks are separated by blank lines. A numeric cue index line is ignored,
// the timing line sets the segment bounds, and all remaining lines form the
// cue text (joined with single spaces, then cleaned). NOTE, STYLE, and REGION
// blocks are skipped whole. A payload with no cue blocks yields nil.
func ParseVTT(payload string) []Segment {
	var segments []Segment
	var cueLines []string
	var cueStart, cueEnd float64
	inCue := false
	skipBlock := false

	flush := func() {
		if !inCue {
			return
		}
		text := ""
		if len(cueLines) > 0 {
			text = CleanText(strings.Join(cueLines, " "))
		}
		segments = append(segments, Segment{Start: cueStart, End: cueEnd, Text: text})
	}

	for _, raw := range strings.Split(payload, "\n") {
		line := strings.Trim(raw, "\ufeff")
		line = strings.TrimRight(line, " \t\r")
		stripped := strings.TrimSpace(line)

		if stripped == "" {
			flush()
			cueLines = nil
			inCue = false
			skipBlock = false
			continue
		}
		if skipBlock {
			continue
		}
		if strings.HasPrefix(stripped, "WEBVTT") {
			continue
		}
		if strings.HasPrefix(stripped, "NOTE") || strings.HasPrefix(stripped, "STYLE") || strings.HasPrefix(stripped, "REGION") {
			skipBlock = true
			continue
		}
		if isCueIndex(stripped) {
			continue
		}
		if match := cueTimingPattern.FindStringSubmatch(stripped); match != nil {
			cueStart = parseCueTimestamp(match[1])
			cueEnd = parseCueTimestamp(match[2])
			if cueEnd < cueStart {
				cueEnd = cueStart
			}
			inCue = true
			cueLines = nil
			continue
		}
		if !inCue {
			continue
		}
		cueLines = append(cueLines, stripped)
	}
	flush()

	return segments
}

// parseCueTimestamp converts "HH:MM:SS.mmm" (hours optional) to seconds.
func parseCueTimestamp(value string) float64 {
	parts := strings.Split(value, ":")
	var hours, minutes int
	var secPart string
	if len(parts) == 2 {
		minutes, _ = strconv.Atoi(parts[0])
		secPart = parts[1]
	} else {
		hours, _ = strconv.Atoi(parts[0])
		minutes, _ = strconv.Atoi(parts[1])
		secPart = parts[2]
	}
	secFields := strings.SplitN(secPart, ".", 2)
	seconds, _ := strconv.Atoi(secFields[0])
	millis := 0
	if len(secFields) == 2 {
		millis, _ = strconv.Atoi(secFields[1])
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000
}

func isCueIndex(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
