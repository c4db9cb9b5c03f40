package captions

import (
	"regexp"
	"strings"
)

// LongPauseSeconds is the silence gap beyond which consecutive cues are
// split into separate paragraphs.
const LongPauseSeconds = 1.5

// maxOverlapWords bounds the suffix/prefix comparison window when stripping
// rolling-caption duplication between consecutive cues.
const maxOverlapWords = 12

var (
	wordPattern    = regexp.MustCompile(`[A-Za-z0-9']+`)
	nonWordPattern = regexp.MustCompile(`[^A-Za-z0-9']+`)
)

// MergeSegments collapses an ordered segment sequence into paragraphs.
//
// Empty-text segments force a paragraph break, as does a silence gap longer
// than LongPauseSeconds. Within a paragraph, each new cue is compared against
// the previous fragment: exact repeats and strict subsets are dropped,
// supersets replace the previous fragment, and a shared word suffix/prefix of
// up to maxOverlapWords is stripped before appending. Non-overlapping text is
// preserved verbatim.
func MergeSegments(segments []Segment) []string {
	var paragraphs []string
	var current []string
	lastEnd := 0.0
	haveLastEnd := false

	flush := func() {
		if len(current) == 0 {
			return
		}
		paragraph := strings.TrimSpace(strings.Join(current, " "))
		if paragraph != "" {
			paragraphs = append(paragraphs, paragraph)
		}
		current = nil
	}

	for _, segment := range segments {
		if segment.Text == "" {
			flush()
			lastEnd = segment.End
			haveLastEnd = true
			continue
		}
		if haveLastEnd && segment.Start-lastEnd > LongPauseSeconds {
			flush()
		}
		current = mergeFragment(current, segment.Text)
		lastEnd = segment.End
		haveLastEnd = true
	}
	flush()

	return paragraphs
}

// TranscriptText merges segments and joins the paragraphs with blank lines.
// An entirely empty input yields an empty string.
func TranscriptText(segments []Segment) string {
	return strings.TrimSpace(strings.Join(MergeSegments(segments), "\n\n"))
}

// mergeFragment folds newText into the paragraph buffer, deduplicating
// against the buffer's last fragment.
func mergeFragment(current []string, newText string) []string {
	if newText == "" {
		return current
	}
	if len(current) == 0 {
		return append(current, newText)
	}

	lastText := current[len(current)-1]
	lastNorm := normalizeForCompare(lastText)
	newNorm := normalizeForCompare(newText)

	switch {
	case newNorm == "":
		return current
	case lastNorm == newNorm:
		// Exact repeat of the previous cue.
		return current
	case lastNorm != "" && strings.Contains(newNorm, lastNorm):
		// The new cue is a richer version of the previous one; keep it.
		current[len(current)-1] = newText
		return current
	case strings.Contains(lastNorm, newNorm):
		// Strictly contained, adds nothing.
		return current
	}

	trimmed := stripOverlap(lastText, newText)
	if trimmed == "" {
		return current
	}
	return append(current, trimmed)
}

// normalizeForCompare reduces text to lowercase word runs joined by single
// spaces, so punctuation and casing differences do not defeat deduplication.
func normalizeForCompare(text string) string {
	return strings.Join(wordPattern.FindAllString(strings.ToLower(text), -1), " ")
}

// stripOverlap removes from newText the longest run of up to maxOverlapWords
// words that duplicates the tail of previousText, comparing normalized word
// forms but returning raw words.
func stripOverlap(previousText, newText string) string {
	previousWords := strings.Fields(previousText)
	newWords := strings.Fields(newText)
	if len(previousWords) == 0 || len(newWords) == 0 {
		return newText
	}

	previousNorm := normalizeWords(previousWords)
	newNorm := normalizeWords(newWords)

	maxOverlap := min(len(previousNorm), len(newNorm))
	if maxOverlap > maxOverlapWords {
		maxOverlap = maxOverlapWords
	}
	for count := maxOverlap; count > 0; count-- {
		if equalWords(previousNorm[len(previousNorm)-count:], newNorm[:count]) {
			return strings.TrimSpace(strings.Join(newWords[count:], " "))
		}
	}
	return newText
}

func normalizeWords(words []string) []string {
	normalized := make([]string, len(words))
	for i, word := range words {
		normalized[i] = strings.ToLower(nonWordPattern.ReplaceAllString(word, ""))
	}
	return normalized
}

func equalWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
