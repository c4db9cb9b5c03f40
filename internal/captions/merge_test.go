package captions

import (
	"fmt"
	"strings"
	"testing"
)

func TestMergeSegmentsIdempotentWithoutOverlap(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 1, Text: "completely distinct opening"},
		{Start: 1, End: 2, Text: "another different middle"},
		{Start: 2, End: 3, Text: "and a closing thought"},
	}
	paragraphs := MergeSegments(segments)
	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	want := "completely distinct opening another different middle and a closing thought"
	if paragraphs[0] != want {
		t.Fatalf("merge altered non-overlapping content:\n got %q\nwant %q", paragraphs[0], want)
	}
}

func TestMergeSegmentsStripsOverlap(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 2, Text: "the quick brown fox"},
		{Start: 2, End: 4, Text: "brown fox jumps over"},
	}
	paragraphs := MergeSegments(segments)
	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	if paragraphs[0] != "the quick brown fox jumps over" {
		t.Fatalf("expected 2-word overlap removed, got %q", paragraphs[0])
	}
}

func TestMergeSegmentsOverlapLengths(t *testing.T) {
	// Build a vocabulary of distinct words so only the intended overlap matches.
	words := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		words = append(words, fmt.Sprintf("word%d", i))
	}
	for overlap := 1; overlap <= maxOverlapWords; overlap++ {
		first := words[:20]
		second := words[20-overlap : 20+10]
		segments := []Segment{
			{Start: 0, End: 1, Text: strings.Join(first, " ")},
			{Start: 1, End: 2, Text: strings.Join(second, " ")},
		}
		paragraphs := MergeSegments(segments)
		if len(paragraphs) != 1 {
			t.Fatalf("overlap %d: expected 1 paragraph, got %d", overlap, len(paragraphs))
		}
		want := strings.Join(words[:30], " ")
		if paragraphs[0] != want {
			t.Fatalf("overlap %d: got %q, want %q", overlap, paragraphs[0], want)
		}
	}
}

func TestMergeSegmentsSupersetReplaces(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 1, Text: "hello world"},
		{Start: 1, End: 2, Text: "hello world again"},
	}
	paragraphs := MergeSegments(segments)
	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	if paragraphs[0] != "hello world again" {
		t.Fatalf("expected superset to replace previous fragment, got %q", paragraphs[0])
	}
}

func TestMergeSegmentsSubsetDiscarded(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 1, Text: "hello world again"},
		{Start: 1, End: 2, Text: "world again"},
	}
	paragraphs := MergeSegments(segments)
	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	if paragraphs[0] != "hello world again" {
		t.Fatalf("expected contained cue discarded, got %q", paragraphs[0])
	}
}

func TestMergeSegmentsExactRepeatDiscarded(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 1, Text: "Hello, world!"},
		{Start: 1, End: 2, Text: "hello world"},
	}
	paragraphs := MergeSegments(segments)
	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	if paragraphs[0] != "Hello, world!" {
		t.Fatalf("expected punctuation-insensitive repeat dropped, got %q", paragraphs[0])
	}
}

func TestMergeSegmentsPauseSplitting(t *testing.T) {
	long := []Segment{
		{Start: 0, End: 1, Text: "before the pause"},
		{Start: 2.6, End: 3.6, Text: "after the pause"},
	}
	if paragraphs := MergeSegments(long); len(paragraphs) != 2 {
		t.Fatalf("expected gap > %.1fs to split paragraphs, got %v", LongPauseSeconds, paragraphs)
	}

	short := []Segment{
		{Start: 0, End: 1, Text: "before the gap"},
		{Start: 2.5, End: 3.5, Text: "after the gap"},
	}
	if paragraphs := MergeSegments(short); len(paragraphs) != 1 {
		t.Fatalf("expected gap of exactly %.1fs to stay in one paragraph, got %v", LongPauseSeconds, paragraphs)
	}
}

func TestMergeSegmentsEmptyTextForcesBreak(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 1, Text: "first thought"},
		{Start: 1, End: 1.2, Text: ""},
		{Start: 1.3, End: 2, Text: "second thought"},
	}
	paragraphs := MergeSegments(segments)
	if len(paragraphs) != 2 {
		t.Fatalf("expected pause marker to break paragraphs, got %v", paragraphs)
	}
}

func TestTranscriptText(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 1, Text: "first paragraph"},
		{Start: 5, End: 6, Text: "second paragraph"},
	}
	got := TranscriptText(segments)
	want := "first paragraph\n\nsecond paragraph"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if TranscriptText(nil) != "" {
		t.Fatal("expected empty input to yield empty transcript")
	}
}
