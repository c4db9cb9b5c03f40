// Package captions normalizes raw caption payloads into transcript text.
//
// It decodes the two wire formats YouTube serves captions in (WebVTT cue
// blocks and timedtext XML) into an ordered sequence of timed segments, then
// merges those segments into paragraphs: rolling auto-caption cues repeat the
// trailing words of the previous cue, so naive concatenation doubles text.
// The merger strips that duplication with a bounded word-overlap comparison
// and breaks paragraphs at silence gaps.
//
// Parsers never fail on malformed input; a payload that cannot be decoded
// yields an empty segment sequence so callers can fall through to the next
// retrieval strategy.
package captions
