package tracks

import (
	"sort"
	"strings"
)

// KindAutoGenerated is the kind value YouTube uses to mark machine-transcribed
// caption tracks. Human-authored tracks carry an empty kind.
const KindAutoGenerated = "asr"

// Track describes one available caption stream.
type Track struct {
	// LanguageCode is the BCP-47-ish code reported by the provider,
	// e.g. "en" or "en-US".
	LanguageCode string
	// Name is the display label, possibly empty.
	Name string
	// Kind is empty for human-authored tracks and KindAutoGenerated for
	// machine transcriptions.
	Kind string
	// SourceURL is the opaque locator used to fetch the caption payload.
	SourceURL string
}

// IsGenerated reports whether the track is machine-transcribed.
func (t Track) IsGenerated() bool {
	return t.Kind == KindAutoGenerated
}

// Matches reports whether the track serves the requested language, either
// exactly or as a region variant (requested "en" matches "en-US").
func (t Track) Matches(lang string) bool {
	code := strings.ToLower(strings.TrimSpace(t.LanguageCode))
	lang = strings.ToLower(strings.TrimSpace(lang))
	if code == "" || lang == "" {
		return false
	}
	return code == lang || strings.HasPrefix(code, lang+"-")
}

// Select returns the best track for the requested language. The second
// return value is false when no track matches; callers distinguish that from
// an empty catalog by checking len(catalog) themselves.
func Select(catalog []Track, lang string) (Track, bool) {
	candidates := make([]Track, 0, len(catalog))
	for _, track := range catalog {
		if track.Matches(lang) {
			candidates = append(candidates, track)
		}
	}
	if len(candidates) == 0 {
		return Track{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.IsGenerated() != b.IsGenerated() {
			return !a.IsGenerated()
		}
		ai := strings.ToLower(a.LanguageCode)
		bi := strings.ToLower(b.LanguageCode)
		if len(ai) != len(bi) {
			return len(ai) < len(bi)
		}
		return ai < bi
	})

	return candidates[0], true
}
