package tracks

import "testing"

func TestSelectPrefersManualExactMatch(t *testing.T) {
	catalog := []Track{
		{LanguageCode: "en", Name: "English", Kind: ""},
		{LanguageCode: "en", Name: "English (auto)", Kind: KindAutoGenerated},
		{LanguageCode: "en-US", Name: "English (US)", Kind: ""},
	}
	chosen, ok := Select(catalog, "en")
	if !ok {
		t.Fatal("expected a match")
	}
	if chosen.LanguageCode != "en" || chosen.IsGenerated() {
		t.Fatalf("expected the manual en track, got %+v", chosen)
	}
}

func TestSelectRegionVariant(t *testing.T) {
	catalog := []Track{
		{LanguageCode: "en-GB", Kind: KindAutoGenerated},
		{LanguageCode: "fr", Kind: ""},
	}
	chosen, ok := Select(catalog, "en")
	if !ok {
		t.Fatal("expected region-variant match")
	}
	if chosen.LanguageCode != "en-GB" {
		t.Fatalf("expected en-GB, got %+v", chosen)
	}
}

func TestSelectManualOutranksAutoAcrossVariants(t *testing.T) {
	catalog := []Track{
		{LanguageCode: "en", Kind: KindAutoGenerated},
		{LanguageCode: "en-US", Kind: ""},
	}
	chosen, ok := Select(catalog, "en")
	if !ok {
		t.Fatal("expected a match")
	}
	if chosen.IsGenerated() {
		t.Fatalf("expected manual track to win over shorter auto code, got %+v", chosen)
	}
}

func TestSelectNoMatchDistinctFromEmptyCatalog(t *testing.T) {
	catalog := []Track{{LanguageCode: "de", Kind: ""}}
	if _, ok := Select(catalog, "en"); ok {
		t.Fatal("expected no match for absent language")
	}
	if _, ok := Select(nil, "en"); ok {
		t.Fatal("expected no match for empty catalog")
	}
}

func TestSelectDeterministicTieBreak(t *testing.T) {
	catalog := []Track{
		{LanguageCode: "en-US", Kind: ""},
		{LanguageCode: "en", Kind: ""},
	}
	first, _ := Select(catalog, "en")
	for i := 0; i < 5; i++ {
		again, _ := Select(catalog, "en")
		if again != first {
			t.Fatalf("selection not deterministic: %+v vs %+v", again, first)
		}
	}
	if first.LanguageCode != "en" {
		t.Fatalf("expected shortest code to break the tie, got %+v", first)
	}
}

func TestMatchesCaseInsensitive(t *testing.T) {
	track := Track{LanguageCode: "EN-us"}
	if !track.Matches("en") {
		t.Fatal("expected case-insensitive region match")
	}
	if track.Matches("enx") {
		t.Fatal("expected prefix match to require a hyphen boundary")
	}
}
