package language

import (
	"reflect"
	"testing"
)

func TestToCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// 2-letter codes pass through
		{"en", "en"},
		{"EN", "en"},
		{"es", "es"},
		// 3-letter codes convert
		{"eng", "en"},
		{"spa", "es"},
		{"fra", "fr"},
		{"fre", "fr"},
		{"deu", "de"},
		{"ger", "de"},
		{"jpn", "ja"},
		{"zho", "zh"},
		{"chi", "zh"},
		{"dut", "nl"},
		// Word forms
		{"english", "en"},
		{"French", "fr"},
		{"GERMAN", "de"},
		{"chinese", "zh"},
		// Region-qualified tags reduce to the base code
		{"en-US", "en"},
		{"pt-BR", "pt"},
		// Unknown 2-letter passes through
		{"xy", "xy"},
		// Unknown 3-letter returns empty
		{"xyz", ""},
		// Empty
		{"", ""},
		{" ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ToCode(tt.input)
			if result != tt.expected {
				t.Errorf("ToCode(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "English"},
		{"de", "German"},
		{"en-GB", "British English"},
		{"pt-BR", "Brazilian Portuguese"},
		{"", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := DisplayName(tt.input)
			if result != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeList(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"mixed forms", []string{"English", "eng", "fr", "FRENCH", "de"}, []string{"en", "fr", "de"}},
		{"drops unrecognized", []string{"xyz", "en"}, []string{"en"}},
		{"region variants collapse", []string{"en-US", "en"}, []string{"en"}},
		{"empty input", nil, nil},
		{"blank entries", []string{"", "  "}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeList(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("NormalizeList(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
