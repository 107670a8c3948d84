package format

import "testing"

func TestAuthors(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		expected string
	}{
		{"no authors", nil, UnknownAuthor},
		{"empty slice", []string{}, UnknownAuthor},
		{"single author", []string{"Frank Herbert"}, "Frank Herbert"},
		{"two authors", []string{"Larry Niven", "Jerry Pournelle"}, "Larry Niven, Jerry Pournelle"},
		{"three authors cut to two", []string{"A", "B", "C"}, "A, B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authors(tt.names); got != tt.expected {
				t.Errorf("Authors(%v) = %q, want %q", tt.names, got, tt.expected)
			}
		})
	}
}

func TestAllAuthors(t *testing.T) {
	got := AllAuthors([]string{"A", "B", "C"})
	if got != "A, B, C" {
		t.Errorf("AllAuthors = %q", got)
	}
	if AllAuthors(nil) != UnknownAuthor {
		t.Error("expected fallback for missing authors")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"hi", 2, "hi"},
		{"hi", 1, "h"},
		{"", 5, ""},
		{"日本語のタイトルです", 6, "日本語..."},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.max); got != tt.expected {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
		}
	}
}

func TestLanguageName(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"eng", "English"},
		{"spa", "Spanish"},
		{"deu", "German"},
		{"zzzz!", "ZZZZ!"}, // unparseable falls back to uppercase
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := LanguageName(tt.code); got != tt.expected {
				t.Errorf("LanguageName(%q) = %q, want %q", tt.code, got, tt.expected)
			}
		})
	}
}

func TestLanguageNamesLimit(t *testing.T) {
	names := LanguageNames([]string{"eng", "spa", "deu", "ita", "por", "rus"}, 5)
	if len(names) != 5 {
		t.Errorf("expected 5 names, got %d", len(names))
	}
	if names[0] != "English" {
		t.Errorf("expected English first, got %q", names[0])
	}
}
