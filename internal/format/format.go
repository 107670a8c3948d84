// Package format derives display strings from raw record fields.
// Pure functions only - absence of a field yields a fallback string,
// never an error.
package format

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// UnknownAuthor is shown when a record carries no author names.
const UnknownAuthor = "Unknown Author"

// cardAuthorLimit is how many authors a card shows before cutting off.
const cardAuthorLimit = 2

// Authors joins the first two author names for card display.
func Authors(names []string) string {
	if len(names) == 0 {
		return UnknownAuthor
	}
	if len(names) > cardAuthorLimit {
		names = names[:cardAuthorLimit]
	}
	return strings.Join(names, ", ")
}

// AllAuthors joins the full author list for the detail view.
func AllAuthors(names []string) string {
	if len(names) == 0 {
		return UnknownAuthor
	}
	return strings.Join(names, ", ")
}

// Truncate shortens a string to max runes, adding "..." if truncated.
// Rune-aware so multi-byte titles are not cut mid-character.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// LanguageName maps an Open Library language code to a readable name,
// e.g. "eng" to "English". Codes the language matcher cannot parse fall
// back to the uppercased code.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToUpper(code)
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return strings.ToUpper(code)
	}
	return name
}

// LanguageNames maps up to max codes to display names.
func LanguageNames(codes []string, max int) []string {
	if len(codes) > max {
		codes = codes[:max]
	}
	names := make([]string, len(codes))
	for i, code := range codes {
		names[i] = LanguageName(code)
	}
	return names
}
