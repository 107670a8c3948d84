package openlibrary

import "fmt"

// coversBaseURL is the image-serving endpoint. It is keyed by an
// identifier kind (id, isbn, olid) and a size code.
const coversBaseURL = "https://covers.openlibrary.org/b"

// CoverSize is one of the fixed display sizes the covers endpoint accepts.
type CoverSize string

const (
	CoverSmall  CoverSize = "S"
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

// CoverURL derives a cover image URL from the record's identifier fields.
//
// Resolution order: numeric cover id, first ISBN, cover edition key, first
// edition key. Returns false when the record carries no usable source; the
// caller must substitute a placeholder.
func CoverURL(b Book, size CoverSize) (string, bool) {
	switch {
	case b.CoverID != 0:
		return fmt.Sprintf("%s/id/%d-%s.jpg", coversBaseURL, b.CoverID, size), true
	case len(b.ISBNs) > 0 && b.ISBNs[0] != "":
		return fmt.Sprintf("%s/isbn/%s-%s.jpg", coversBaseURL, b.ISBNs[0], size), true
	case b.CoverEditionKey != "":
		return fmt.Sprintf("%s/olid/%s-%s.jpg", coversBaseURL, b.CoverEditionKey, size), true
	case len(b.EditionKeys) > 0 && b.EditionKeys[0] != "":
		return fmt.Sprintf("%s/olid/%s-%s.jpg", coversBaseURL, b.EditionKeys[0], size), true
	}
	return "", false
}

// DetailURL derives the human-facing detail page URL for a record.
// Returns false when the record has no key; the affordance is then omitted.
func DetailURL(b Book) (string, bool) {
	if b.Key == "" {
		return "", false
	}
	return "https://openlibrary.org" + b.Key, true
}
