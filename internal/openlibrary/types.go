// Package openlibrary is a thin client for the Open Library search API.
//
// It handles query construction for the four search modes, response
// parsing, and derivation of cover image and detail page URLs. It does
// not cache or persist anything - every search is a fresh request.
package openlibrary

// Mode selects which field a search targets.
type Mode string

const (
	ModeTitle   Mode = "title"
	ModeAuthor  Mode = "author"
	ModeSubject Mode = "subject"
	ModeISBN    Mode = "isbn"
)

// Modes lists the search modes in display order.
var Modes = []Mode{ModeTitle, ModeAuthor, ModeSubject, ModeISBN}

// Book is a single search result.
// Every field except Title is optional; zero values mean "not present".
type Book struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorNames      []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	Publishers       []string `json:"publisher"`
	Subjects         []string `json:"subject"`
	Languages        []string `json:"language"`
	PageCount        int      `json:"number_of_pages_median"`
	CoverID          int64    `json:"cover_i"`
	ISBNs            []string `json:"isbn"`
	CoverEditionKey  string   `json:"cover_edition_key"`
	EditionKeys      []string `json:"edition_key"`
}

// HasYear reports whether the record carries a first-publish year.
func (b Book) HasYear() bool {
	return b.FirstPublishYear > 0
}

// HasPages reports whether the record carries a page count.
func (b Book) HasPages() bool {
	return b.PageCount > 0
}

// PrimaryLanguage returns the first language code, if any.
func (b Book) PrimaryLanguage() (string, bool) {
	if len(b.Languages) == 0 {
		return "", false
	}
	return b.Languages[0], true
}

// searchResponse is the wire shape of a search API reply.
// Only the docs array matters; a missing array is treated as empty.
type searchResponse struct {
	NumFound int    `json:"numFound"`
	Docs     []Book `json:"docs"`
}
