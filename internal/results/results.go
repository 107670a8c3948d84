// Package results derives the displayed result set from raw search
// results. All functions are pure: books in, books out. No side effects,
// no network - the pipeline only reshapes what the last search returned.
package results

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bookvault/internal/openlibrary"
)

// Period is a first-publish-year bucket.
type Period int

const (
	PeriodAll Period = iota
	PeriodRecent
	PeriodModern
	PeriodClassic
)

// Periods lists the buckets in cycle order.
var Periods = []Period{PeriodAll, PeriodRecent, PeriodModern, PeriodClassic}

// classicCutoff is the last year counted as "classic".
const classicCutoff = 1950

// recentWindow is how many years back "recent" reaches.
const recentWindow = 10

// Label returns the bucket's display name.
func (p Period) Label() string {
	switch p {
	case PeriodRecent:
		return "Recent"
	case PeriodModern:
		return "Modern"
	case PeriodClassic:
		return "Classic"
	default:
		return "All Years"
	}
}

// Includes reports whether a first-publish year falls in the bucket,
// relative to currentYear. A missing year (<= 0) is included only by
// PeriodAll.
func (p Period) Includes(year, currentYear int) bool {
	if p == PeriodAll {
		return true
	}
	if year <= 0 {
		return false
	}
	switch p {
	case PeriodRecent:
		return year >= currentYear-recentWindow
	case PeriodModern:
		return year > classicCutoff && year < currentYear-recentWindow
	case PeriodClassic:
		return year <= classicCutoff
	}
	return true
}

// SortKey selects the display ordering.
type SortKey int

const (
	SortRelevance SortKey = iota
	SortTitle
	SortAuthor
	SortYearDesc
	SortYearAsc
)

// SortKeys lists the orderings in cycle order.
var SortKeys = []SortKey{SortRelevance, SortTitle, SortAuthor, SortYearDesc, SortYearAsc}

// Label returns the ordering's display name.
func (k SortKey) Label() string {
	switch k {
	case SortTitle:
		return "Title A-Z"
	case SortAuthor:
		return "Author A-Z"
	case SortYearDesc:
		return "Newest First"
	case SortYearAsc:
		return "Oldest First"
	default:
		return "Relevance"
	}
}

// collator compares titles and authors case-insensitively, the way a
// reader would expect them shelved. Not safe for concurrent use; the UI
// runs the pipeline from a single goroutine.
var collator = collate.New(language.English, collate.IgnoreCase)

// Derive filters the raw result set by period and orders it by key.
// It returns a new slice and never mutates the input. Relevance keeps the
// upstream ranking; all orderings are stable with respect to equal keys.
func Derive(books []openlibrary.Book, period Period, key SortKey) []openlibrary.Book {
	return deriveAt(books, period, key, time.Now().Year())
}

func deriveAt(books []openlibrary.Book, period Period, key SortKey, currentYear int) []openlibrary.Book {
	derived := make([]openlibrary.Book, 0, len(books))
	for _, b := range books {
		if period.Includes(b.FirstPublishYear, currentYear) {
			derived = append(derived, b)
		}
	}

	switch key {
	case SortTitle:
		sort.SliceStable(derived, func(i, j int) bool {
			return collator.CompareString(derived[i].Title, derived[j].Title) < 0
		})
	case SortAuthor:
		sort.SliceStable(derived, func(i, j int) bool {
			return collator.CompareString(firstAuthor(derived[i]), firstAuthor(derived[j])) < 0
		})
	case SortYearDesc:
		sort.SliceStable(derived, func(i, j int) bool {
			return derived[i].FirstPublishYear > derived[j].FirstPublishYear
		})
	case SortYearAsc:
		sort.SliceStable(derived, func(i, j int) bool {
			return derived[i].FirstPublishYear < derived[j].FirstPublishYear
		})
	}

	return derived
}

// firstAuthor returns the primary author for comparison, or "" which
// sorts first.
func firstAuthor(b openlibrary.Book) string {
	if len(b.AuthorNames) == 0 {
		return ""
	}
	return b.AuthorNames[0]
}
