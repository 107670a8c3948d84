package results

import (
	"testing"

	"bookvault/internal/openlibrary"
)

const testYear = 2026

func titles(books []openlibrary.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func equalTitles(t *testing.T, books []openlibrary.Book, want ...string) {
	t.Helper()
	got := titles(books)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPeriodIncludes(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		year   int
		want   bool
	}{
		{"all includes missing year", PeriodAll, 0, true},
		{"all includes any year", PeriodAll, 1888, true},
		{"recent boundary inclusive", PeriodRecent, testYear - 10, true},
		{"recent excludes older", PeriodRecent, testYear - 11, false},
		{"recent excludes missing year", PeriodRecent, 0, false},
		{"modern lower bound exclusive", PeriodModern, 1950, false},
		{"modern includes 1951", PeriodModern, 1951, true},
		{"modern upper bound exclusive", PeriodModern, testYear - 10, false},
		{"modern includes just below window", PeriodModern, testYear - 11, true},
		{"modern excludes missing year", PeriodModern, 0, false},
		{"classic includes 1950", PeriodClassic, 1950, true},
		{"classic excludes 1951", PeriodClassic, 1951, false},
		{"classic excludes missing year", PeriodClassic, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.period.Includes(tt.year, testYear); got != tt.want {
				t.Errorf("%v.Includes(%d, %d) = %v, want %v", tt.period, tt.year, testYear, got, tt.want)
			}
		})
	}
}

func TestDeriveFiltersByPeriod(t *testing.T) {
	books := []openlibrary.Book{
		{Title: "Fresh", FirstPublishYear: testYear - 2},
		{Title: "Midcentury", FirstPublishYear: 1975},
		{Title: "Old", FirstPublishYear: 1920},
		{Title: "Undated"},
	}

	equalTitles(t, deriveAt(books, PeriodAll, SortRelevance, testYear),
		"Fresh", "Midcentury", "Old", "Undated")
	equalTitles(t, deriveAt(books, PeriodRecent, SortRelevance, testYear), "Fresh")
	equalTitles(t, deriveAt(books, PeriodModern, SortRelevance, testYear), "Midcentury")
	equalTitles(t, deriveAt(books, PeriodClassic, SortRelevance, testYear), "Old")
}

func TestDeriveSortExamples(t *testing.T) {
	books := []openlibrary.Book{
		{Title: "Ember", FirstPublishYear: 1999},
		{Title: "Ash", FirstPublishYear: 2001},
	}

	equalTitles(t, deriveAt(books, PeriodAll, SortYearAsc, testYear), "Ember", "Ash")
	equalTitles(t, deriveAt(books, PeriodAll, SortYearDesc, testYear), "Ash", "Ember")
	equalTitles(t, deriveAt(books, PeriodAll, SortTitle, testYear), "Ash", "Ember")
}

func TestDeriveSortByAuthor(t *testing.T) {
	books := []openlibrary.Book{
		{Title: "Third", AuthorNames: []string{"Zelazny, Roger"}},
		{Title: "Second", AuthorNames: []string{"herbert, frank"}},
		{Title: "First"}, // no author sorts first
	}

	equalTitles(t, deriveAt(books, PeriodAll, SortAuthor, testYear),
		"First", "Second", "Third")
}

func TestDeriveSortIsCaseInsensitive(t *testing.T) {
	books := []openlibrary.Book{
		{Title: "zen"},
		{Title: "Apple"},
		{Title: "apricot"},
	}

	equalTitles(t, deriveAt(books, PeriodAll, SortTitle, testYear),
		"Apple", "apricot", "zen")
}

func TestDeriveStableOnEqualKeys(t *testing.T) {
	books := []openlibrary.Book{
		{Title: "Same", Key: "/works/1", FirstPublishYear: 1999},
		{Title: "Same", Key: "/works/2", FirstPublishYear: 1999},
		{Title: "Same", Key: "/works/3", FirstPublishYear: 1999},
	}

	sorted := deriveAt(books, PeriodAll, SortTitle, testYear)
	for i, want := range []string{"/works/1", "/works/2", "/works/3"} {
		if sorted[i].Key != want {
			t.Fatalf("stability broken: position %d has %s, want %s", i, sorted[i].Key, want)
		}
	}
}

func TestDeriveMissingYearSortsAsZero(t *testing.T) {
	books := []openlibrary.Book{
		{Title: "Dated", FirstPublishYear: 1980},
		{Title: "Undated"},
	}

	equalTitles(t, deriveAt(books, PeriodAll, SortYearAsc, testYear), "Undated", "Dated")
	equalTitles(t, deriveAt(books, PeriodAll, SortYearDesc, testYear), "Dated", "Undated")
}

func TestDeriveRelevanceKeepsUpstreamOrder(t *testing.T) {
	books := []openlibrary.Book{
		{Title: "Zeta", FirstPublishYear: 2001},
		{Title: "Alpha", FirstPublishYear: 1999},
	}

	equalTitles(t, deriveAt(books, PeriodAll, SortRelevance, testYear), "Zeta", "Alpha")
}

func TestDeriveIsIdempotentAndPure(t *testing.T) {
	books := []openlibrary.Book{
		{Title: "B", FirstPublishYear: 2001},
		{Title: "A", FirstPublishYear: 1999},
	}

	first := deriveAt(books, PeriodAll, SortTitle, testYear)
	second := deriveAt(books, PeriodAll, SortTitle, testYear)

	equalTitles(t, first, "A", "B")
	equalTitles(t, second, "A", "B")

	// Input order untouched.
	equalTitles(t, books, "B", "A")
}

func TestDeriveEmptyInput(t *testing.T) {
	derived := deriveAt(nil, PeriodClassic, SortTitle, testYear)
	if derived == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(derived) != 0 {
		t.Errorf("expected 0 books, got %d", len(derived))
	}
}

func TestLabels(t *testing.T) {
	if PeriodAll.Label() != "All Years" || PeriodClassic.Label() != "Classic" {
		t.Error("unexpected period labels")
	}
	if SortRelevance.Label() != "Relevance" || SortYearDesc.Label() != "Newest First" {
		t.Error("unexpected sort labels")
	}
}
