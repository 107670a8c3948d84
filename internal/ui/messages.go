// Package ui provides the Bubble Tea TUI for BookVault.
package ui

import "bookvault/internal/openlibrary"

// searchResultMsg is sent when a search finishes, successfully or not.
// Seq ties the result to the search that started it: results from a
// superseded search carry a stale Seq and are discarded on arrival.
type searchResultMsg struct {
	Seq   int
	Query string
	Books []openlibrary.Book
	Err   error
}
