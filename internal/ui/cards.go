package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bookvault/internal/format"
	"bookvault/internal/openlibrary"
)

const (
	cardWidth     = 26
	cardTitleMax  = 22
	cardAuthorMax = 22
	listTitleMax  = 48
	listAuthorMax = 30
)

// renderGrid lays result cards out in rows of columns that fit the width.
func renderGrid(books []openlibrary.Book, cursor, width int) string {
	if len(books) == 0 {
		return ""
	}

	columns := width / (cardWidth + 2)
	if columns < 1 {
		columns = 1
	}

	var rows []string
	for start := 0; start < len(books); start += columns {
		end := start + columns
		if end > len(books) {
			end = len(books)
		}

		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(books[i], i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one book as a bordered card.
func renderCard(b openlibrary.Book, selected bool) string {
	var lines []string

	lines = append(lines, renderCoverBadge(b))
	lines = append(lines, cardTitleStyle.Render(format.Truncate(b.Title, cardTitleMax)))
	lines = append(lines, cardAuthorStyle.Render(format.Truncate(format.Authors(b.AuthorNames), cardAuthorMax)))
	lines = append(lines, renderCardMeta(b))

	frame := cardStyle
	if selected {
		frame = cardSelectedStyle
	}
	return frame.Width(cardWidth).Render(strings.Join(lines, "\n"))
}

// renderCoverBadge shows whether a cover image exists for the record.
// When no identifier field can produce a cover URL the card falls back to
// a placeholder marker instead of an image.
func renderCoverBadge(b openlibrary.Book) string {
	if _, ok := openlibrary.CoverURL(b, openlibrary.CoverMedium); ok {
		return coverBadgeStyle.Render("▦ cover")
	}
	return coverMissingStyle.Render("□ no cover")
}

// renderCardMeta builds the year/language footer of a card.
// Both fields are optional and simply omitted when absent.
func renderCardMeta(b openlibrary.Book) string {
	var parts []string
	if b.HasYear() {
		parts = append(parts, cardMetaStyle.Render(fmt.Sprintf("%d", b.FirstPublishYear)))
	}
	if lang, ok := b.PrimaryLanguage(); ok {
		parts = append(parts, langBadgeStyle.Render(strings.ToUpper(lang)))
	}
	if len(parts) == 0 {
		return cardMetaStyle.Render("—")
	}
	return strings.Join(parts, "  ")
}

// renderList renders results as single-line rows.
func renderList(books []openlibrary.Book, cursor, width int) string {
	if len(books) == 0 {
		return ""
	}

	rows := make([]string, 0, len(books))
	for i, b := range books {
		rows = append(rows, renderRow(b, i == cursor, width))
	}
	return strings.Join(rows, "\n")
}

// renderRow renders one book as a list row.
func renderRow(b openlibrary.Book, selected bool, width int) string {
	title := format.Truncate(b.Title, listTitleMax)
	authors := format.Truncate(format.Authors(b.AuthorNames), listAuthorMax)

	row := fmt.Sprintf("%s · %s", title, authors)
	if b.HasYear() {
		row += fmt.Sprintf(" (%d)", b.FirstPublishYear)
	}
	if lang, ok := b.PrimaryLanguage(); ok {
		row += " " + strings.ToUpper(lang)
	}

	style := listNormalStyle
	if selected {
		style = listSelectedStyle
	}
	if width > 4 {
		row = format.Truncate(row, width-4)
	}
	return style.Render(row)
}
