package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bookvault/internal/format"
	"bookvault/internal/openlibrary"
)

const (
	detailSubjectMax  = 8
	detailLanguageMax = 5
)

// renderDetail renders the full-record overlay. Each optional field is
// omitted entirely when absent - never rendered as an empty value.
func renderDetail(b openlibrary.Book, width, height int) string {
	innerWidth := width - 10
	if innerWidth > 72 {
		innerWidth = 72
	}
	if innerWidth < 24 {
		innerWidth = 24
	}

	var lines []string
	lines = append(lines, detailTitleStyle.Render(format.Truncate(b.Title, innerWidth)))
	lines = append(lines, "")

	lines = append(lines, detailField("Author(s)", format.AllAuthors(b.AuthorNames)))

	if b.HasYear() {
		lines = append(lines, detailField("Publication Year", fmt.Sprintf("%d", b.FirstPublishYear)))
	}
	if len(b.Publishers) > 0 {
		lines = append(lines, detailField("Publisher", b.Publishers[0]))
	}
	if len(b.Subjects) > 0 {
		lines = append(lines, detailLabelStyle.Render("Subjects"))
		lines = append(lines, renderTags(b.Subjects, detailSubjectMax, innerWidth))
	}
	if len(b.Languages) > 0 {
		lines = append(lines, detailLabelStyle.Render("Languages"))
		lines = append(lines, renderTags(format.LanguageNames(b.Languages, detailLanguageMax), detailLanguageMax, innerWidth))
	}
	if b.HasPages() {
		lines = append(lines, detailField("Pages", fmt.Sprintf("%d", b.PageCount)))
	}

	if coverURL, ok := openlibrary.CoverURL(b, openlibrary.CoverLarge); ok {
		lines = append(lines, detailField("Cover", coverURL))
	}
	if detailURL, ok := openlibrary.DetailURL(b); ok {
		lines = append(lines, "")
		lines = append(lines, linkStyle.Render("View on Open Library: "+detailURL))
	}

	lines = append(lines, "")
	lines = append(lines, cardMetaStyle.Render("[esc] close"))

	box := detailBoxStyle.Width(innerWidth + 4).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// detailField renders a labeled value on two lines.
func detailField(label, value string) string {
	return detailLabelStyle.Render(label) + "\n" + detailValueStyle.Render(value)
}

// renderTags renders up to max values as wrapped tag badges.
func renderTags(values []string, max, width int) string {
	if len(values) > max {
		values = values[:max]
	}

	var row, out []string
	rowWidth := 0
	for _, v := range values {
		tag := tagStyle.Render(format.Truncate(v, 28))
		w := lipgloss.Width(tag)
		if rowWidth+w > width && len(row) > 0 {
			out = append(out, strings.Join(row, ""))
			row, rowWidth = nil, 0
		}
		row = append(row, tag)
		rowWidth += w
	}
	if len(row) > 0 {
		out = append(out, strings.Join(row, ""))
	}
	return strings.Join(out, "\n")
}
