package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bookvault/internal/openlibrary"
	"bookvault/internal/results"
)

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// Detail overlay takes over when a record is selected.
	if m.selected != nil {
		return renderDetail(*m.selected, m.width, m.height)
	}

	visible := m.visible()

	var sections []string
	sections = append(sections, m.renderHeader(len(visible)))
	sections = append(sections, m.renderSearchBar())

	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render("⚠ "+m.errMsg))
	}

	// The loading indicator sits above any stale results instead of
	// clearing them.
	if m.loading {
		sections = append(sections, loadingStyle.Render(m.spin.View()+" Searching books..."))
	}

	body := m.renderBody(visible)
	sections = append(sections, body)

	sections = append(sections, m.renderStatusBar(len(visible)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader builds the top bar.
func (m Model) renderHeader(shown int) string {
	text := "  BOOKVAULT"
	if len(m.books) > 0 {
		text += fmt.Sprintf("  ·  found %d books", len(m.books))
		if shown != len(m.books) {
			text += fmt.Sprintf("  ·  showing %d", shown)
		}
	}
	if m.query != "" {
		text += fmt.Sprintf("  ·  %q in %s", m.query, m.mode)
	}
	return headerStyle.Width(m.width).Render(text)
}

// renderSearchBar builds the query input line with the mode indicator.
func (m Model) renderSearchBar() string {
	mode := sidebarLabelStyle.Render("[" + string(m.mode) + "]")
	return lipgloss.JoinHorizontal(lipgloss.Center, " ", mode, " ", m.input.View())
}

// renderBody joins the sidebar and results area.
func (m Model) renderBody(visible []openlibrary.Book) string {
	content := m.renderContent(visible)
	if !m.sidebarVisible() {
		return content
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), content)
}

// renderContent shows results, or the empty state matching the
// situation: nothing searched yet versus a search with no matches.
func (m Model) renderContent(visible []openlibrary.Book) string {
	if len(visible) > 0 {
		if m.view == viewGrid {
			return m.windowGrid(visible)
		}
		return m.windowList(visible)
	}

	if m.loading || m.errMsg != "" {
		return ""
	}

	if m.query == "" {
		return m.renderWelcome()
	}
	return m.renderNoResults()
}

// renderWelcome is the initial empty state.
func (m Model) renderWelcome() string {
	lines := []string{
		emptyTitleStyle.Render("Welcome to BookVault"),
		"",
		"Discover your next favorite book from millions of titles.",
		"Search by title, author, subject, or ISBN.",
		"",
		"Type a query and press enter to begin.",
	}
	return emptyStyle.Render(strings.Join(lines, "\n"))
}

// renderNoResults is the zero-matches empty state.
func (m Model) renderNoResults() string {
	lines := []string{
		emptyTitleStyle.Render("No Books Found"),
		"",
		fmt.Sprintf("We couldn't find any books matching %q.", m.query),
		"Try adjusting your search terms or a different search type.",
		"",
		"[c] clear search  [/] new search  [m] change mode",
	}
	return emptyStyle.Render(strings.Join(lines, "\n"))
}

// renderSidebar shows the presentation controls and their current values.
func (m Model) renderSidebar() string {
	var lines []string

	lines = append(lines, sidebarLabelStyle.Render("Search Type")+"  [m]")
	for _, mode := range openlibrary.Modes {
		style := sidebarInactiveStyle
		if mode == m.mode {
			style = sidebarActiveStyle
		}
		lines = append(lines, style.Render(string(mode)))
	}

	lines = append(lines, "")
	lines = append(lines, sidebarLabelStyle.Render("Sort By")+"  [s]")
	lines = append(lines, sidebarActiveStyle.Render(m.sortKey.Label()))

	lines = append(lines, "")
	lines = append(lines, sidebarLabelStyle.Render("Time Period")+"  [y]")
	lines = append(lines, sidebarActiveStyle.Render(m.period.Label()))

	if len(m.books) > 0 {
		shown := len(results.Derive(m.books, m.period, m.sortKey))
		lines = append(lines, "")
		lines = append(lines, sidebarInactiveStyle.Render(fmt.Sprintf("%d of %d books", shown, len(m.books))))
	}

	return sidebarStyle.Width(sidebarWidth - 2).Render(strings.Join(lines, "\n"))
}

// renderStatusBar builds the bottom key-hint bar.
func (m Model) renderStatusBar(shown int) string {
	if m.input.Focused() {
		return statusBarStyle.Width(m.width).Render("  [enter] search  [esc] browse results  [↑↓] history  [ctrl+c] quit")
	}
	text := "  [/] search  [m] mode  [s] sort  [y] period  [v] grid/list  [t] panel  [enter] details  [q] quit"
	if shown > 0 {
		text = fmt.Sprintf("  %d/%d ", m.cursor+1, shown) + "·" + text
	}
	return statusBarStyle.Width(m.width).Render(text)
}

// windowGrid renders the card grid, windowed so the cursor row stays on
// screen when results overflow the viewport.
func (m Model) windowGrid(visible []openlibrary.Book) string {
	cols := m.columns()
	rowsFit := m.resultHeight() / cardHeight
	if rowsFit < 1 {
		rowsFit = 1
	}

	cursorRow := m.cursor / cols
	firstRow := 0
	if cursorRow >= rowsFit {
		firstRow = cursorRow - rowsFit + 1
	}

	start := firstRow * cols
	end := (firstRow + rowsFit) * cols
	if end > len(visible) {
		end = len(visible)
	}

	return renderGrid(visible[start:end], m.cursor-start, m.contentWidth())
}

// windowList renders list rows, windowed around the cursor.
func (m Model) windowList(visible []openlibrary.Book) string {
	rowsFit := m.resultHeight()
	if rowsFit < 1 {
		rowsFit = 1
	}

	first := 0
	if m.cursor >= rowsFit {
		first = m.cursor - rowsFit + 1
	}

	end := first + rowsFit
	if end > len(visible) {
		end = len(visible)
	}

	return renderList(visible[first:end], m.cursor-first, m.contentWidth())
}

// resultHeight is the vertical space available to the results area:
// header, search bar, and status bar each take a line, plus any error or
// loading line currently showing.
func (m Model) resultHeight() int {
	h := m.height - 4
	if m.errMsg != "" {
		h--
	}
	if m.loading {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}
