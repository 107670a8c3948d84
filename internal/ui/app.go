package ui

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bookvault/internal/config"
	"bookvault/internal/logging"
	"bookvault/internal/openlibrary"
	"bookvault/internal/results"
)

// viewMode selects how results are laid out.
type viewMode int

const (
	viewGrid viewMode = iota
	viewList
)

const (
	sidebarWidth = 30
	// narrowWidth is the viewport width below which the sidebar hides
	// regardless of the user's toggle.
	narrowWidth = 80
	cardHeight  = 6
)

// User-facing messages. HTTP status codes are logged, never shown.
const (
	msgEmptyQuery  = "Please enter a search term."
	msgOffline     = "No internet connection. Please check your network and try again."
	msgRateLimited = "Too many requests. Please wait a moment and try again."
	msgGeneric     = "Unable to fetch books at this time. Please try again later."
)

// Model is the root Bubble Tea model. It owns all mutable state: the
// query input, search mode, loading flag, error message, raw result set,
// presentation controls, and the selected record. Results reach it only
// via searchResultMsg - the model never blocks on the network itself.
type Model struct {
	client *openlibrary.Client
	cfg    *config.Config

	input   textinput.Model
	spin    spinner.Model
	mode    openlibrary.Mode
	sortKey results.SortKey
	period  results.Period
	view    viewMode

	query    string             // last submitted query
	books    []openlibrary.Book // raw result set from the last completed search
	cursor   int
	selected *openlibrary.Book // non-nil while the detail overlay is open

	loading bool
	errMsg  string

	showSidebar bool
	width       int
	height      int

	// searchSeq tags each submitted search; cancel aborts the in-flight
	// one. Together they guarantee a superseded search can neither land
	// nor leak.
	searchSeq int
	cancel    context.CancelFunc

	history []string
	histPos int // -1 = not browsing history
	draft   string
}

// New creates the root model from a search client and loaded preferences.
func New(client *openlibrary.Client, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Search books..."
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	ti.CharLimit = 120
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	m := Model{
		client:      client,
		cfg:         cfg,
		input:       ti,
		spin:        sp,
		mode:        openlibrary.ModeTitle,
		sortKey:     results.SortRelevance,
		period:      results.PeriodAll,
		view:        viewGrid,
		showSidebar: true,
		histPos:     -1,
	}

	if cfg != nil {
		if cfg.UI.ViewMode == "list" {
			m.view = viewList
		}
		m.mode = openlibrary.Mode(cfg.UI.SearchMode)
		m.showSidebar = cfg.UI.ShowSidebar
	}

	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 20
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case searchResultMsg:
		return m.handleSearchResult(msg)
	}

	return m, nil
}

// handleSearchResult applies a finished search to the model.
func (m Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	// A result from a superseded search is stale: a newer search owns the
	// result set now, no matter which response arrived first.
	if msg.Seq != m.searchSeq {
		logging.Debug("discarding stale search result", "seq", msg.Seq, "current", m.searchSeq)
		return m, nil
	}

	m.loading = false
	m.cancel = nil

	if msg.Err != nil {
		if errors.Is(msg.Err, context.Canceled) {
			// Cancelled by a newer search or by quitting; nothing to show.
			return m, nil
		}
		m.books = nil
		m.cursor = 0
		m.errMsg = userMessage(msg.Err)
		logSearchError(msg.Query, msg.Err)
		return m, nil
	}

	m.books = msg.Books
	m.cursor = 0
	m.selected = nil
	m.errMsg = ""
	logging.Info("search complete", "query", msg.Query, "results", len(msg.Books))
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	// Detail overlay swallows keys until dismissed.
	if m.selected != nil {
		switch msg.String() {
		case "esc", "enter", "q":
			m.selected = nil
		}
		return m, nil
	}

	if m.input.Focused() {
		return m.handleInputKey(msg)
	}

	return m.handleBrowseKey(msg)
}

// handleInputKey processes keys while the query input is focused.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()

	case "esc":
		m.input.Blur()
		return m, nil

	case "up":
		m.recallHistory(-1)
		return m, nil

	case "down":
		m.recallHistory(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleBrowseKey processes keys while browsing results.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()

	switch msg.String() {
	case "q":
		return m.quit()

	case "/", "i":
		m.input.Focus()
		return m, textinput.Blink

	case "m":
		m.mode = nextMode(m.mode)

	case "s":
		m.sortKey = nextSortKey(m.sortKey)
		m.cursor = 0

	case "y":
		m.period = nextPeriod(m.period)
		m.cursor = 0

	case "v":
		if m.view == viewGrid {
			m.view = viewList
		} else {
			m.view = viewGrid
		}

	case "t":
		m.showSidebar = !m.showSidebar

	case "c":
		m.clearQuery()

	case "r":
		if m.query != "" {
			m.input.SetValue(m.query)
			return m.submit()
		}

	case "down", "j":
		m.moveCursor(m.stride(), len(visible))

	case "up", "k":
		m.moveCursor(-m.stride(), len(visible))

	case "right", "l":
		if m.view == viewGrid {
			m.moveCursor(1, len(visible))
		}

	case "left", "h":
		if m.view == viewGrid {
			m.moveCursor(-1, len(visible))
		}

	case "g", "home":
		m.cursor = 0

	case "G", "end":
		if len(visible) > 0 {
			m.cursor = len(visible) - 1
		}

	case "enter":
		if m.cursor >= 0 && m.cursor < len(visible) {
			book := visible[m.cursor]
			m.selected = &book
		}
	}

	return m, nil
}

// submit validates the query and launches the search. Any in-flight
// search is cancelled first so a slow earlier response can never
// overwrite a newer one.
func (m Model) submit() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.errMsg = msgEmptyQuery
		return m, nil
	}

	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.searchSeq++

	m.loading = true
	m.errMsg = ""
	m.query = query
	m.selected = nil
	m.pushHistory(query)
	m.input.Blur()

	seq := m.searchSeq
	client := m.client
	mode := m.mode
	logging.Info("search submitted", "query", query, "mode", string(mode))

	search := func() tea.Msg {
		books, err := client.Search(ctx, query, mode)
		return searchResultMsg{Seq: seq, Query: query, Books: books, Err: err}
	}

	return m, tea.Batch(m.spin.Tick, search)
}

// clearQuery resets the query, result set, and error to their initial
// state. An in-flight search is cancelled and its result discarded.
func (m *Model) clearQuery() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.searchSeq++
	m.loading = false
	m.input.SetValue("")
	m.query = ""
	m.books = nil
	m.cursor = 0
	m.selected = nil
	m.errMsg = ""
}

// quit cancels any in-flight search, persists preferences, and exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	if m.cfg != nil {
		if m.view == viewList {
			m.cfg.UI.ViewMode = "list"
		} else {
			m.cfg.UI.ViewMode = "grid"
		}
		m.cfg.UI.SearchMode = string(m.mode)
		m.cfg.UI.ShowSidebar = m.showSidebar
		if err := m.cfg.Save(); err != nil {
			logging.Warn("failed to save config", "error", err)
		}
	}
	return m, tea.Quit
}

// visible derives the displayed result set from the raw one. The set is
// at most one page, so recomputing per call is cheaper than caching.
func (m Model) visible() []openlibrary.Book {
	return results.Derive(m.books, m.period, m.sortKey)
}

// stride is how far up/down moves the cursor: one row of cards in grid
// view, one row in list view.
func (m Model) stride() int {
	if m.view == viewGrid {
		return m.columns()
	}
	return 1
}

// columns is how many cards fit one grid row at the current width.
func (m Model) columns() int {
	cols := m.contentWidth() / (cardWidth + 2)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// contentWidth is the width left for results after the sidebar.
func (m Model) contentWidth() int {
	if m.sidebarVisible() {
		return m.width - sidebarWidth
	}
	return m.width
}

// sidebarVisible folds the user toggle with the narrow-viewport rule.
func (m Model) sidebarVisible() bool {
	return m.showSidebar && m.width >= narrowWidth
}

// moveCursor shifts the cursor by delta, clamped to the visible set.
func (m *Model) moveCursor(delta, count int) {
	if count == 0 {
		m.cursor = 0
		return
	}
	next := m.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= count {
		next = count - 1
	}
	m.cursor = next
}

// pushHistory records a submitted query, skipping consecutive repeats.
func (m *Model) pushHistory(query string) {
	if n := len(m.history); n > 0 && m.history[n-1] == query {
		m.histPos = -1
		return
	}
	m.history = append(m.history, query)
	m.histPos = -1
}

// recallHistory walks previously submitted queries while the input is
// focused. Direction -1 goes back, +1 forward; walking past the newest
// entry restores the unsubmitted draft.
func (m *Model) recallHistory(direction int) {
	if len(m.history) == 0 {
		return
	}

	if m.histPos == -1 {
		if direction > 0 {
			return
		}
		m.draft = m.input.Value()
		m.histPos = len(m.history) - 1
	} else {
		m.histPos += direction
		if m.histPos >= len(m.history) {
			m.histPos = -1
			m.input.SetValue(m.draft)
			m.input.CursorEnd()
			return
		}
		if m.histPos < 0 {
			m.histPos = 0
		}
	}

	m.input.SetValue(m.history[m.histPos])
	m.input.CursorEnd()
}

// nextMode cycles through the search modes.
func nextMode(mode openlibrary.Mode) openlibrary.Mode {
	for i, c := range openlibrary.Modes {
		if c == mode {
			return openlibrary.Modes[(i+1)%len(openlibrary.Modes)]
		}
	}
	return openlibrary.ModeTitle
}

// nextSortKey cycles through the sort orderings.
func nextSortKey(key results.SortKey) results.SortKey {
	for i, c := range results.SortKeys {
		if c == key {
			return results.SortKeys[(i+1)%len(results.SortKeys)]
		}
	}
	return results.SortRelevance
}

// nextPeriod cycles through the time-period buckets.
func nextPeriod(period results.Period) results.Period {
	for i, c := range results.Periods {
		if c == period {
			return results.Periods[(i+1)%len(results.Periods)]
		}
	}
	return results.PeriodAll
}

// userMessage maps a search failure to the message shown to the user.
// Status codes and raw errors stay in the log.
func userMessage(err error) string {
	var netErr *openlibrary.NetworkError
	if errors.As(err, &netErr) {
		if netErr.Offline {
			return msgOffline
		}
		return msgGeneric
	}

	var httpErr *openlibrary.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Status == http.StatusTooManyRequests {
			return msgRateLimited
		}
		return msgGeneric
	}

	if errors.Is(err, openlibrary.ErrEmptyQuery) {
		return msgEmptyQuery
	}

	return msgGeneric
}

// logSearchError records the failure with full detail.
func logSearchError(query string, err error) {
	var httpErr *openlibrary.HTTPError
	if errors.As(err, &httpErr) {
		logging.Error("search failed", "query", query, "status", httpErr.Status, "status_text", httpErr.StatusText)
		return
	}
	logging.Error("search failed", "query", query, "error", err)
}

// Cursor returns the current cursor position (for testing).
func (m Model) Cursor() int {
	return m.cursor
}

// Books returns the raw result set (for testing).
func (m Model) Books() []openlibrary.Book {
	return m.books
}

// ErrorMessage returns the current error message (for testing).
func (m Model) ErrorMessage() string {
	return m.errMsg
}

// Loading reports whether a search is outstanding (for testing).
func (m Model) Loading() bool {
	return m.loading
}

// Selected returns the record shown in the detail overlay (for testing).
func (m Model) Selected() *openlibrary.Book {
	return m.selected
}
