package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorAccent    = lipgloss.Color("39")  // Blue
	colorWarn      = lipgloss.Color("214") // Amber
)

// headerStyle for the top bar.
var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// statusBarStyle for the bottom status bar.
var statusBarStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// errorStyle for the error panel.
var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// loadingStyle for the searching indicator shown above stale results.
var loadingStyle = lipgloss.NewStyle().
	Foreground(colorAccent).
	Padding(0, 1)

// emptyStyle for welcome and no-results panels.
var emptyStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(1, 2)

// emptyTitleStyle for the headline of empty-state panels.
var emptyTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// sidebarStyle frames the controls panel.
var sidebarStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1)

// sidebarLabelStyle for control group labels.
var sidebarLabelStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)

// sidebarActiveStyle for the currently selected control value.
var sidebarActiveStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// sidebarInactiveStyle for unselected control values.
var sidebarInactiveStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// cardStyle frames one result card in grid view.
var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1)

// cardSelectedStyle frames the card under the cursor.
var cardSelectedStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorHighlight).
	Padding(0, 1)

// cardTitleStyle for book titles on cards.
var cardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// cardAuthorStyle for author lines on cards.
var cardAuthorStyle = lipgloss.NewStyle().
	Foreground(colorSecondary)

// cardMetaStyle for year and language on cards.
var cardMetaStyle = lipgloss.NewStyle().
	Foreground(colorMuted)

// coverBadgeStyle marks cards that have a resolvable cover image.
var coverBadgeStyle = lipgloss.NewStyle().
	Foreground(colorAccent)

// coverMissingStyle marks cards falling back to the placeholder.
var coverMissingStyle = lipgloss.NewStyle().
	Foreground(colorMuted)

// listSelectedStyle for the highlighted row in list view.
var listSelectedStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// listNormalStyle for unselected rows in list view.
var listNormalStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// langBadgeStyle for the language code badge.
var langBadgeStyle = lipgloss.NewStyle().
	Foreground(colorWarn)

// detailBoxStyle frames the detail overlay.
var detailBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(colorPrimary).
	Padding(1, 2)

// detailTitleStyle for the overlay heading.
var detailTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)

// detailLabelStyle for field labels in the overlay.
var detailLabelStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorAccent)

// detailValueStyle for field values in the overlay.
var detailValueStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255"))

// tagStyle for subject and language tags.
var tagStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("238")).
	Padding(0, 1).
	MarginRight(1)

// linkStyle for the outbound detail page link.
var linkStyle = lipgloss.NewStyle().
	Foreground(colorAccent).
	Underline(true)
