// BookVault - a terminal client for searching Open Library.
//
// Architecture overview:
//
//	internal/openlibrary - search API client, records, URL resolvers
//	internal/results     - pure filter/sort pipeline over fetched records
//	internal/ui          - Bubble Tea model/update/view
//
// All state is in-memory; only UI preferences persist between runs.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"bookvault/internal/config"
	"bookvault/internal/logging"
	"bookvault/internal/openlibrary"
	"bookvault/internal/ui"
)

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		logging.Warn("failed to load config, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	client := openlibrary.NewClient()
	app := ui.New(client, cfg)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("application error", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
