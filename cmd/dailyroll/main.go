package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"dailyroll/internal/adapters/filesystem"
	"dailyroll/internal/adapters/sqlite"
	"dailyroll/internal/adapters/tui"
	"dailyroll/internal/config"
	"dailyroll/internal/ports"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the daily notes directory")
	flag.Parse()

	repo := filesystem.NewRepository(*vaultFlag)

	var journal ports.MergeJournal
	j := sqlite.NewJournal()
	if err := j.Open(repo.VaultPath()); err == nil {
		journal = j
		defer j.Close()
	} else {
		fmt.Fprintf(os.Stderr, "Warning: merge journal unavailable: %v\n", err)
	}

	app := tui.NewApp(repo, journal)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
