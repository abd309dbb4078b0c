package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/headliner/internal/export"
	"github.com/alexisbeaulieu97/headliner/internal/studio"
)

func newStudioCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Launch the interactive headline studio",
		Long:  `Launch the terminal studio to edit the live headline, preview it, save snapshots and export code.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStudio(cmd, flags)
		},
	}

	return cmd
}

func runStudio(cmd *cobra.Command, flags *rootFlags) error {
	dir, err := resolveDataDir(flags)
	if err != nil {
		return newCommandError("launch studio", "determining data directory", err, "Ensure your HOME directory is set correctly or pass --data-dir.")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newCommandError("launch studio", "creating data directory", err, dataDirSuggestion)
	}

	// The alt screen owns the terminal, so the studio logs to a file.
	logFile, err := os.OpenFile(studioLogPath(dir), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return newCommandError("launch studio", "opening studio log", err, dataDirSuggestion)
	}
	defer logFile.Close()

	app, err := openApp(cmd, flags, "launch studio", logFile)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return newCommandError("launch studio", "determining download directory", err, "Run the studio from a readable working directory.")
	}

	if !export.ClipboardAvailable() {
		app.Log.Warn("No clipboard utility found; copy will fail, downloads still work")
	}

	m := studio.NewModel(studio.Options{
		Session:   app.Session,
		Library:   app.Library,
		Deliverer: export.NewDeliverer(export.SystemClipboard{}, cwd, app.Log),
		Store:     app.Store,
		Logger:    app.Log,
	})

	app.Log.With("saved", app.Library.Len()).Info("Launching studio")

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		app.Log.Error(err, "Studio execution failed")
		return fmt.Errorf("failed to run studio: %w", err)
	}

	app.Log.Info("Studio closed")
	return nil
}
