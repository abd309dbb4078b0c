package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/headliner/internal/library"
	"github.com/alexisbeaulieu97/headliner/internal/logger"
	"github.com/alexisbeaulieu97/headliner/internal/session"
	"github.com/alexisbeaulieu97/headliner/internal/store"
)

// appContext bundles the long-lived services a command works with.
type appContext struct {
	DataDir string
	Log     *logger.Logger
	Store   *store.FileStore
	Session *session.Session
	Library *library.Library
}

// suggestion shared by every failure to open the data directory
const dataDirSuggestion = "Check that the data directory is writable, or point --data-dir or HEADLINER_HOME elsewhere."

// openApp resolves the data directory and opens the session and library.
// Logs go to w, or to stderr when w is nil.
func openApp(cmd *cobra.Command, flags *rootFlags, operation string, w io.Writer) (*appContext, error) {
	dir, err := resolveDataDir(flags)
	if err != nil {
		return nil, newCommandError(operation, "determining data directory", err, "Ensure your HOME directory is set correctly or pass --data-dir.")
	}

	if w == nil {
		w = cmd.ErrOrStderr()
	}
	log, err := newLogger(flags, w, operation)
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Report this issue.")
	}

	st, err := store.NewFileStore(dir)
	if err != nil {
		return nil, newCommandError(operation, "opening data directory", err, dataDirSuggestion)
	}

	lib, err := library.Open(st)
	if err != nil {
		return nil, newCommandError(operation, "loading saved headlines", err, "Inspect or remove saved-headlines.json in the data directory.")
	}

	log.With("data_dir", dir).Debug("Opened data directory")

	return &appContext{
		DataDir: dir,
		Log:     log,
		Store:   st,
		Session: session.Open(st, log),
		Library: lib,
	}, nil
}

func newLogger(flags *rootFlags, w io.Writer, component string) (*logger.Logger, error) {
	level := "info"
	if flags != nil && flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        w,
		Component:     component,
	})
}
