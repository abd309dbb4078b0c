package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type saveOptions struct {
	name string
}

func newSaveCmd(flags *rootFlags) *cobra.Command {
	opts := &saveOptions{}

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a snapshot of the live headline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Name for the snapshot (default \"Headline N\")")

	return cmd
}

func runSave(cmd *cobra.Command, flags *rootFlags, opts *saveOptions) error {
	app, err := openApp(cmd, flags, "save", nil)
	if err != nil {
		return err
	}

	entry, err := app.Library.Save(app.Session.Current())
	if err != nil {
		return newCommandError("save", "saving snapshot", err, dataDirSuggestion)
	}

	if name := strings.TrimSpace(opts.name); name != "" {
		if err := app.Library.Rename(entry.ID, name); err != nil {
			return newCommandError("save", "naming snapshot", err, "Rename it later with a new save, or remove it.")
		}
		entry.Name = name
	}

	app.Log.With("id", entry.ID).Debug("Saved snapshot")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved '%s' (%s)\n", entry.Name, entry.ID)
	return nil
}
