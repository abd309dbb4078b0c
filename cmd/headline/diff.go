package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/headliner/internal/export"
	"github.com/alexisbeaulieu97/headliner/internal/library"
	"github.com/alexisbeaulieu97/headliner/pkg/diff"
)

type diffOptions struct {
	format string
}

func newDiffCmd(flags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <id-a> <id-b>",
		Short: "Compare the exported code of two saved headlines",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, flags, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "css", "Artifact to compare: json, css, html or react")

	return cmd
}

func runDiff(cmd *cobra.Command, flags *rootFlags, idA, idB string, opts *diffOptions) error {
	f, err := export.ParseFormat(opts.format)
	if err != nil {
		return newCommandError("diff", "selecting format", err, "Use one of: json, css, html, react.")
	}

	app, err := openApp(cmd, flags, "diff", nil)
	if err != nil {
		return err
	}

	before, err := artifactFor(app.Library, idA, f)
	if err != nil {
		return err
	}
	after, err := artifactFor(app.Library, idB, f)
	if err != nil {
		return err
	}

	out, stats := diff.UnifiedWithStats(before, after, idA+"/"+f.Filename(), idB+"/"+f.Filename())
	if !stats.Changed() {
		fmt.Fprintf(cmd.OutOrStdout(), "No differences in %s.\n", f.Label())
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d line(s) added, %d line(s) removed\n", stats.Added, stats.Removed)
	return nil
}

func artifactFor(lib *library.Library, id string, f export.Format) (string, error) {
	entry, err := lib.Get(id)
	if err != nil {
		return "", newCommandError("diff", fmt.Sprintf("looking up headline %q", id), err, "Run 'headline list' to view saved headlines.")
	}
	artifacts, err := export.Generate(entry.Settings)
	if err != nil {
		return "", newCommandError("diff", fmt.Sprintf("generating %s for %q", f.Label(), id), err, "Report this issue with the saved headline that triggered it.")
	}
	return artifacts.Get(f), nil
}
