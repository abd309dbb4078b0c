package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/headliner/internal/library"
)

const listTextWidth = 40

type listOptions struct {
	jsonOutput bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved headlines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	app, err := openApp(cmd, flags, "list", nil)
	if err != nil {
		return err
	}

	entries := app.Library.List()

	if opts.jsonOutput {
		return renderListJSON(cmd, entries)
	}

	if len(entries) == 0 {
		return renderEmptyList(cmd)
	}

	return renderListTable(cmd, entries)
}

func renderEmptyList(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), "No saved headlines yet.")
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'headline save' to save the live headline.")
	return nil
}

func renderListTable(cmd *cobra.Command, entries []library.Entry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tNAME\tANIMATION\tTEXT")

	for _, e := range entries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			e.ID,
			valueOrFallback(e.Name, "(no name)"),
			e.Settings.AnimationType.Label(),
			truncateText(e.Settings.Text, listTextWidth),
		)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Version   string          `json:"version"`
	Count     int             `json:"count"`
	Headlines []library.Entry `json:"headlines"`
}

func renderListJSON(cmd *cobra.Command, entries []library.Entry) error {
	payload := listJSONPayload{
		Version:   "1.0",
		Count:     len(entries),
		Headlines: entries,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

func truncateText(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
