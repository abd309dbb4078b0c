package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/headliner/internal/library"
	"github.com/alexisbeaulieu97/headliner/internal/settings"
	"github.com/alexisbeaulieu97/headliner/internal/style"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved headline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the saved headline as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, id string, opts *showOptions) error {
	if strings.TrimSpace(id) == "" {
		return newCommandError("show", "validating headline ID", errors.New("headline ID cannot be empty"), "Provide the ID you wish to inspect.")
	}

	app, err := openApp(cmd, flags, "show", nil)
	if err != nil {
		return err
	}

	entry, err := app.Library.Get(id)
	if err != nil {
		return newCommandError("show", fmt.Sprintf("looking up headline %q", id), err, "Run 'headline list' to view saved headlines.")
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entry)
	}

	return renderShowTable(cmd, entry)
}

func renderShowTable(cmd *cobra.Command, entry library.Entry) error {
	out := cmd.OutOrStdout()
	s := entry.Settings

	fmt.Fprintf(out, "Headline:  %s\n", entry.ID)
	fmt.Fprintf(out, "Name:      %s\n", valueOrFallback(entry.Name, "(no name)"))
	fmt.Fprintf(out, "Saved:     %s\n", formatSavedAt(entry.ID))
	fmt.Fprintf(out, "\nText:\n  %s\n\n", valueOrFallback(s.Text, "(empty)"))

	fmt.Fprintf(out, "Font:      %s, %s, %spx\n", s.FontFamily, settings.WeightLabel(s.FontWeight), style.FormatNumber(s.FontSize))
	fmt.Fprintf(out, "Align:     %s\n", s.TextAlign)
	fmt.Fprintf(out, "Color:     %s on %s\n", s.Color, s.BackgroundColor)
	if s.GradientEnabled {
		fmt.Fprintf(out, "Gradient:  %s (%s)\n", strings.Join(s.GradientColors, ", "), s.GradientDirection.Label())
	} else {
		fmt.Fprintf(out, "Gradient:  off\n")
	}
	fmt.Fprintf(out, "Shadow:    %s\n", onOff(s.TextShadow))
	fmt.Fprintf(out, "Outline:   %s\n", onOff(s.TextOutline))
	fmt.Fprintf(out, "Animation: %s (%ss, delay %ss)\n", s.AnimationType.Label(), style.FormatNumber(s.AnimationDuration), style.FormatNumber(s.AnimationDelay))

	if len(s.HighlightedWords) > 0 {
		fmt.Fprintf(out, "Highlights:\n")
		for _, h := range s.HighlightedWords {
			fmt.Fprintf(out, "  - %s (%s)\n", h.Word, h.Style)
		}
	}

	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// formatSavedAt recovers the save time from an entry id, ignoring any
// collision suffix.
func formatSavedAt(id string) string {
	ts, err := time.Parse(time.RFC3339Nano, id)
	if err != nil {
		if i := strings.LastIndex(id, "-"); i > 0 {
			ts, err = time.Parse(time.RFC3339Nano, id[:i])
		}
	}
	if err != nil {
		return "unknown"
	}
	return fmt.Sprintf("%s (%s)", ts.Format(time.RFC3339), formatRelativeTime(ts))
}

func formatRelativeTime(ts time.Time) string {
	delta := time.Since(ts)
	if delta < time.Minute {
		return "just now"
	}
	if delta < time.Hour {
		return fmt.Sprintf("%d minutes ago", int(delta.Minutes()))
	}
	if delta < 24*time.Hour {
		return fmt.Sprintf("%d hours ago", int(delta.Hours()))
	}

	return fmt.Sprintf("%d days ago", int(delta.Hours()/24))
}
