package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/headliner/internal/preview"
	"github.com/alexisbeaulieu97/headliner/internal/settings"
	"github.com/alexisbeaulieu97/headliner/internal/style"
	"github.com/alexisbeaulieu97/headliner/internal/typewriter"
)

type previewOptions struct {
	configPath string
	animate    bool
	width      int
	interval   time.Duration
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a headline in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Headline configuration file (JSON or YAML)")
	cmd.Flags().BoolVar(&opts.animate, "animate", false, "Play the typewriter reveal before the final render")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Wrap the headline at this many columns")
	cmd.Flags().DurationVar(&opts.interval, "interval", typewriter.DefaultInterval, "Delay between typewriter characters")

	return cmd
}

func runPreview(cmd *cobra.Command, flags *rootFlags, opts *previewOptions) error {
	if opts.width < 0 {
		return newCommandError("preview", "validating width", fmt.Errorf("width must not be negative, got %d", opts.width), "Pass a positive --width or omit it.")
	}

	app, err := openApp(cmd, flags, "preview", nil)
	if err != nil {
		return err
	}

	cfg, err := loadSettings(app, opts.configPath, "preview")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	// Bound to the command output so color is only emitted to terminals.
	render := preview.TerminalOptions{Width: opts.width, Renderer: lipgloss.NewRenderer(out)}

	if opts.animate && cfg.AnimationType == settings.AnimationTypewriter {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		interactive := isTerminal(out)
		runner := typewriter.Runner{Interval: opts.interval}
		err := runner.Run(ctx, cfg.Text, func(prefix string) {
			frame := preview.Render(cfg, prefix).Text()
			if interactive {
				fmt.Fprintf(out, "\r\x1b[2K%s", frame)
			} else {
				fmt.Fprintln(out, frame)
			}
		})
		if interactive {
			fmt.Fprint(out, "\r\x1b[2K")
		}
		if err != nil {
			app.Log.Debug("Typewriter interrupted")
			return nil
		}
	} else if opts.animate {
		app.Log.With("animation", string(cfg.AnimationType)).Info("Only the typewriter animation plays in the terminal")
	}

	fmt.Fprintln(out, preview.Terminal(preview.Render(cfg, cfg.Text), render))
	st := cfg.Stats()
	fmt.Fprintf(out, "\nCharacters: %d  Words: %d  Font Size: %spx  Highlights: %d\n", st.Characters, st.Words, style.FormatNumber(st.FontSize), st.Highlights)
	return nil
}
