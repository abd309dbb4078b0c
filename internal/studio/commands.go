package studio

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/headliner/internal/export"
)

// StatusDuration is how long "Copied!" and "Saved" stay visible.
const StatusDuration = 2 * time.Second

// copyCmd copies an artifact off the update loop.
func copyCmd(d *export.Deliverer, f export.Format, content string) tea.Cmd {
	return func() tea.Msg {
		return DeliveredMsg{Result: d.Copy(f, content)}
	}
}

// downloadCmd writes an artifact file off the update loop.
func downloadCmd(d *export.Deliverer, f export.Format, content string) tea.Cmd {
	return func() tea.Msg {
		return DeliveredMsg{Result: d.Download(f, content)}
	}
}

// clearStatusCmd expires the status identified by gen.
func clearStatusCmd(gen int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ClearStatusMsg{Gen: gen}
	})
}
