package studio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/headliner/internal/export"
	"github.com/alexisbeaulieu97/headliner/internal/preview"
	"github.com/alexisbeaulieu97/headliner/internal/settings"
	"github.com/alexisbeaulieu97/headliner/internal/style"
	"github.com/alexisbeaulieu97/headliner/internal/typewriter"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	switch m.viewMode {
	case ViewExport:
		return m.renderExportView()
	case ViewLibrary:
		return m.renderLibraryView()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderEditorView()
	}
}

func (m Model) renderEditorView() string {
	var content strings.Builder

	content.WriteString(m.renderHeader("Editor"))
	content.WriteString("\n")

	if m.showError {
		content.WriteString(m.renderErrorBanner())
		content.WriteString("\n")
	}

	content.WriteString(m.renderPreview())
	content.WriteString("\n")
	content.WriteString(m.renderStats())
	content.WriteString("\n\n")
	content.WriteString(m.renderControls())
	content.WriteString("\n")

	if m.inputMode != InputNone {
		content.WriteString("\n")
		content.WriteString(m.styles.input.Render(m.input.View()))
		content.WriteString("\n")
	}

	content.WriteString(m.renderFooter(m.keys.Help, m.keys.EditText, m.keys.Export, m.keys.Save, m.keys.Quit))
	return content.String()
}

func (m Model) renderHeader(section string) string {
	title := m.styles.title.Render("Headliner")
	sub := m.styles.subtitle.Render(section)
	if m.status != "" {
		sub += "  " + m.styles.status.Render(m.status)
	}
	return m.styles.header.Render(lipgloss.JoinHorizontal(lipgloss.Center, title, sub))
}

// renderPreview draws the live headline. The typewriter shows only the
// revealed prefix while it is running.
func (m Model) renderPreview() string {
	displayed := m.current.Text
	if m.current.AnimationType == settings.AnimationTypewriter && m.scheduler.State() != typewriter.Idle {
		displayed = m.scheduler.Displayed()
	}

	tree := preview.Render(m.current, displayed)
	body := preview.Terminal(tree, preview.TerminalOptions{Width: m.previewWidth()})
	return m.styles.previewBox.Width(m.previewWidth() + 4).Render(body)
}

func (m Model) renderStats() string {
	st := m.current.Stats()
	return m.styles.stats.Render(fmt.Sprintf("Characters: %d   Words: %d   Font Size: %spx   Highlights: %d",
		st.Characters, st.Words, style.FormatNumber(st.FontSize), st.Highlights))
}

func (m Model) renderControls() string {
	s := m.current
	rows := [][2]string{
		{"Animation", s.AnimationType.Label()},
		{"Font", fmt.Sprintf("%s, %s, %spx", s.FontFamily, settings.WeightLabel(s.FontWeight), style.FormatNumber(s.FontSize))},
		{"Align", string(s.TextAlign)},
		{"Gradient", m.gradientSummary()},
		{"Effects", effectsSummary(s)},
		{"Highlights", highlightSummary(s)},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, m.styles.label.Render(r[0])+m.styles.value.Render(r[1]))
	}
	return strings.Join(lines, "\n")
}

func (m Model) gradientSummary() string {
	s := m.current
	state := "off"
	if s.GradientEnabled {
		state = "on"
	}
	return fmt.Sprintf("%s, %s, %s", state, s.GradientDirection.Label(), strings.Join(s.GradientColors, " "))
}

func effectsSummary(s settings.HeadlineSettings) string {
	var parts []string
	if s.TextShadow {
		parts = append(parts, "shadow")
	}
	if s.TextOutline {
		parts = append(parts, "outline")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func highlightSummary(s settings.HeadlineSettings) string {
	if len(s.HighlightedWords) == 0 {
		return "none"
	}
	words := make([]string, len(s.HighlightedWords))
	for i, h := range s.HighlightedWords {
		words[i] = fmt.Sprintf("%s (%s)", h.Word, h.Style)
	}
	return strings.Join(words, ", ")
}

func (m Model) renderExportView() string {
	var content strings.Builder

	content.WriteString(m.renderHeader("Export"))
	content.WriteString("\n")

	if m.showError {
		content.WriteString(m.renderErrorBanner())
		content.WriteString("\n")
	}

	content.WriteString(m.renderTabs())
	content.WriteString("\n")
	content.WriteString(m.viewport.View())
	content.WriteString("\n")

	content.WriteString(m.renderFooter(m.keys.exportHelp()...))
	return content.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		label := fmt.Sprintf("%d %s", i+1, f.Label())
		if i == m.exportTab {
			tabs[i] = m.styles.activeTab.Render(label)
		} else {
			tabs[i] = m.styles.tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderLibraryView() string {
	var content strings.Builder

	content.WriteString(m.renderHeader("Saved Headlines"))
	content.WriteString("\n")

	if m.showError {
		content.WriteString(m.renderErrorBanner())
		content.WriteString("\n")
	}

	entries := []string{}
	if m.library != nil {
		for i, e := range m.library.List() {
			line := fmt.Sprintf("%s  %s", e.Name, m.styles.subtitle.Render(truncate(e.Settings.Text, 40)))
			if i == m.cursor {
				entries = append(entries, m.styles.selected.Render(line))
			} else {
				entries = append(entries, m.styles.item.Render(line))
			}
		}
	}

	if len(entries) == 0 {
		content.WriteString(m.styles.empty.Render("No saved headlines yet. Press S in the editor to save one."))
	} else {
		content.WriteString(strings.Join(entries, "\n"))
	}
	content.WriteString("\n")

	content.WriteString(m.renderFooter(m.keys.libraryHelp()...))
	return content.String()
}

func (m Model) renderHelpView() string {
	var content strings.Builder

	content.WriteString(m.renderHeader("Keyboard Shortcuts"))
	content.WriteString("\n")

	sections := []struct {
		title string
		keys  []string
	}{
		{"Editor", bindingLines(m.keys.editorHelp())},
		{"Export", bindingLines(m.keys.exportHelp())},
		{"Saved Headlines", bindingLines(m.keys.libraryHelp())},
	}

	for _, sec := range sections {
		content.WriteString(m.styles.title.Render(sec.title))
		content.WriteString("\n")
		for _, line := range sec.keys {
			content.WriteString("  ")
			content.WriteString(line)
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}

	content.WriteString(m.styles.subtitle.Render("Press ? or esc to return"))
	return content.String()
}

func (m Model) renderFooter(bindings ...key.Binding) string {
	return m.styles.footer.Render(m.help.ShortHelpView(bindings))
}

func (m Model) renderErrorBanner() string {
	return m.styles.errorBanner.Render("Error: " + m.errorMsg + "  (x to dismiss)")
}

func bindingLines(bindings []key.Binding) []string {
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-8s %s", h.Key, h.Desc))
	}
	return lines
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
