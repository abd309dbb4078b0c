package studio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/headliner/internal/export"
	"github.com/alexisbeaulieu97/headliner/internal/settings"
	"github.com/alexisbeaulieu97/headliner/internal/typewriter"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case typewriter.TickMsg:
		return m, m.scheduler.Update(msg)

	case DeliveredMsg:
		return m.handleDelivered(msg.Result)

	case ClearStatusMsg:
		if msg.Gen == m.statusGen {
			m.status = ""
		}
		return m, nil

	case ErrorMsg:
		m.fail(msg.Message)
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	if m.inputMode != InputNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress routes keyboard input based on the current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.inputMode != InputNone {
		return m.handleInputKeys(msg)
	}

	if m.showError && (key.Matches(msg, m.keys.Dismiss) || key.Matches(msg, m.keys.Back)) {
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	switch m.viewMode {
	case ViewExport:
		return m.handleExportKeys(msg)
	case ViewLibrary:
		return m.handleLibraryKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleEditorKeys(msg)
	}
}

// handleEditorKeys maps the control panel onto single keystrokes.
func (m Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.prevMode = m.viewMode
		m.viewMode = ViewHelp
		return m, nil

	case key.Matches(msg, k.EditText):
		return m.beginInput(InputText, "Headline text", m.current.Text)

	case key.Matches(msg, k.Highlight):
		return m.beginInput(InputHighlight, "Word to highlight", "")

	case key.Matches(msg, k.DropMark):
		n := len(m.current.HighlightedWords)
		if n == 0 {
			return m, nil
		}
		return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
			return s.RemoveHighlight(n - 1)
		})

	case key.Matches(msg, k.Animation):
		return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
			s.AnimationType = cycle(settings.Animations, s.AnimationType)
			return s
		})

	case key.Matches(msg, k.Replay):
		m.scheduler.Stop()
		return m, m.scheduler.Sync(m.current.AnimationType, m.current.Text)

	case key.Matches(msg, k.Align):
		return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
			s.TextAlign = cycle(settings.Alignments, s.TextAlign)
			return s
		})

	case key.Matches(msg, k.Font):
		return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
			s.FontFamily = cycle(settings.FontFamilies, s.FontFamily)
			return s
		})

	case key.Matches(msg, k.Weight):
		return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
			s.FontWeight = cycle(settings.FontWeights, s.FontWeight)
			return s
		})

	case key.Matches(msg, k.Direction):
		return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
			s.GradientDirection = cycle(settings.GradientDirections, s.GradientDirection)
			return s
		})

	case key.Matches(msg, k.Gradient):
		return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
			s.GradientEnabled = !s.GradientEnabled
			return s
		})

	case key.Matches(msg, k.Shadow):
		return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
			s.TextShadow = !s.TextShadow
			return s
		})

	case key.Matches(msg, k.Outline):
		return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
			s.TextOutline = !s.TextOutline
			return s
		})

	case key.Matches(msg, k.Bigger):
		return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
			s.FontSize = min(s.FontSize+fontSizeStep, maxFontSize)
			return s
		})

	case key.Matches(msg, k.Smaller):
		return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
			s.FontSize = max(s.FontSize-fontSizeStep, minFontSize)
			return s
		})

	case key.Matches(msg, k.AddStop):
		return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
			return s.AddGradientColor("")
		})

	case key.Matches(msg, k.DropStop):
		return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
			return s.RemoveGradientColor(len(s.GradientColors) - 1)
		})

	case key.Matches(msg, k.Reset):
		next, err := m.session.Reset()
		cmd := m.adopt(next, err)
		return m, tea.Batch(cmd, m.flash("Reset to defaults"))

	case key.Matches(msg, k.Save):
		return m.saveToLibrary()

	case key.Matches(msg, k.Next):
		return m.loadNext()

	case key.Matches(msg, k.Library):
		m.viewMode = ViewLibrary
		m.cursor = clampCursor(m.cursor, m.libraryLen())
		return m, nil

	case key.Matches(msg, k.Export):
		m.viewMode = ViewExport
		m.refreshCode()
		return m, nil

	case key.Matches(msg, k.Theme):
		return m.toggleTheme()
	}

	return m, nil
}

func (m Model) handleExportKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Back):
		m.viewMode = ViewEditor
		return m, nil

	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.NextTab):
		m.exportTab = (m.exportTab + 1) % len(export.Formats)
		m.refreshCode()
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, k.PrevTab):
		m.exportTab = (m.exportTab + len(export.Formats) - 1) % len(export.Formats)
		m.refreshCode()
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, k.Copy):
		if m.deliverer == nil {
			m.fail("Clipboard is not available")
			return m, nil
		}
		f := m.activeFormat()
		return m, copyCmd(m.deliverer, f, m.artifacts.Get(f))

	case key.Matches(msg, k.Download):
		if m.deliverer == nil {
			m.fail("Downloads are not available")
			return m, nil
		}
		f := m.activeFormat()
		return m, downloadCmd(m.deliverer, f, m.artifacts.Get(f))
	}

	switch msg.String() {
	case "1", "2", "3", "4":
		m.exportTab = int(msg.String()[0] - '1')
		m.refreshCode()
		m.viewport.GotoTop()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	n := m.libraryLen()

	switch {
	case key.Matches(msg, k.Back):
		m.viewMode = ViewEditor
		return m, nil

	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, k.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, k.Load):
		if n == 0 {
			return m, nil
		}
		entry := m.library.List()[m.cursor]
		next, err := m.session.Replace(entry.Settings)
		m.loadIndex = m.cursor + 1
		m.viewMode = ViewEditor
		cmd := m.adopt(next, err)
		return m, tea.Batch(cmd, m.flash(fmt.Sprintf("Loaded %s", entry.Name)))

	case key.Matches(msg, k.Delete):
		if n == 0 {
			return m, nil
		}
		entry := m.library.List()[m.cursor]
		if err := m.library.Remove(entry.ID); err != nil {
			m.log.Error(err, "Failed to remove saved headline")
			m.fail(fmt.Sprintf("Could not remove %s: %v", entry.Name, err))
			return m, nil
		}
		m.cursor = clampCursor(m.cursor, m.libraryLen())
		return m, m.flash(fmt.Sprintf("Removed %s", entry.Name))
	}

	return m, nil
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		m.viewMode = m.prevMode
		return m, nil
	}
	return m, nil
}

// handleInputKeys feeds the text input until enter commits or esc cancels.
func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.endInput()
		return m, nil

	case tea.KeyEnter:
		value := m.input.Value()
		mode := m.inputMode
		m.endInput()

		switch mode {
		case InputText:
			return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
				s.Text = value
				return s
			})
		case InputHighlight:
			if strings.TrimSpace(value) == "" {
				return m, nil
			}
			return m, m.apply(func(s settings.HeadlineSettings) settings.HeadlineSettings {
				return s.AddHighlight(value)
			})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) beginInput(mode InputMode, prompt, value string) (tea.Model, tea.Cmd) {
	m.inputMode = mode
	m.input.Prompt = prompt + ": "
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, tea.Batch(cmd, textinput.Blink)
}

func (m *Model) endInput() {
	m.inputMode = InputNone
	m.input.Blur()
	m.input.Reset()
}

func (m Model) saveToLibrary() (tea.Model, tea.Cmd) {
	if m.library == nil {
		m.fail("Saved headlines are not available")
		return m, nil
	}
	entry, err := m.library.Save(m.current)
	if err != nil {
		m.log.Error(err, "Failed to save headline")
		m.fail(fmt.Sprintf("Could not save headline: %v", err))
		return m, nil
	}
	m.log.With("id", entry.ID).Info("Saved headline")
	return m, m.flash(fmt.Sprintf("Saved as %s", entry.Name))
}

// loadNext replaces the live snapshot with the next saved entry, wrapping
// back to the first after the last.
func (m Model) loadNext() (tea.Model, tea.Cmd) {
	n := m.libraryLen()
	if n == 0 {
		return m, m.flash("No saved headlines")
	}
	idx := m.loadIndex % n
	entry := m.library.List()[idx]
	m.loadIndex = idx + 1

	next, err := m.session.Replace(entry.Settings)
	cmd := m.adopt(next, err)
	return m, tea.Batch(cmd, m.flash(fmt.Sprintf("Loaded %s", entry.Name)))
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.theme = m.theme.Toggle()
	m.styles = newStyles(m.theme)
	m.refreshCode()

	if m.store != nil {
		if err := m.store.Put(ThemeKey, m.theme); err != nil {
			m.log.Error(err, "Failed to persist theme")
			m.fail(fmt.Sprintf("Could not save theme: %v", err))
		}
	}
	return m, nil
}

func (m Model) handleDelivered(r export.Result) (tea.Model, tea.Cmd) {
	if !r.OK() {
		m.fail(fmt.Sprintf("Could not %s %s: %v", r.Action, r.Format.Label(), r.Err))
		return m, nil
	}
	if r.Action == export.ActionCopy {
		return m, m.flash("Copied!")
	}
	return m, m.flash(fmt.Sprintf("Saved %s", r.Target))
}

func (m Model) libraryLen() int {
	if m.library == nil {
		return 0
	}
	return m.library.Len()
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
