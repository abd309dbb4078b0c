package studio

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/alexisbeaulieu97/headliner/internal/export"
	"github.com/alexisbeaulieu97/headliner/internal/library"
	"github.com/alexisbeaulieu97/headliner/internal/logger"
	"github.com/alexisbeaulieu97/headliner/internal/session"
	"github.com/alexisbeaulieu97/headliner/internal/settings"
	"github.com/alexisbeaulieu97/headliner/internal/store"
	"github.com/alexisbeaulieu97/headliner/internal/typewriter"
)

const (
	minWidth  = 60
	minHeight = 20

	// fontSizeStep is the change applied by the larger/smaller keys.
	fontSizeStep = 4
	minFontSize  = 8
	maxFontSize  = 200

	inputCharLimit = 200
)

// Options wires the studio to its collaborators.
type Options struct {
	Session   *session.Session
	Library   *library.Library
	Deliverer *export.Deliverer
	// Store persists the theme. Nil keeps the theme in memory only.
	Store  store.Store
	Logger *logger.Logger
	// TickInterval overrides the typewriter reveal interval.
	TickInterval time.Duration
}

// Model is the studio's Bubble Tea model
type Model struct {
	// Core data
	session   *session.Session
	library   *library.Library
	deliverer *export.Deliverer
	store     store.Store
	log       *logger.Logger

	current   settings.HeadlineSettings
	artifacts export.Artifacts
	scheduler *typewriter.Scheduler

	// UI state
	viewMode  ViewMode
	prevMode  ViewMode
	inputMode InputMode
	exportTab int
	cursor    int
	loadIndex int

	// Component state
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	// Presentation
	theme  Theme
	styles styles

	// Feedback state
	status    string
	statusGen int
	showError bool
	errorMsg  string

	// Dimensions
	width  int
	height int
}

// NewModel creates a studio model from the live session.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var twOpts []typewriter.Option
	if opts.TickInterval > 0 {
		twOpts = append(twOpts, typewriter.WithInterval(opts.TickInterval))
	}

	ti := textinput.New()
	ti.CharLimit = inputCharLimit

	m := Model{
		session:   opts.Session,
		library:   opts.Library,
		deliverer: opts.Deliverer,
		store:     opts.Store,
		log:       log.With("component", "studio"),
		scheduler: typewriter.New(twOpts...),
		viewMode:  ViewEditor,
		input:     ti,
		viewport:  viewport.New(80, 12),
		help:      help.New(),
		keys:      defaultKeyMap(),
		theme:     loadTheme(opts.Store, log),
		width:     80,
		height:    24,
	}
	m.styles = newStyles(m.theme)
	m.current = opts.Session.Current()
	m.regenerate()

	return m
}

// Init starts the typewriter when the loaded headline uses it.
func (m Model) Init() tea.Cmd {
	return m.scheduler.Sync(m.current.AnimationType, m.current.Text)
}

// Settings returns the snapshot the studio is displaying.
func (m Model) Settings() settings.HeadlineSettings {
	return m.current.Clone()
}

// Theme returns the active theme.
func (m Model) Theme() Theme {
	return m.theme
}

// ViewMode returns the screen being shown.
func (m Model) ViewMode() ViewMode {
	return m.viewMode
}

// Helper Methods

// apply runs a settings transformation through the session and refreshes
// everything derived from the snapshot.
func (m *Model) apply(fn func(settings.HeadlineSettings) settings.HeadlineSettings) tea.Cmd {
	next, err := m.session.Update(fn)
	return m.adopt(next, err)
}

// adopt makes next the displayed snapshot. A persistence failure still keeps
// the change on screen and raises the banner.
func (m *Model) adopt(next settings.HeadlineSettings, err error) tea.Cmd {
	m.current = next
	m.regenerate()
	if err != nil {
		m.fail(fmt.Sprintf("Could not save settings: %v", err))
	}
	return m.scheduler.Sync(m.current.AnimationType, m.current.Text)
}

// regenerate rebuilds the export artifacts and the code viewport.
func (m *Model) regenerate() {
	artifacts, err := export.Generate(m.current)
	if err != nil {
		m.log.Error(err, "Failed to generate export artifacts")
		m.fail(fmt.Sprintf("Could not generate exports: %v", err))
		return
	}
	m.artifacts = artifacts
	m.refreshCode()
}

// refreshCode renders the active export tab into the viewport.
func (m *Model) refreshCode() {
	f := m.activeFormat()
	m.viewport.SetContent(renderCode(f, m.artifacts.Get(f), m.theme, m.viewport.Width))
}

func (m Model) activeFormat() export.Format {
	return export.Formats[m.exportTab]
}

func (m *Model) fail(msg string) {
	m.showError = true
	m.errorMsg = msg
}

// flash shows a transient status and schedules its expiry.
func (m *Model) flash(msg string) tea.Cmd {
	m.statusGen++
	m.status = msg
	return clearStatusCmd(m.statusGen, StatusDuration)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = max(height-9, 5)
	m.refreshCode()
}

// preview width available to the headline inside the bordered box.
func (m Model) previewWidth() int {
	return max(m.width-8, 20)
}

// renderCode formats an artifact as a fenced markdown block through glamour.
// Rendering failures fall back to the raw source.
func renderCode(f export.Format, code string, theme Theme, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.GlamourStyle()),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return code
	}
	out, err := r.Render(fmt.Sprintf("```%s\n%s\n```\n", fenceLanguage(f), code))
	if err != nil {
		return code
	}
	return out
}

func fenceLanguage(f export.Format) string {
	switch f {
	case export.FormatReact:
		return "tsx"
	default:
		return string(f)
	}
}

func loadTheme(st store.Store, log *logger.Logger) Theme {
	if st == nil {
		return ThemeLight
	}
	var t Theme
	found, err := st.Get(ThemeKey, &t)
	if err != nil {
		log.Error(err, "Failed to load theme")
		return ThemeLight
	}
	if !found || (t != ThemeDark && t != ThemeLight) {
		return ThemeLight
	}
	return t
}

// cycle returns the element after current, wrapping around. Values not in
// the list restart at the first element.
func cycle[T comparable](list []T, current T) T {
	for i, v := range list {
		if v == current {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}
