package studio

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme selects the studio palette.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeKey is the store key the chosen theme is persisted under.
const ThemeKey = "theme"

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// GlamourStyle names the glamour standard style matching the theme.
func (t Theme) GlamourStyle() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

type palette struct {
	primary lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	danger  lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	surface lipgloss.Color
	text    lipgloss.Color
}

var palettes = map[Theme]palette{
	ThemeDark: {
		primary: lipgloss.Color("99"),
		success: lipgloss.Color("42"),
		warning: lipgloss.Color("226"),
		danger:  lipgloss.Color("196"),
		muted:   lipgloss.Color("245"),
		accent:  lipgloss.Color("212"),
		surface: lipgloss.Color("235"),
		text:    lipgloss.Color("252"),
	},
	ThemeLight: {
		primary: lipgloss.Color("57"),
		success: lipgloss.Color("28"),
		warning: lipgloss.Color("136"),
		danger:  lipgloss.Color("160"),
		muted:   lipgloss.Color("242"),
		accent:  lipgloss.Color("162"),
		surface: lipgloss.Color("255"),
		text:    lipgloss.Color("236"),
	},
}

// styles is the set of lipgloss styles derived from one palette.
type styles struct {
	title       lipgloss.Style
	subtitle    lipgloss.Style
	header      lipgloss.Style
	previewBox  lipgloss.Style
	stats       lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	tab         lipgloss.Style
	activeTab   lipgloss.Style
	footer      lipgloss.Style
	errorBanner lipgloss.Style
	status      lipgloss.Style
	selected    lipgloss.Style
	item        lipgloss.Style
	empty       lipgloss.Style
	input       lipgloss.Style
}

func newStyles(t Theme) styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[ThemeLight]
	}

	tab := lipgloss.NewStyle().
		Foreground(p.muted).
		Padding(0, 2)

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			PaddingRight(2),
		subtitle: lipgloss.NewStyle().
			Foreground(p.muted),
		header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.muted).
			MarginBottom(1),
		previewBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.muted).
			Padding(1, 2),
		stats: lipgloss.NewStyle().
			Foreground(p.muted).
			MarginTop(1),
		label: lipgloss.NewStyle().
			Foreground(p.muted).
			Bold(true).
			Width(12),
		value: lipgloss.NewStyle().
			Foreground(p.text),
		tab: tab,
		activeTab: tab.
			Foreground(p.primary).
			Bold(true).
			Underline(true),
		footer: lipgloss.NewStyle().
			Foreground(p.muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.muted).
			MarginTop(1),
		errorBanner: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.danger),
		status: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		selected: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.primary).
			PaddingLeft(1),
		item: lipgloss.NewStyle().
			PaddingLeft(2),
		empty: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true).
			PaddingTop(1).
			PaddingBottom(1),
		input: lipgloss.NewStyle().
			Foreground(p.warning),
	}
}
