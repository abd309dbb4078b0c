// Package highlight splits headline text into plain and styled segments.
package highlight

import (
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/headliner/internal/settings"
	"github.com/alexisbeaulieu97/headliner/internal/style"
)

// DefaultChipBackground is the fill of the "background" style when the rule
// carries no background color.
const DefaultChipBackground = "#e3f2fd"

// Segment is a contiguous run of the original text. Styled segments carry the
// rule that matched them and the declarations to apply.
type Segment struct {
	Text   string
	Styled bool
	Rule   settings.HighlightRule
	Style  style.Style
}

// Match scans text once, left to right. Each rule, in list order, styles the
// first case-insensitive occurrence of its word at or after the cursor. A rule
// with no such occurrence is skipped and the cursor stays put, so a later rule
// may still match earlier text than an unmatched one would have. Concatenating
// the segment texts always reproduces text.
func Match(text string, rules []settings.HighlightRule, baseColor string) []Segment {
	if len(rules) == 0 {
		return []Segment{{Text: text}}
	}

	var segments []Segment
	cursor := 0

	for _, rule := range rules {
		start, end, ok := find(text, rule.Word, cursor)
		if !ok {
			continue
		}
		if start > cursor {
			segments = append(segments, Segment{Text: text[cursor:start]})
		}
		segments = append(segments, Segment{
			Text:   text[start:end],
			Styled: true,
			Rule:   rule,
			Style:  Declarations(rule, baseColor),
		})
		cursor = end
	}

	if cursor < len(text) {
		segments = append(segments, Segment{Text: text[cursor:]})
	}

	return segments
}

// find returns the byte bounds of the first window of text at or after from
// that equals word under Unicode case folding. Windows span the same number
// of runes as word and are compared on the original text, so the bounds
// always index text itself.
func find(text, word string, from int) (int, int, bool) {
	n := utf8.RuneCountInString(word)
	if n == 0 {
		return 0, 0, false
	}

	for start := from; start < len(text); {
		end := start
		count := 0
		for end < len(text) && count < n {
			_, size := utf8.DecodeRuneInString(text[end:])
			end += size
			count++
		}
		if count < n {
			return 0, 0, false
		}
		if strings.EqualFold(text[start:end], word) {
			return start, end, true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		start += size
	}

	return 0, 0, false
}

// Declarations returns the style a rule applies to its matched word.
// baseColor is the headline color, used as the underline color fallback.
func Declarations(rule settings.HighlightRule, baseColor string) style.Style {
	var decls []style.Declaration
	add := func(property, value string) {
		decls = append(decls, style.Declaration{Property: property, Value: value})
	}

	switch rule.Style {
	case settings.StyleHighlight:
		add("background-color", fallback(rule.BackgroundColor, settings.DefaultHighlightBackground))
		add("color", fallback(rule.Color, settings.DefaultHighlightColor))
	case settings.StyleUnderline:
		add("text-decoration", "underline")
		add("text-decoration-color", fallback(rule.Color, baseColor))
	case settings.StyleBackground:
		add("background-color", fallback(rule.BackgroundColor, DefaultChipBackground))
		add("padding", "2px 4px")
		add("border-radius", "4px")
	case settings.StyleBold:
		add("font-weight", "bold")
		if rule.Color != "" {
			add("color", rule.Color)
		}
	case settings.StyleItalic:
		add("font-style", "italic")
		if rule.Color != "" {
			add("color", rule.Color)
		}
	}

	return style.Style{Declarations: decls}
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
