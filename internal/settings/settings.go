package settings

import "strings"

const (
	// MinGradientColors is the floor enforced by RemoveGradientColor.
	MinGradientColors = 2

	// NewGradientColor is appended by AddGradientColor when no color is given.
	NewGradientColor = "#3b82f6"

	// DefaultHighlightBackground and DefaultHighlightColor seed new highlight rules.
	DefaultHighlightBackground = "#ffeb3b"
	DefaultHighlightColor      = "#000"
)

// Default returns the snapshot the application starts with and resets to.
func Default() HeadlineSettings {
	return HeadlineSettings{
		Text:            "Create Amazing Headlines",
		FontSize:        48,
		FontFamily:      "Inter",
		FontWeight:      700,
		TextAlign:       AlignCenter,
		Color:           "#1f2937",
		BackgroundColor: Transparent,
		Padding:         20,
		Margin:          10,
		LetterSpacing:   0,
		LineHeight:      1.2,

		GradientEnabled:   false,
		GradientDirection: GradientToRight,
		GradientColors:    []string{"#3b82f6", "#8b5cf6"},

		TextShadow:    false,
		TextOutline:   false,
		OutlineColor:  "#000000",
		ShadowColor:   "#000000",
		ShadowBlur:    4,
		ShadowOffsetX: 2,
		ShadowOffsetY: 2,

		AnimationType:     AnimationFadeIn,
		AnimationDuration: 0.8,
		AnimationDelay:    0,

		HighlightedWords: []HighlightRule{},
	}
}

// Clone returns a deep copy so callers never share slices with a snapshot.
func (s HeadlineSettings) Clone() HeadlineSettings {
	clone := s
	if s.GradientColors != nil {
		clone.GradientColors = append([]string(nil), s.GradientColors...)
	}
	if s.HighlightedWords != nil {
		clone.HighlightedWords = append([]HighlightRule{}, s.HighlightedWords...)
	}
	return clone
}

// AddGradientColor appends a gradient stop. An empty color appends NewGradientColor.
func (s HeadlineSettings) AddGradientColor(color string) HeadlineSettings {
	if color == "" {
		color = NewGradientColor
	}
	next := s.Clone()
	next.GradientColors = append(next.GradientColors, color)
	return next
}

// UpdateGradientColor replaces the stop at index. Out of range indices are ignored.
func (s HeadlineSettings) UpdateGradientColor(index int, color string) HeadlineSettings {
	if index < 0 || index >= len(s.GradientColors) {
		return s
	}
	next := s.Clone()
	next.GradientColors[index] = color
	return next
}

// RemoveGradientColor drops the stop at index unless that would leave fewer
// than MinGradientColors stops, in which case it is a no-op.
func (s HeadlineSettings) RemoveGradientColor(index int) HeadlineSettings {
	if len(s.GradientColors) <= MinGradientColors {
		return s
	}
	if index < 0 || index >= len(s.GradientColors) {
		return s
	}
	next := s.Clone()
	next.GradientColors = append(next.GradientColors[:index], next.GradientColors[index+1:]...)
	return next
}

// AddHighlight appends a rule for word with the default highlight treatment.
// Blank words are ignored.
func (s HeadlineSettings) AddHighlight(word string) HeadlineSettings {
	word = strings.TrimSpace(word)
	if word == "" {
		return s
	}
	next := s.Clone()
	next.HighlightedWords = append(next.HighlightedWords, HighlightRule{
		Word:            word,
		Style:           StyleHighlight,
		BackgroundColor: DefaultHighlightBackground,
		Color:           DefaultHighlightColor,
	})
	return next
}

// UpdateHighlight applies fn to a copy of the rule at index.
func (s HeadlineSettings) UpdateHighlight(index int, fn func(*HighlightRule)) HeadlineSettings {
	if fn == nil || index < 0 || index >= len(s.HighlightedWords) {
		return s
	}
	next := s.Clone()
	fn(&next.HighlightedWords[index])
	return next
}

// RemoveHighlight drops the rule at index.
func (s HeadlineSettings) RemoveHighlight(index int) HeadlineSettings {
	if index < 0 || index >= len(s.HighlightedWords) {
		return s
	}
	next := s.Clone()
	next.HighlightedWords = append(next.HighlightedWords[:index], next.HighlightedWords[index+1:]...)
	return next
}

// Stats are the quick figures shown under the preview.
type Stats struct {
	Characters int
	Words      int
	FontSize   float64
	Highlights int
}

// Stats summarises the headline. Words are counted by splitting on single
// spaces, so an empty text still counts as one word.
func (s HeadlineSettings) Stats() Stats {
	return Stats{
		Characters: len([]rune(s.Text)),
		Words:      len(strings.Split(s.Text, " ")),
		FontSize:   s.FontSize,
		Highlights: len(s.HighlightedWords),
	}
}
