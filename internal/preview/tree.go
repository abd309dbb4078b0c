// Package preview builds the presentation tree of a headline and renders it
// for a terminal.
package preview

import (
	"strings"

	"github.com/alexisbeaulieu97/headliner/internal/highlight"
	"github.com/alexisbeaulieu97/headliner/internal/settings"
	"github.com/alexisbeaulieu97/headliner/internal/style"
)

// Tag is the element the headline renders as.
const Tag = "h1"

// CursorText is the blinking caret shown after the typewriter prefix.
const CursorText = "|"

// CursorClass is attached to the typewriter caret.
const CursorClass = "animate-pulse"

// LayoutClasses are always attached to the headline element.
var LayoutClasses = []string{"break-words", "max-w-full"}

// Node is one child of the headline element.
type Node struct {
	Text    string
	Styled  bool
	Cursor  bool
	Rule    settings.HighlightRule
	Style   style.Style
	Classes []string
}

// Tree is the complete presentation of one headline.
type Tree struct {
	Tag      string
	Style    style.Style
	Classes  []string
	Motion   style.MotionProps
	Children []Node

	// Settings is the snapshot the tree was built from. Terminal rendering
	// reads the raw gradient stops and weight from it.
	Settings settings.HeadlineSettings
}

// Text returns the concatenated text of all children, caret included.
func (t Tree) Text() string {
	var b strings.Builder
	for _, child := range t.Children {
		b.WriteString(child.Text)
	}
	return b.String()
}

// Render builds the tree for s with displayed as the visible text. In
// typewriter mode the children are the displayed prefix followed by the
// caret and no highlighting applies. Otherwise the displayed text is split
// into highlight segments.
func Render(s settings.HeadlineSettings, displayed string) Tree {
	tree := Tree{
		Tag:      Tag,
		Style:    style.Compose(s),
		Classes:  classes(s.AnimationType),
		Motion:   style.Motion(s),
		Settings: s,
	}

	if s.AnimationType == settings.AnimationTypewriter {
		tree.Children = []Node{
			{Text: displayed},
			{Text: CursorText, Cursor: true, Classes: []string{CursorClass}},
		}
		return tree
	}

	for _, seg := range highlight.Match(displayed, s.HighlightedWords, s.Color) {
		tree.Children = append(tree.Children, Node{
			Text:   seg.Text,
			Styled: seg.Styled,
			Rule:   seg.Rule,
			Style:  seg.Style,
		})
	}
	return tree
}

func classes(a settings.AnimationType) []string {
	out := strings.Fields(style.AnimationClass(a))
	return append(out, LayoutClasses...)
}
