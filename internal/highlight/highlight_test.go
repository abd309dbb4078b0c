package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/headliner/internal/settings"
)

func rule(word string, s settings.HighlightStyle) settings.HighlightRule {
	return settings.HighlightRule{Word: word, Style: s}
}

func join(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

func texts(segments []Segment) []string {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		out = append(out, seg.Text)
	}
	return out
}

func TestMatchWithoutRulesReturnsWholeText(t *testing.T) {
	t.Parallel()

	got := Match("Create Amazing Headlines", nil, "#1f2937")
	require.Len(t, got, 1)
	assert.Equal(t, "Create Amazing Headlines", got[0].Text)
	assert.False(t, got[0].Styled)

	empty := Match("", nil, "#1f2937")
	require.Len(t, empty, 1)
	assert.Equal(t, "", empty[0].Text)
}

func TestMatchSegments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		text   string
		rules  []settings.HighlightRule
		want   []string
		styled []bool
	}{
		{
			name:   "single word in the middle",
			text:   "Create Amazing Headlines",
			rules:  []settings.HighlightRule{rule("amazing", settings.StyleBold)},
			want:   []string{"Create ", "Amazing", " Headlines"},
			styled: []bool{false, true, false},
		},
		{
			name:   "match keeps original casing",
			text:   "HELLO world",
			rules:  []settings.HighlightRule{rule("hello", settings.StyleItalic)},
			want:   []string{"HELLO", " world"},
			styled: []bool{true, false},
		},
		{
			name:   "first occurrence only",
			text:   "go go go",
			rules:  []settings.HighlightRule{rule("go", settings.StyleBold)},
			want:   []string{"go", " go go"},
			styled: []bool{true, false},
		},
		{
			name: "rules advance the cursor in list order",
			text: "go go go",
			rules: []settings.HighlightRule{
				rule("go", settings.StyleBold),
				rule("go", settings.StyleItalic),
			},
			want:   []string{"go", " ", "go", " go"},
			styled: []bool{true, false, true, false},
		},
		{
			name: "earlier text is not revisited",
			text: "alpha beta",
			rules: []settings.HighlightRule{
				rule("beta", settings.StyleBold),
				rule("alpha", settings.StyleBold),
			},
			want:   []string{"alpha ", "beta"},
			styled: []bool{false, true},
		},
		{
			name: "a miss leaves the cursor in place",
			text: "alpha beta",
			rules: []settings.HighlightRule{
				rule("gamma", settings.StyleBold),
				rule("alpha", settings.StyleBold),
			},
			want:   []string{"alpha", " beta"},
			styled: []bool{true, false},
		},
		{
			name:   "empty words never match",
			text:   "alpha",
			rules:  []settings.HighlightRule{rule("", settings.StyleBold)},
			want:   []string{"alpha"},
			styled: []bool{false},
		},
		{
			name:   "multibyte text keeps byte positions",
			text:   "Café Über alles",
			rules:  []settings.HighlightRule{rule("über", settings.StyleUnderline)},
			want:   []string{"Café ", "Über", " alles"},
			styled: []bool{false, true, false},
		},
		{
			name:   "matches inside a longer word",
			text:   "Category",
			rules:  []settings.HighlightRule{rule("cat", settings.StyleBold)},
			want:   []string{"Cat", "egory"},
			styled: []bool{true, false},
		},
		{
			name:   "match at the very end",
			text:   "Ship it",
			rules:  []settings.HighlightRule{rule("IT", settings.StyleBold)},
			want:   []string{"Ship ", "it"},
			styled: []bool{false, true},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Match(tc.text, tc.rules, "#1f2937")
			assert.Equal(t, tc.want, texts(got))
			require.Len(t, got, len(tc.styled))
			for i, seg := range got {
				assert.Equal(t, tc.styled[i], seg.Styled, "segment %d", i)
			}
			assert.Equal(t, tc.text, join(got))
		})
	}
}

func TestMatchConcatenationIsLossless(t *testing.T) {
	t.Parallel()

	rules := []settings.HighlightRule{
		rule("a", settings.StyleBold),
		rule("zz", settings.StyleBold),
		rule("B", settings.StyleItalic),
		rule("ß", settings.StyleHighlight),
	}
	for _, text := range []string{"", "a", "abcabc", "Straße bbb", "no hits here", "AAAA bbbb"} {
		assert.Equal(t, text, join(Match(text, rules, "#000")), text)
	}
}

func TestDeclarations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rule settings.HighlightRule
		want map[string]string
		none []string
	}{
		{
			name: "highlight defaults",
			rule: rule("x", settings.StyleHighlight),
			want: map[string]string{"background-color": "#ffeb3b", "color": "#000"},
		},
		{
			name: "highlight custom",
			rule: settings.HighlightRule{Word: "x", Style: settings.StyleHighlight, Color: "#fff", BackgroundColor: "#111"},
			want: map[string]string{"background-color": "#111", "color": "#fff"},
		},
		{
			name: "underline falls back to base color",
			rule: rule("x", settings.StyleUnderline),
			want: map[string]string{"text-decoration": "underline", "text-decoration-color": "#1f2937"},
		},
		{
			name: "background chip",
			rule: rule("x", settings.StyleBackground),
			want: map[string]string{"background-color": "#e3f2fd", "padding": "2px 4px", "border-radius": "4px"},
		},
		{
			name: "bold without color",
			rule: rule("x", settings.StyleBold),
			want: map[string]string{"font-weight": "bold"},
			none: []string{"color"},
		},
		{
			name: "italic with color",
			rule: settings.HighlightRule{Word: "x", Style: settings.StyleItalic, Color: "#ef4444"},
			want: map[string]string{"font-style": "italic", "color": "#ef4444"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Declarations(tc.rule, "#1f2937")
			for property, value := range tc.want {
				v, ok := got.Get(property)
				require.True(t, ok, property)
				assert.Equal(t, value, v, property)
			}
			for _, property := range tc.none {
				assert.False(t, got.Has(property), property)
			}
		})
	}
}
