package preview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/headliner/internal/settings"
	"github.com/alexisbeaulieu97/headliner/internal/style"
)

const (
	// pxPerCell converts CSS padding to terminal cells.
	pxPerCell = 10
	// maxPaddingCells caps the converted padding.
	maxPaddingCells = 4
	// boldWeight is the lightest font weight rendered bold.
	boldWeight = 600
)

// namedColors resolves the CSS keywords a headline is most likely to use.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"gray":    "#808080",
	"grey":    "#808080",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
}

// TerminalOptions configures terminal rendering.
type TerminalOptions struct {
	// Width is the line width in cells. Zero leaves lines unwrapped.
	Width int
	// Renderer overrides the lipgloss default renderer.
	Renderer *lipgloss.Renderer
}

// Terminal renders the tree with lipgloss. Gradient fills are blended per
// rune in Lab space across the stop list; shadows and outlines have no
// terminal equivalent and are dropped.
func Terminal(tree Tree, opts TerminalOptions) string {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	s := tree.Settings
	decisions := style.Decide(s)

	base := r.NewStyle()
	if s.FontWeight >= boldWeight {
		base = base.Bold(true)
	}
	if !decisions.Gradient {
		if c, ok := resolveColor(decisions.Color); ok {
			base = base.Foreground(lipgloss.Color(c))
		}
	}
	if decisions.Background {
		if c, ok := resolveColor(decisions.BackgroundColor); ok {
			base = base.Background(lipgloss.Color(c))
		}
	}

	var ramp []string
	if decisions.Gradient {
		ramp = Gradient(s.GradientColors, runeCount(tree.Children))
	}

	var b strings.Builder
	pos := 0
	for _, child := range tree.Children {
		st := nodeStyle(base, child)
		if ramp == nil || child.Cursor {
			b.WriteString(st.Render(child.Text))
			pos += len([]rune(child.Text))
			continue
		}
		for _, ch := range child.Text {
			runeStyle := st
			if !child.Style.Has("color") && pos < len(ramp) && ramp[pos] != "" {
				runeStyle = runeStyle.Foreground(lipgloss.Color(ramp[pos]))
			}
			b.WriteString(runeStyle.Render(string(ch)))
			pos++
		}
	}

	pad := int(math.Min(math.Max(s.Padding/pxPerCell, 0), maxPaddingCells))
	container := r.NewStyle().
		Align(alignment(s.TextAlign)).
		Padding(pad/2, pad)
	if opts.Width > 0 {
		container = container.Width(opts.Width)
	}
	return container.Render(b.String())
}

func nodeStyle(base lipgloss.Style, n Node) lipgloss.Style {
	st := base
	if n.Cursor {
		return st.Blink(true)
	}
	if !n.Styled {
		return st
	}
	if v, ok := n.Style.Get("font-weight"); ok && v == "bold" {
		st = st.Bold(true)
	}
	if v, ok := n.Style.Get("font-style"); ok && v == "italic" {
		st = st.Italic(true)
	}
	if v, ok := n.Style.Get("text-decoration"); ok && v == "underline" {
		st = st.Underline(true)
	}
	if v, ok := n.Style.Get("background-color"); ok {
		if c, ok := resolveColor(v); ok {
			st = st.Background(lipgloss.Color(c))
		}
	}
	if v, ok := n.Style.Get("color"); ok {
		if c, ok := resolveColor(v); ok {
			st = st.Foreground(lipgloss.Color(c))
		}
	}
	return st
}

// Gradient returns n hex colors spread evenly across stops, blended in Lab
// space. Unparseable stops are skipped; with no usable stop every entry is
// empty.
func Gradient(stops []string, n int) []string {
	if n <= 0 {
		return nil
	}

	parsed := make([]colorful.Color, 0, len(stops))
	for _, stop := range stops {
		hex, ok := resolveColor(stop)
		if !ok {
			continue
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		parsed = append(parsed, c)
	}

	out := make([]string, n)
	switch len(parsed) {
	case 0:
		return out
	case 1:
		for i := range out {
			out[i] = parsed[0].Hex()
		}
		return out
	}

	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		scaled := t * float64(len(parsed)-1)
		idx := int(math.Floor(scaled))
		if idx >= len(parsed)-1 {
			idx = len(parsed) - 2
		}
		frac := scaled - float64(idx)
		out[i] = parsed[idx].BlendLab(parsed[idx+1], frac).Clamped().Hex()
	}
	return out
}

// resolveColor normalises a CSS color to the #rrggbb form lipgloss accepts.
// Alpha digits are dropped and functional notations are not resolved.
func resolveColor(value string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if named, ok := namedColors[v]; ok {
		return named, true
	}
	if !strings.HasPrefix(v, "#") {
		return "", false
	}
	switch len(v) {
	case 4, 5:
		v = "#" + string([]byte{v[1], v[1], v[2], v[2], v[3], v[3]})
	case 7:
	case 9:
		v = v[:7]
	default:
		return "", false
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

func alignment(a settings.TextAlign) lipgloss.Position {
	switch a {
	case settings.AlignLeft:
		return lipgloss.Left
	case settings.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

func runeCount(nodes []Node) int {
	n := 0
	for _, node := range nodes {
		if node.Cursor {
			continue
		}
		n += len([]rune(node.Text))
	}
	return n
}
