package export

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/headliner/internal/settings"
	"github.com/alexisbeaulieu97/headliner/internal/style"
)

// Aspect names a style decision compared across artifacts.
type Aspect string

const (
	AspectFill       Aspect = "fill"
	AspectBackground Aspect = "background"
	AspectShadow     Aspect = "shadow"
	AspectOutline    Aspect = "outline"
	AspectText       Aspect = "text"
)

// Inconsistency reports an artifact that disagrees with the shared decisions.
type Inconsistency struct {
	Format Format
	Aspect Aspect
	Detail string
}

func (i Inconsistency) String() string {
	return fmt.Sprintf("%s: %s %s", i.Format, i.Aspect, i.Detail)
}

// probe is one expected declaration, expressed in a format's syntax.
type probe struct {
	aspect Aspect
	want   bool
	needle string
}

// CheckConsistency verifies that the CSS, HTML and React artifacts make the
// same fill, background, shadow and outline decisions as the preview. It
// returns nil when every artifact agrees.
func CheckConsistency(s settings.HeadlineSettings, a Artifacts) []Inconsistency {
	d := style.Decide(s)
	var found []Inconsistency

	found = append(found, checkBlock(FormatCSS, ruleBody(a.CSS), cssProbes(d))...)

	markup, err := Inspect(a.HTML)
	if err != nil {
		found = append(found, Inconsistency{Format: FormatHTML, Aspect: AspectText, Detail: err.Error()})
	} else {
		if normalizeNewlines(markup.Text) != normalizeNewlines(s.Text) {
			found = append(found, Inconsistency{
				Format: FormatHTML,
				Aspect: AspectText,
				Detail: fmt.Sprintf("got %q, want %q", markup.Text, s.Text),
			})
		}
		found = append(found, checkBlock(FormatHTML, ruleBody(markup.CSS), cssProbes(d))...)
	}

	found = append(found, checkBlock(FormatReact, styleObject(a.React), reactProbes(d))...)

	return found
}

// normalizeNewlines folds CRLF and lone CR to LF, as HTML parsing does.
func normalizeNewlines(v string) string {
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(v)
}

func checkBlock(f Format, block string, probes []probe) []Inconsistency {
	var out []Inconsistency
	for _, p := range probes {
		has := strings.Contains(block, p.needle)
		if has == p.want {
			continue
		}
		detail := "missing " + p.needle
		if has {
			detail = "unexpected " + p.needle
		}
		out = append(out, Inconsistency{Format: f, Aspect: p.aspect, Detail: detail})
	}
	return out
}

// expect builds a probe. An active decision must appear with its exact
// value; an inactive one must not appear at all.
func expect(aspect Aspect, want bool, property, value string) probe {
	if want {
		return probe{aspect: aspect, want: true, needle: property + value}
	}
	return probe{aspect: aspect, want: false, needle: property}
}

func cssProbes(d style.Decisions) []probe {
	return []probe{
		expect(AspectFill, d.Gradient, "background: ", d.GradientValue+";"),
		expect(AspectFill, d.Gradient, "-webkit-text-fill-color: ", "transparent;"),
		expect(AspectFill, !d.Gradient, "\n  color: ", d.Color+";"),
		expect(AspectBackground, d.Background, "background-color: ", d.BackgroundColor+";"),
		expect(AspectShadow, d.Shadow, "text-shadow: ", d.ShadowValue+";"),
		expect(AspectOutline, d.Outline, "-webkit-text-stroke: ", d.OutlineValue+";"),
	}
}

func reactProbes(d style.Decisions) []probe {
	return []probe{
		expect(AspectFill, d.Gradient, "background: ", "'"+d.GradientValue+"',"),
		expect(AspectFill, d.Gradient, "WebkitTextFillColor: ", "'transparent',"),
		expect(AspectFill, !d.Gradient, "\n    color: ", "'"+d.Color+"',"),
		expect(AspectBackground, d.Background, "backgroundColor: ", "'"+d.BackgroundColor+"',"),
		expect(AspectShadow, d.Shadow, "textShadow: ", "'"+d.ShadowValue+"',"),
		expect(AspectOutline, d.Outline, "WebkitTextStroke: ", "'"+d.OutlineValue+"',"),
	}
}

// ruleBody returns the first rule block of a stylesheet, which holds the
// headline declarations. Keyframe bodies are excluded.
func ruleBody(css string) string {
	start := strings.Index(css, "{")
	if start < 0 {
		return ""
	}
	end := strings.Index(css[start:], "\n}")
	if end < 0 {
		return css[start:]
	}
	return css[start : start+end+1]
}

// styleObject returns the inline style object of a React artifact.
func styleObject(src string) string {
	start := strings.Index(src, "const style = {")
	if start < 0 {
		return ""
	}
	end := strings.Index(src[start:], "\n  };")
	if end < 0 {
		return src[start:]
	}
	return src[start : start+end+1]
}
