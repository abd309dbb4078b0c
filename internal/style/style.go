// Package style derives presentation attributes from a headline configuration.
//
// Decide is the single place where the fill, background, shadow and outline
// branches are taken. The live preview (Compose) and every export format read
// the same Decisions, so a configuration can never render one way and export
// another.
package style

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/headliner/internal/settings"
)

// OutlineWidth is the fixed stroke width of the text outline.
const OutlineWidth = "2px"

// Declaration is one property/value pair in CSS (kebab-case) naming.
type Declaration struct {
	Property string
	Value    string
}

// CamelName returns the React inline-style key for the property,
// e.g. "font-size" -> "fontSize", "-webkit-text-stroke" -> "WebkitTextStroke".
func (d Declaration) CamelName() string {
	return camelCase(d.Property)
}

// Style is an ordered set of declarations.
type Style struct {
	Declarations []Declaration
}

// Get returns the value of the first declaration of property.
func (s Style) Get(property string) (string, bool) {
	for _, d := range s.Declarations {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Has reports whether property is declared.
func (s Style) Has(property string) bool {
	_, ok := s.Get(property)
	return ok
}

// String renders the style as an inline style attribute value.
func (s Style) String() string {
	parts := make([]string, 0, len(s.Declarations))
	for _, d := range s.Declarations {
		parts = append(parts, d.Property+": "+d.Value+";")
	}
	return strings.Join(parts, " ")
}

// Decisions records which conditional branches a configuration takes, along
// with the resolved value of each active branch.
type Decisions struct {
	Gradient      bool
	GradientValue string
	Color         string

	Background      bool
	BackgroundColor string

	Shadow      bool
	ShadowValue string

	Outline      bool
	OutlineValue string
}

// Decide evaluates the fill, background, shadow and outline rules for s.
func Decide(s settings.HeadlineSettings) Decisions {
	d := Decisions{}

	if s.GradientEnabled {
		d.Gradient = true
		d.GradientValue = LinearGradient(s.GradientDirection, s.GradientColors)
	} else {
		d.Color = s.Color
	}

	if s.BackgroundColor != "" && s.BackgroundColor != settings.Transparent {
		d.Background = true
		d.BackgroundColor = s.BackgroundColor
	}

	if s.TextShadow {
		d.Shadow = true
		d.ShadowValue = Px(s.ShadowOffsetX) + " " + Px(s.ShadowOffsetY) + " " + Px(s.ShadowBlur) + " " + s.ShadowColor
	}

	if s.TextOutline {
		d.Outline = true
		d.OutlineValue = OutlineWidth + " " + s.OutlineColor
	}

	return d
}

// Fill returns the text fill declarations: the background-clip gradient
// technique when a gradient is active, a plain color otherwise.
func (d Decisions) Fill() []Declaration {
	if d.Gradient {
		return []Declaration{
			{Property: "background", Value: d.GradientValue},
			{Property: "background-clip", Value: "text"},
			{Property: "-webkit-background-clip", Value: "text"},
			{Property: "-webkit-text-fill-color", Value: "transparent"},
		}
	}
	return []Declaration{{Property: "color", Value: d.Color}}
}

// Effects returns the background, shadow and outline declarations that are active.
func (d Decisions) Effects() []Declaration {
	var decls []Declaration
	if d.Background {
		decls = append(decls, Declaration{Property: "background-color", Value: d.BackgroundColor})
	}
	if d.Shadow {
		decls = append(decls, Declaration{Property: "text-shadow", Value: d.ShadowValue})
	}
	if d.Outline {
		decls = append(decls, Declaration{Property: "-webkit-text-stroke", Value: d.OutlineValue})
	}
	return decls
}

// Typography returns the unconditional pass-through declarations with unit
// suffixes applied. fontFamily formats the family value; nil uses it verbatim.
func Typography(s settings.HeadlineSettings, fontFamily func(string) string) []Declaration {
	family := s.FontFamily
	if fontFamily != nil {
		family = fontFamily(family)
	}
	return []Declaration{
		{Property: "font-size", Value: Px(s.FontSize)},
		{Property: "font-family", Value: family},
		{Property: "font-weight", Value: strconv.Itoa(s.FontWeight)},
		{Property: "text-align", Value: string(s.TextAlign)},
		{Property: "letter-spacing", Value: Px(s.LetterSpacing)},
		{Property: "line-height", Value: FormatNumber(s.LineHeight)},
		{Property: "padding", Value: Px(s.Padding)},
		{Property: "margin", Value: Px(s.Margin)},
	}
}

// Compose derives the preview style of the headline. It is pure: the same
// configuration always yields identical declarations in identical order.
func Compose(s settings.HeadlineSettings) Style {
	d := Decide(s)

	decls := Typography(s, nil)
	decls = append(decls, d.Fill()...)
	if d.Gradient {
		decls = append(decls, Declaration{Property: "background-size", Value: "200% 200%"})
	}
	decls = append(decls, d.Effects()...)

	return Style{Declarations: decls}
}

// LinearGradient builds the CSS gradient value, joining colors in list order.
func LinearGradient(direction settings.GradientDirection, colors []string) string {
	return "linear-gradient(" + DirectionKeyword(direction) + ", " + strings.Join(colors, ", ") + ")"
}

// DirectionKeyword maps a direction token to its CSS side-or-corner keyword.
// Unknown tokens fall back to replacing the "to-" prefix with "to ".
func DirectionKeyword(direction settings.GradientDirection) string {
	switch direction {
	case settings.GradientToRight:
		return "to right"
	case settings.GradientToLeft:
		return "to left"
	case settings.GradientToBottom:
		return "to bottom"
	case settings.GradientToTop:
		return "to top"
	case settings.GradientToBottomRight:
		return "to bottom right"
	case settings.GradientToBottomLeft:
		return "to bottom left"
	default:
		return strings.Replace(string(direction), "to-", "to ", 1)
	}
}

// FormatNumber renders f in its shortest decimal form: 48, 0.8, -1.5.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Px renders f with a px suffix.
func Px(f float64) string {
	return FormatNumber(f) + "px"
}

// Seconds renders f with an s suffix.
func Seconds(f float64) string {
	return FormatNumber(f) + "s"
}

func camelCase(property string) string {
	parts := strings.Split(property, "-")
	var b strings.Builder
	first := true
	for i, part := range parts {
		if part == "" {
			continue
		}
		// A leading dash marks a vendor prefix, which React capitalises.
		if first && i == 0 {
			b.WriteString(part)
			first = false
			continue
		}
		first = false
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
