package settings

import "strconv"

// TextAlign is the horizontal alignment of the headline.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// GradientDirection is one of the six directional tokens understood by the
// gradient fill. Tokens use the compact "to-x" form; style composition turns
// them into CSS "to x" keywords.
type GradientDirection string

const (
	GradientToRight       GradientDirection = "to-r"
	GradientToLeft        GradientDirection = "to-l"
	GradientToBottom      GradientDirection = "to-b"
	GradientToTop         GradientDirection = "to-t"
	GradientToBottomRight GradientDirection = "to-br"
	GradientToBottomLeft  GradientDirection = "to-bl"
)

// AnimationType selects the entry or looping effect applied to the headline.
type AnimationType string

const (
	AnimationNone       AnimationType = "none"
	AnimationFadeIn     AnimationType = "fade-in"
	AnimationSlideUp    AnimationType = "slide-up"
	AnimationBounce     AnimationType = "bounce"
	AnimationGlow       AnimationType = "glow"
	AnimationShimmer    AnimationType = "shimmer"
	AnimationTypewriter AnimationType = "typewriter"
)

// HighlightStyle is the treatment applied to a matched highlight word.
type HighlightStyle string

const (
	StyleHighlight  HighlightStyle = "highlight"
	StyleUnderline  HighlightStyle = "underline"
	StyleBackground HighlightStyle = "background"
	StyleBold       HighlightStyle = "bold"
	StyleItalic     HighlightStyle = "italic"
)

// Transparent is the background sentinel meaning "emit no background".
const Transparent = "transparent"

// HighlightRule styles the first match of Word at or after the scan cursor.
type HighlightRule struct {
	Word            string         `json:"word" yaml:"word" validate:"required"`
	Style           HighlightStyle `json:"style" yaml:"style" validate:"oneof=highlight underline background bold italic"`
	Color           string         `json:"color,omitempty" yaml:"color,omitempty" validate:"omitempty,css_color"`
	BackgroundColor string         `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty" validate:"omitempty,css_color"`
}

// HeadlineSettings is the complete configuration of one headline. Every
// consumer may assume a fully populated record.
type HeadlineSettings struct {
	Text            string    `json:"text" yaml:"text"`
	FontSize        float64   `json:"fontSize" yaml:"fontSize" validate:"gt=0"`
	FontFamily      string    `json:"fontFamily" yaml:"fontFamily" validate:"required"`
	FontWeight      int       `json:"fontWeight" yaml:"fontWeight" validate:"font_weight"`
	TextAlign       TextAlign `json:"textAlign" yaml:"textAlign" validate:"oneof=left center right"`
	Color           string    `json:"color" yaml:"color" validate:"css_color"`
	BackgroundColor string    `json:"backgroundColor" yaml:"backgroundColor" validate:"css_color"`
	Padding         float64   `json:"padding" yaml:"padding" validate:"gte=0"`
	Margin          float64   `json:"margin" yaml:"margin" validate:"gte=0"`
	LetterSpacing   float64   `json:"letterSpacing" yaml:"letterSpacing"`
	LineHeight      float64   `json:"lineHeight" yaml:"lineHeight" validate:"gt=0"`

	GradientEnabled   bool              `json:"gradientEnabled" yaml:"gradientEnabled"`
	GradientDirection GradientDirection `json:"gradientDirection" yaml:"gradientDirection" validate:"oneof=to-r to-l to-b to-t to-br to-bl"`
	GradientColors    []string          `json:"gradientColors" yaml:"gradientColors" validate:"min=2,dive,css_color"`

	TextShadow    bool    `json:"textShadow" yaml:"textShadow"`
	TextOutline   bool    `json:"textOutline" yaml:"textOutline"`
	OutlineColor  string  `json:"outlineColor" yaml:"outlineColor" validate:"css_color"`
	ShadowColor   string  `json:"shadowColor" yaml:"shadowColor" validate:"css_color"`
	ShadowBlur    float64 `json:"shadowBlur" yaml:"shadowBlur" validate:"gte=0"`
	ShadowOffsetX float64 `json:"shadowOffsetX" yaml:"shadowOffsetX"`
	ShadowOffsetY float64 `json:"shadowOffsetY" yaml:"shadowOffsetY"`

	AnimationType     AnimationType `json:"animationType" yaml:"animationType" validate:"oneof=none fade-in slide-up bounce glow shimmer typewriter"`
	AnimationDuration float64       `json:"animationDuration" yaml:"animationDuration" validate:"gt=0"`
	AnimationDelay    float64       `json:"animationDelay" yaml:"animationDelay" validate:"gte=0"`

	HighlightedWords []HighlightRule `json:"highlightedWords" yaml:"highlightedWords" validate:"dive"`
}

// FontFamilies lists the families offered by the control panel. Free text is
// still accepted anywhere a family is read.
var FontFamilies = []string{
	"Inter",
	"Poppins",
	"Roboto",
	"Montserrat",
	"Playfair Display",
	"Merriweather",
	"Source Code Pro",
}

// FontWeights lists the conventional numeric weights, thinnest first.
var FontWeights = []int{100, 200, 300, 400, 500, 600, 700, 800, 900}

// PresetColors is the swatch palette of the color picker.
var PresetColors = []string{
	"#000000",
	"#ffffff",
	"#ef4444",
	"#f97316",
	"#eab308",
	"#22c55e",
	"#06b6d4",
	"#3b82f6",
	"#8b5cf6",
	"#ec4899",
	"#6b7280",
	"#1f2937",
}

// Alignments lists the TextAlign values in control-panel order.
var Alignments = []TextAlign{AlignLeft, AlignCenter, AlignRight}

// GradientDirections lists the direction tokens in control-panel order.
var GradientDirections = []GradientDirection{
	GradientToRight,
	GradientToLeft,
	GradientToBottom,
	GradientToTop,
	GradientToBottomRight,
	GradientToBottomLeft,
}

// Animations lists the animation types in control-panel order.
var Animations = []AnimationType{
	AnimationNone,
	AnimationFadeIn,
	AnimationSlideUp,
	AnimationBounce,
	AnimationGlow,
	AnimationShimmer,
	AnimationTypewriter,
}

// HighlightStyles lists the highlight treatments in control-panel order.
var HighlightStyles = []HighlightStyle{
	StyleHighlight,
	StyleUnderline,
	StyleBackground,
	StyleBold,
	StyleItalic,
}

// Label returns the human readable name shown by the control panel.
func (d GradientDirection) Label() string {
	switch d {
	case GradientToRight:
		return "Right →"
	case GradientToLeft:
		return "Left ←"
	case GradientToBottom:
		return "Down ↓"
	case GradientToTop:
		return "Up ↑"
	case GradientToBottomRight:
		return "Bottom Right ↘"
	case GradientToBottomLeft:
		return "Bottom Left ↙"
	default:
		return string(d)
	}
}

// Label returns the human readable name shown by the control panel.
func (a AnimationType) Label() string {
	switch a {
	case AnimationNone:
		return "None"
	case AnimationFadeIn:
		return "Fade In"
	case AnimationSlideUp:
		return "Slide Up"
	case AnimationBounce:
		return "Bounce"
	case AnimationGlow:
		return "Glow"
	case AnimationShimmer:
		return "Shimmer"
	case AnimationTypewriter:
		return "Typewriter"
	default:
		return string(a)
	}
}

// WeightLabel names a numeric font weight, e.g. "Bold (700)".
func WeightLabel(weight int) string {
	names := map[int]string{
		100: "Thin",
		200: "Extra Light",
		300: "Light",
		400: "Regular",
		500: "Medium",
		600: "Semi Bold",
		700: "Bold",
		800: "Extra Bold",
		900: "Black",
	}
	name, ok := names[weight]
	if !ok {
		return strconv.Itoa(weight)
	}
	return name + " (" + strconv.Itoa(weight) + ")"
}
