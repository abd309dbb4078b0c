package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"text/template"

	"github.com/alexisbeaulieu97/headliner/internal/settings"
	"github.com/alexisbeaulieu97/headliner/internal/style"
)

// Selector is the class every stylesheet rule targets.
const Selector = ".headline"

// Artifacts holds the four generated texts for one configuration.
type Artifacts struct {
	JSON  string
	CSS   string
	HTML  string
	React string
}

// Get returns the artifact for f, or "" for an unknown format.
func (a Artifacts) Get(f Format) string {
	switch f {
	case FormatJSON:
		return a.JSON
	case FormatCSS:
		return a.CSS
	case FormatHTML:
		return a.HTML
	case FormatReact:
		return a.React
	default:
		return ""
	}
}

var (
	htmlTemplate = template.Must(template.New("html").Parse(`<h1 class="{{.Class}}">{{.Text}}</h1>

<style>
{{.CSS}}
</style>`))

	reactTemplate = template.Must(template.New("react").Parse(`import React from 'react';
import { motion } from 'framer-motion';

const Headline = () => {
  const style = {
{{- range .Style}}
    {{.Key}}: {{.Value}},
{{- end}}
  };

  return (
    <motion.h1
      style={style}
      initial={{"{{"}} {{.Initial}} {{"}}"}}
      animate={{"{{"}} {{.Animate}} {{"}}"}}
      transition={{"{{"}} duration: {{.Duration}}, delay: {{.Delay}} {{"}}"}}
    >
      {{.Text}}
    </motion.h1>
  );
};

export default Headline;`))
)

type reactEntry struct {
	Key   string
	Value string
}

type reactData struct {
	Style    []reactEntry
	Initial  string
	Animate  string
	Duration string
	Delay    string
	Text     string
}

type htmlData struct {
	Class string
	Text  string
	CSS   string
}

// Generate renders every artifact for s. Output is deterministic.
func Generate(s settings.HeadlineSettings) (Artifacts, error) {
	doc, err := JSON(s)
	if err != nil {
		return Artifacts{}, err
	}

	css := CSS(s)

	markup, err := HTML(s, css)
	if err != nil {
		return Artifacts{}, err
	}

	component, err := React(s)
	if err != nil {
		return Artifacts{}, err
	}

	return Artifacts{JSON: doc, CSS: css, HTML: markup, React: component}, nil
}

// JSON serialises the full settings record with two-space indentation.
func JSON(s settings.HeadlineSettings) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode settings: %w", err)
	}
	return string(data), nil
}

// ParseJSON reads a JSON artifact back into a settings record.
func ParseJSON(doc string) (settings.HeadlineSettings, error) {
	var s settings.HeadlineSettings
	if err := json.Unmarshal([]byte(doc), &s); err != nil {
		return settings.HeadlineSettings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

// CSS renders the stylesheet: the headline rule, then an animation rule and
// its keyframes unless the animation is none.
func CSS(s settings.HeadlineSettings) string {
	d := style.Decide(s)

	decls := style.Typography(s, func(family string) string {
		return cssString(family) + ", sans-serif"
	})
	decls = append(decls, d.Fill()...)
	decls = append(decls, d.Effects()...)

	var b strings.Builder
	writeRule(&b, Selector, decls)

	if s.AnimationType != settings.AnimationNone {
		b.WriteString("\n\n")
		writeRule(&b, Selector, []style.Declaration{{Property: "animation", Value: style.AnimationShorthand(s)}})
		b.WriteString("\n\n@keyframes " + string(s.AnimationType) + " {\n")
		for _, line := range style.Keyframes(s.AnimationType) {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("}")
	}

	return b.String()
}

func writeRule(b *strings.Builder, selector string, decls []style.Declaration) {
	b.WriteString(selector + " {\n")
	for _, d := range decls {
		b.WriteString("  " + d.Property + ": " + d.Value + ";\n")
	}
	b.WriteString("}")
}

// HTML renders the markup snippet with css embedded in a style element. The
// headline text is escaped.
func HTML(s settings.HeadlineSettings, css string) (string, error) {
	var buf bytes.Buffer
	err := htmlTemplate.Execute(&buf, htmlData{
		Class: strings.TrimPrefix(Selector, "."),
		Text:  html.EscapeString(s.Text),
		CSS:   css,
	})
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// numericKeys are emitted as bare numbers in the React style object.
var numericKeys = map[string]bool{
	"fontWeight": true,
	"lineHeight": true,
}

// React renders a framer-motion component. Only fade-in and slide-up get a
// vertical offset; every other type is a plain opacity fade.
func React(s settings.HeadlineSettings) (string, error) {
	d := style.Decide(s)

	decls := style.Typography(s, func(family string) string {
		return family + ", sans-serif"
	})
	decls = append(decls, d.Fill()...)
	decls = append(decls, d.Effects()...)

	entries := make([]reactEntry, 0, len(decls))
	for _, decl := range decls {
		key := decl.CamelName()
		value := jsString(decl.Value)
		if numericKeys[key] {
			value = decl.Value
		}
		entries = append(entries, reactEntry{Key: key, Value: value})
	}

	initial, animate := "opacity: 0", "opacity: 1"
	if offset, ok := style.EntryOffset(s.AnimationType); ok {
		initial += ", y: " + style.FormatNumber(offset)
		animate += ", y: 0"
	}

	var buf bytes.Buffer
	err := reactTemplate.Execute(&buf, reactData{
		Style:    entries,
		Initial:  initial,
		Animate:  animate,
		Duration: style.FormatNumber(s.AnimationDuration),
		Delay:    style.FormatNumber(s.AnimationDelay),
		Text:     jsxText(s.Text),
	})
	if err != nil {
		return "", fmt.Errorf("render react: %w", err)
	}
	return buf.String(), nil
}

func jsString(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)
	return "'" + r.Replace(v) + "'"
}

// cssString quotes v as a single-quoted CSS string.
func cssString(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\a `)
	return "'" + r.Replace(v) + "'"
}

// jsxText escapes text for use as a JSX child.
func jsxText(v string) string {
	return strings.NewReplacer("{", "&#123;", "}", "&#125;").Replace(html.EscapeString(v))
}
