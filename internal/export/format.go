// Package export turns a headline configuration into portable artifacts:
// the settings document itself, a stylesheet, an HTML snippet and a React
// component.
package export

import (
	"fmt"
	"strings"
)

// Format identifies one export artifact.
type Format string

const (
	FormatJSON  Format = "json"
	FormatCSS   Format = "css"
	FormatHTML  Format = "html"
	FormatReact Format = "react"
)

// Formats lists every format in presentation order.
var Formats = []Format{FormatJSON, FormatCSS, FormatHTML, FormatReact}

// ParseFormat resolves a format id, case-insensitively.
func ParseFormat(id string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(id)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want one of json, css, html, react)", id)
}

// Label is the human readable tab name of the format.
func (f Format) Label() string {
	switch f {
	case FormatJSON:
		return "JSON Settings"
	case FormatCSS:
		return "CSS Styles"
	case FormatHTML:
		return "HTML Code"
	case FormatReact:
		return "React Component"
	default:
		return string(f)
	}
}

// Extension is the file extension used when the artifact is saved.
func (f Format) Extension() string {
	if f == FormatReact {
		return "tsx"
	}
	return string(f)
}

// Filename is the download name of the artifact, e.g. "headline-react.tsx".
func (f Format) Filename() string {
	return "headline-" + string(f) + "." + f.Extension()
}
