package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Markup is what a parsed HTML artifact contains.
type Markup struct {
	Text  string
	Class string
	CSS   string
}

// Inspect parses an HTML artifact and extracts the headline element and the
// embedded stylesheet.
func Inspect(markup string) (Markup, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return Markup{}, fmt.Errorf("parse html: %w", err)
	}

	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return Markup{}, errors.New("html artifact has no h1 element")
	}

	class, _ := h1.Attr("class")
	return Markup{
		Text:  h1.Text(),
		Class: class,
		CSS:   strings.TrimSpace(doc.Find("style").First().Text()),
	}, nil
}
