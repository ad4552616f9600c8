package markdown

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/notebook-ci/nbcheck/internal/core/ports/driven"
)

// Ensure Inspector implements the interface.
var _ driven.HTMLInspector = (*Inspector)(nil)

// Inspector walks an HTML tree to extract hyperlink targets and plain
// text.
type Inspector struct{}

// NewInspector creates an HTML inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// linkAttrs maps element names to the attribute holding their target.
var linkAttrs = map[string]string{
	"a":   "href",
	"img": "src",
}

// Links returns every hyperlink target in document order.
func (i *Inspector) Links(source string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return nil, err
	}

	var links []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if attr, ok := linkAttrs[n.Data]; ok {
				for _, a := range n.Attr {
					if a.Key == attr && a.Val != "" {
						links = append(links, a.Val)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

// Text returns the document's text content with markup stripped, text
// nodes joined by a single space.
func (i *Inspector) Text(source string) (string, error) {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return "", err
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(parts, " "), nil
}
