package driven

// MarkdownRenderer renders markdown cell source to HTML.
type MarkdownRenderer interface {
	// Render converts markdown text to an HTML document fragment.
	Render(source string) (string, error)
}

// HTMLInspector extracts information from rendered HTML.
type HTMLInspector interface {
	// Links returns every hyperlink target in the HTML, in document order.
	Links(html string) ([]string, error)

	// Text returns the HTML's text content with all markup stripped,
	// adjacent text nodes joined by a single space.
	Text(html string) (string, error)
}
