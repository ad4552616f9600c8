package services

import (
	"context"
	"strings"
	"unicode"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
)

// fakeRenderer returns canned HTML per source, or a trivial paragraph wrap.
type fakeRenderer struct {
	html map[string]string
	err  error
}

func (f *fakeRenderer) Render(source string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if html, ok := f.html[source]; ok {
		return html, nil
	}
	return "<p>" + source + "</p>", nil
}

// fakeInspector returns canned links/text per HTML input. When no canned
// text exists it strips the trivial paragraph wrap.
type fakeInspector struct {
	links map[string][]string
	text  map[string]string
}

func (f *fakeInspector) Links(html string) ([]string, error) {
	return f.links[html], nil
}

func (f *fakeInspector) Text(html string) (string, error) {
	if text, ok := f.text[html]; ok {
		return text, nil
	}
	text := strings.TrimPrefix(html, "<p>")
	return strings.TrimSuffix(text, "</p>"), nil
}

// fakeChecker flags configured words, preserving order of occurrence.
type fakeChecker struct {
	bad map[string][]string // word -> suggestions
}

func (f *fakeChecker) Check(text string) []domain.Misspelling {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	var findings []domain.Misspelling
	for _, w := range words {
		if suggestions, ok := f.bad[w]; ok {
			findings = append(findings, domain.Misspelling{Word: w, Suggestions: suggestions})
		}
	}
	return findings
}

// fakeProbe marks configured URIs unreachable.
type fakeProbe struct {
	unreachable map[string]string // uri -> reason
	probed      []string
}

func (f *fakeProbe) Probe(_ context.Context, uri string) domain.Reachability {
	f.probed = append(f.probed, uri)
	if reason, ok := f.unreachable[uri]; ok {
		return domain.Unreachable(uri, reason)
	}
	return domain.Reachable(uri)
}

// fakeExecutor returns a canned executed notebook or error.
type fakeExecutor struct {
	nb    *domain.Notebook
	err   error
	calls int
}

func (f *fakeExecutor) Execute(_ context.Context, _, _ string) (*domain.Notebook, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.nb, nil
}

// fakeReader returns a canned persisted notebook or error.
type fakeReader struct {
	nb  *domain.Notebook
	err error
}

func (f *fakeReader) Read(_ string) (*domain.Notebook, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.nb, nil
}

func newEmptyStatic() *StaticAnalyzer {
	return NewStaticAnalyzer(
		&fakeRenderer{},
		&fakeInspector{},
		&fakeChecker{},
		&fakeProbe{},
	)
}
