package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
)

func TestStaticAnalyzer_CleanNotebookPasses(t *testing.T) {
	nb := &domain.Notebook{
		Path: "/nb/clean.ipynb",
		Cells: []domain.Cell{
			{Type: domain.CellTypeMarkdown, Source: "Some heading"},
			{Type: domain.CellTypeCode, Source: "x = 1", HasOutputs: true},
		},
	}

	report := newEmptyStatic().Analyse(context.Background(), nb)
	assert.True(t, report.Passed())
}

func TestStaticAnalyzer_OutputCheck(t *testing.T) {
	tests := []struct {
		name string
		cell domain.Cell
		fail bool
	}{
		{
			name: "no outputs field",
			cell: domain.Cell{Type: domain.CellTypeCode, Source: "x = 1"},
			fail: false,
		},
		{
			name: "empty outputs",
			cell: domain.Cell{Type: domain.CellTypeCode, Source: "x = 1", HasOutputs: true},
			fail: false,
		},
		{
			name: "stored output",
			cell: domain.Cell{
				Type: domain.CellTypeCode, Source: "print(1)",
				HasOutputs: true,
				Outputs:    []domain.Output{{Type: domain.OutputTypeStream}},
			},
			fail: true,
		},
		{
			name: "stored output on markdown cell",
			cell: domain.Cell{
				Type: domain.CellTypeMarkdown, Source: "text",
				HasOutputs: true,
				Outputs:    []domain.Output{{Type: domain.OutputTypeDisplayData}},
			},
			fail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nb := &domain.Notebook{Cells: []domain.Cell{tt.cell}}
			report := newEmptyStatic().Analyse(context.Background(), nb)
			if tt.fail {
				require.Len(t, report.OutputCells, 1)
				assert.Equal(t, tt.cell.Source, report.OutputCells[0].Source)
				assert.False(t, report.Passed())
			} else {
				assert.Empty(t, report.OutputCells)
			}
		})
	}
}

func TestStaticAnalyzer_BrokenLink(t *testing.T) {
	source := "[dead](http://example.invalid/x) and [alive](http://example.com/)"
	html := "<p>links</p>"
	analyzer := NewStaticAnalyzer(
		&fakeRenderer{html: map[string]string{source: html}},
		&fakeInspector{links: map[string][]string{
			html: {"http://example.invalid/x", "http://example.com/"},
		}},
		&fakeChecker{},
		&fakeProbe{unreachable: map[string]string{
			"http://example.invalid/x": "no such host",
		}},
	)

	nb := &domain.Notebook{
		Path:  "/nb/links.ipynb",
		Cells: []domain.Cell{{Type: domain.CellTypeMarkdown, Source: source}},
	}

	report := analyzer.Analyse(context.Background(), nb)
	assert.False(t, report.Passed())
	require.Len(t, report.BrokenLinks, 1)
	assert.Equal(t, source, report.BrokenLinks[0].Source)
	// Exactly the unreachable link is listed.
	assert.Equal(t, []string{"http://example.invalid/x"}, report.BrokenLinks[0].BrokenLinks)
}

func TestStaticAnalyzer_LocalLinkResolvesToFileURI(t *testing.T) {
	source := "[data](images/scan.png)"
	html := "<p>local</p>"
	probe := &fakeProbe{}
	analyzer := NewStaticAnalyzer(
		&fakeRenderer{html: map[string]string{source: html}},
		&fakeInspector{links: map[string][]string{html: {"images/scan.png"}}},
		&fakeChecker{},
		probe,
	)

	nb := &domain.Notebook{
		Path:  "/nb/local.ipynb",
		Cells: []domain.Cell{{Type: domain.CellTypeMarkdown, Source: source}},
	}

	report := analyzer.Analyse(context.Background(), nb)
	assert.True(t, report.Passed())
	require.Len(t, probe.probed, 1)
	assert.Equal(t, "file:///nb/images/scan.png", probe.probed[0])
}

func TestStaticAnalyzer_LinksIgnoreCodeCells(t *testing.T) {
	probe := &fakeProbe{unreachable: map[string]string{"http://example.invalid/x": "down"}}
	analyzer := NewStaticAnalyzer(&fakeRenderer{}, &fakeInspector{}, &fakeChecker{}, probe)

	nb := &domain.Notebook{
		Cells: []domain.Cell{
			{Type: domain.CellTypeCode, Source: "url = 'http://example.invalid/x'"},
		},
	}

	report := analyzer.Analyse(context.Background(), nb)
	assert.True(t, report.Passed())
	assert.Empty(t, probe.probed)
}

func TestStaticAnalyzer_SpellingCodeComments(t *testing.T) {
	checker := &fakeChecker{bad: map[string][]string{
		"si":   {"is", "so"},
		"tset": {"test", "set"},
	}}
	analyzer := NewStaticAnalyzer(&fakeRenderer{}, &fakeInspector{}, checker, &fakeProbe{})

	nb := &domain.Notebook{
		Cells: []domain.Cell{{
			Type:   domain.CellTypeCode,
			Source: "# this si a tset\nx = 1  # another line\ny = si_variable",
		}},
	}

	report := analyzer.Analyse(context.Background(), nb)
	assert.False(t, report.Passed())
	require.Len(t, report.SpellingCells, 1)

	findings := report.SpellingCells[0].Findings
	// Only comment lines are checked, in order of occurrence. The bare
	// identifier on the non-comment line is not flagged.
	require.Len(t, findings, 2)
	assert.Equal(t, "si", findings[0].Word)
	assert.Equal(t, []string{"is", "so"}, findings[0].Suggestions)
	assert.Equal(t, "tset", findings[1].Word)
	assert.Equal(t, []string{"test", "set"}, findings[1].Suggestions)
}

func TestStaticAnalyzer_SpellingMarkdownUsesStrippedText(t *testing.T) {
	source := "## A **tilte** here"
	html := "<h2>A <strong>tilte</strong> here</h2>"
	analyzer := NewStaticAnalyzer(
		&fakeRenderer{html: map[string]string{source: html}},
		&fakeInspector{text: map[string]string{html: "A tilte here"}},
		&fakeChecker{bad: map[string][]string{"tilte": {"title"}}},
		&fakeProbe{},
	)

	nb := &domain.Notebook{
		Cells: []domain.Cell{{Type: domain.CellTypeMarkdown, Source: source}},
	}

	report := analyzer.Analyse(context.Background(), nb)
	require.Len(t, report.SpellingCells, 1)
	require.Len(t, report.SpellingCells[0].Findings, 1)
	assert.Equal(t, "tilte", report.SpellingCells[0].Findings[0].Word)
}

func TestStaticAnalyzer_AllChecksRunWithoutShortCircuit(t *testing.T) {
	source := "[dead](http://example.invalid/x)"
	html := "<p>dead</p>"
	analyzer := NewStaticAnalyzer(
		&fakeRenderer{html: map[string]string{source: html}},
		&fakeInspector{
			links: map[string][]string{html: {"http://example.invalid/x"}},
			text:  map[string]string{html: "daed"},
		},
		&fakeChecker{bad: map[string][]string{"daed": {"dead"}}},
		&fakeProbe{unreachable: map[string]string{"http://example.invalid/x": "down"}},
	)

	nb := &domain.Notebook{
		Cells: []domain.Cell{
			{
				Type: domain.CellTypeCode, Source: "print(1)",
				HasOutputs: true,
				Outputs:    []domain.Output{{Type: domain.OutputTypeStream}},
			},
			{Type: domain.CellTypeMarkdown, Source: source},
		},
	}

	report := analyzer.Analyse(context.Background(), nb)
	// Every defect category is present in one report.
	assert.Len(t, report.OutputCells, 1)
	assert.Len(t, report.BrokenLinks, 1)
	assert.Len(t, report.SpellingCells, 1)
}

func TestStaticAnalyzer_Idempotent(t *testing.T) {
	source := "[dead](http://example.invalid/x)"
	html := "<p>dead</p>"
	build := func() *StaticAnalyzer {
		return NewStaticAnalyzer(
			&fakeRenderer{html: map[string]string{source: html}},
			&fakeInspector{links: map[string][]string{html: {"http://example.invalid/x"}}},
			&fakeChecker{},
			&fakeProbe{unreachable: map[string]string{"http://example.invalid/x": "down"}},
		)
	}

	nb := &domain.Notebook{
		Cells: []domain.Cell{{Type: domain.CellTypeMarkdown, Source: source}},
	}

	analyzer := build()
	first := analyzer.Analyse(context.Background(), nb)
	second := analyzer.Analyse(context.Background(), nb)
	assert.Equal(t, first, second)
}
