package services

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
	"github.com/notebook-ci/nbcheck/internal/core/ports/driven"
	"github.com/notebook-ci/nbcheck/internal/logger"
)

// commentPattern matches comment lines in code cell source: one or more
// '#' characters and the rest of the line.
var commentPattern = regexp.MustCompile(`#+.*`)

// StaticAnalyzer performs content-hygiene analysis of a notebook without
// executing it: no stale output, no broken hyperlinks, no spelling defects.
type StaticAnalyzer struct {
	renderer  driven.MarkdownRenderer
	inspector driven.HTMLInspector
	checker   driven.SpellChecker
	probe     driven.LinkProbe
}

// NewStaticAnalyzer creates a static analyzer from its collaborators.
func NewStaticAnalyzer(
	renderer driven.MarkdownRenderer,
	inspector driven.HTMLInspector,
	checker driven.SpellChecker,
	probe driven.LinkProbe,
) *StaticAnalyzer {
	return &StaticAnalyzer{
		renderer:  renderer,
		inspector: inspector,
		checker:   checker,
		probe:     probe,
	}
}

// Analyse runs the three static sub-checks over the notebook and returns
// the aggregated report. All sub-checks run to completion so a single
// pass reports every category of defect, not just the first one found.
// The notebook is never mutated; repeated calls yield identical reports.
func (a *StaticAnalyzer) Analyse(ctx context.Context, nb *domain.Notebook) *domain.StaticReport {
	report := &domain.StaticReport{}

	a.checkOutputs(nb, report)
	a.checkLinks(ctx, nb, report)
	a.checkSpelling(nb, report)

	return report
}

// checkOutputs flags cells persisted with a non-empty outputs sequence.
// Notebooks must be stored fresh; this inspects only the source-of-truth
// document, never an execution result. Applies to every cell type.
func (a *StaticAnalyzer) checkOutputs(nb *domain.Notebook, report *domain.StaticReport) {
	for _, cell := range nb.Cells {
		if cell.HasOutputs && len(cell.Outputs) > 0 {
			report.OutputCells = append(report.OutputCells, domain.OutputDiagnostic{Source: cell.Source})
		}
	}
}

// checkLinks verifies every hyperlink in the markdown cells. Targets
// without the "http" scheme marker are treated as local paths and
// resolved to file URIs relative to the notebook's directory.
func (a *StaticAnalyzer) checkLinks(ctx context.Context, nb *domain.Notebook, report *domain.StaticReport) {
	dir := filepath.Dir(nb.Path)

	for _, cell := range nb.Cells {
		if cell.Type != domain.CellTypeMarkdown {
			continue
		}

		html, err := a.renderer.Render(cell.Source)
		if err != nil {
			logger.Warn("rendering markdown cell: %v", err)
			continue
		}
		links, err := a.inspector.Links(html)
		if err != nil {
			logger.Warn("extracting links: %v", err)
			continue
		}

		var broken []string
		for _, link := range links {
			uri := resolveLink(dir, link)
			if result := a.probe.Probe(ctx, uri); !result.Reachable {
				logger.Debug("unreachable link %s: %s", result.URI, result.Reason)
				broken = append(broken, uri)
			}
		}
		if len(broken) > 0 {
			report.BrokenLinks = append(report.BrokenLinks, domain.LinkDiagnostic{
				Source:      cell.Source,
				BrokenLinks: broken,
			})
		}
	}
}

// resolveLink turns a hyperlink target into a probeable URI. Targets not
// containing "http" are local files resolved against the notebook
// directory (forward slashes, so Windows paths form valid URIs).
func resolveLink(dir, link string) string {
	if strings.Contains(link, "http") {
		return link
	}
	abs := link
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(dir, link)
	}
	return "file:///" + strings.TrimPrefix(filepath.ToSlash(abs), "/")
}

// checkSpelling spell-checks markdown cells (rendered text with markup
// stripped) and code cells (comment lines only).
func (a *StaticAnalyzer) checkSpelling(nb *domain.Notebook, report *domain.StaticReport) {
	for _, cell := range nb.Cells {
		var text string

		switch cell.Type {
		case domain.CellTypeMarkdown:
			html, err := a.renderer.Render(cell.Source)
			if err != nil {
				logger.Warn("rendering markdown cell: %v", err)
				continue
			}
			text, err = a.inspector.Text(html)
			if err != nil {
				logger.Warn("stripping markup: %v", err)
				continue
			}
		case domain.CellTypeCode:
			comments := commentPattern.FindAllString(cell.Source, -1)
			if len(comments) == 0 {
				continue
			}
			text = strings.Join(comments, "\n")
		default:
			continue
		}

		if findings := a.checker.Check(text); len(findings) > 0 {
			report.SpellingCells = append(report.SpellingCells, domain.SpellingDiagnostic{
				Source:   cell.Source,
				Findings: findings,
			})
		}
	}
}
