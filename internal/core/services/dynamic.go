package services

import (
	"context"
	"strings"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
	"github.com/notebook-ci/nbcheck/internal/core/ports/driven"
	"github.com/notebook-ci/nbcheck/internal/logger"
)

// DynamicAnalyzer executes a notebook through the external engine and
// reconciles the captured error outputs against each cell's declared
// expected/allowed annotations.
type DynamicAnalyzer struct {
	executor driven.NotebookExecutor
}

// NewDynamicAnalyzer creates a dynamic analyzer from its executor.
func NewDynamicAnalyzer(executor driven.NotebookExecutor) *DynamicAnalyzer {
	return &DynamicAnalyzer{executor: executor}
}

// Analyse executes the notebook and returns the reconciliation report.
// The returned error is reserved for infrastructure failures (unknown
// kernel, crash, timeout), which abort the notebook's evaluation; errors
// raised by cells are captured as outputs and reconciled, never returned.
func (a *DynamicAnalyzer) Analyse(ctx context.Context, path, kernel string) (*domain.DynamicReport, error) {
	executed, err := a.executor.Execute(ctx, path, kernel)
	if err != nil {
		return nil, err
	}
	return Reconcile(executed), nil
}

// Reconcile runs both reconciliation passes over an executed notebook.
// Both passes scan the full cell sequence unconditionally so the report
// carries the complete defect list.
func Reconcile(nb *domain.Notebook) *domain.DynamicReport {
	report := &domain.DynamicReport{}

	// Pass 1: every error output must be covered by its cell's annotation.
	for _, cell := range nb.Cells {
		ann := domain.ClassifyCell(cell)
		for _, out := range cell.Errors() {
			if unexpected(ann, out.EValue) {
				logger.Debug("unexpected error: %s", out.EValue)
				report.UnexpectedErrors = append(report.UnexpectedErrors, domain.UnexpectedError{
					EValue: out.EValue,
					Source: cell.Source,
				})
			}
		}
	}

	// Pass 2: every declared-expected error must have occurred. A cell
	// with no outputs at all counts as missing.
	for _, cell := range nb.Cells {
		ann := domain.ClassifyCell(cell)
		if ann.Kind != domain.AnnotationExpected {
			continue
		}
		found := false
		for _, out := range cell.Errors() {
			if strings.Contains(out.EValue, ann.Marker) {
				found = true
				break
			}
		}
		if !found {
			report.MissingExpectedErrors = append(report.MissingExpectedErrors, domain.MissingExpectedError{
				Marker: ann.Marker,
				Source: cell.Source,
			})
		}
	}

	return report
}

// unexpected reports whether an error message falls outside the cell's
// annotation: unmarked cells tolerate no errors, marked cells tolerate
// only messages containing the marker substring (case-sensitive).
func unexpected(ann domain.Annotation, evalue string) bool {
	switch ann.Kind {
	case domain.AnnotationAllowed, domain.AnnotationExpected:
		return !strings.Contains(evalue, ann.Marker)
	default:
		return true
	}
}
