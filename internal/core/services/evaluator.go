package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
	"github.com/notebook-ci/nbcheck/internal/core/ports/driven"
	"github.com/notebook-ci/nbcheck/internal/logger"
)

// Evaluator runs the full evaluation of one notebook: static analysis of
// the persisted document, then dynamic analysis of an executed copy.
type Evaluator struct {
	reader  driven.NotebookReader
	static  *StaticAnalyzer
	dynamic *DynamicAnalyzer
	runs    driven.RunStore
}

// NewEvaluator creates an evaluator. The run store may be nil, in which
// case runs are not recorded.
func NewEvaluator(
	reader driven.NotebookReader,
	static *StaticAnalyzer,
	dynamic *DynamicAnalyzer,
	runs driven.RunStore,
) *Evaluator {
	return &Evaluator{
		reader:  reader,
		static:  static,
		dynamic: dynamic,
		runs:    runs,
	}
}

// Evaluate runs static then dynamic analysis for the notebook at path.
// Dynamic analysis is attempted even when static analysis already failed,
// so one run surfaces all defects. The suite verdict is the logical AND
// of both. Only infrastructure failures (unreadable notebook, execution
// engine failure) return an error.
func (e *Evaluator) Evaluate(ctx context.Context, path, kernel string) (*domain.Evaluation, error) {
	started := time.Now()

	// The statically-analysed document and the executed document are
	// independent instances; the two are never merged.
	nb, err := e.reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading notebook %s: %w", path, err)
	}

	staticReport := e.static.Analyse(ctx, nb)

	dynamicReport, err := e.dynamic.Analyse(ctx, path, kernel)
	if err != nil {
		return nil, fmt.Errorf("executing notebook %s: %w", path, err)
	}

	ev := &domain.Evaluation{
		NotebookPath: path,
		Kernel:       kernel,
		Static:       staticReport,
		Dynamic:      dynamicReport,
		StartedAt:    started,
		Duration:     time.Since(started),
	}

	if e.runs != nil {
		rec := domain.NewRunRecord(uuid.New().String(), ev)
		if err := e.runs.SaveRun(ctx, rec); err != nil {
			// History is best-effort; a storage failure must not fail
			// the evaluation.
			logger.Warn("recording run: %v", err)
		}
	}

	return ev, nil
}

// EvaluateStatic runs only the static analysis for the notebook at path.
// Used by watch mode, where re-executing on every file event would be
// too slow.
func (e *Evaluator) EvaluateStatic(ctx context.Context, path string) (*domain.StaticReport, error) {
	nb, err := e.reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading notebook %s: %w", path, err)
	}
	return e.static.Analyse(ctx, nb), nil
}
