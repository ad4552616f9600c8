package driven

import (
	"context"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
)

// NotebookExecutor runs a notebook through an external execution engine
// and returns the executed document with per-cell outputs populated.
//
// The engine must continue past cell-level errors: an error raised by a
// cell becomes a regular error output, never an Execute error. Execute
// fails only for infrastructure reasons (unknown kernel, process crash,
// timeout), in which case the returned error wraps
// domain.ErrExecutionFailed and the notebook's evaluation aborts.
type NotebookExecutor interface {
	// Execute runs the notebook at path with the given kernel and reads
	// back the executed result as a fresh document.
	Execute(ctx context.Context, path, kernel string) (*domain.Notebook, error)
}
