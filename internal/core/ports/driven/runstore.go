package driven

import (
	"context"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
)

// RunStore persists notebook evaluation history.
type RunStore interface {
	// SaveRun records one notebook evaluation.
	SaveRun(ctx context.Context, rec domain.RunRecord) error

	// ListRuns returns the most recent runs, newest first, up to limit.
	// A non-positive limit returns all runs.
	ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Close releases the underlying storage.
	Close() error
}
