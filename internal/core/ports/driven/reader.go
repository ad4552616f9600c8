package driven

import (
	"github.com/notebook-ci/nbcheck/internal/core/domain"
)

// NotebookReader reads a persisted notebook file into the domain model.
//
// The returned notebook is the immutable source-of-truth for static
// analysis. Every call returns a fresh instance: callers never share cell
// objects between a statically-loaded notebook and an executed one.
type NotebookReader interface {
	// Read parses the notebook at path.
	Read(path string) (*domain.Notebook, error)
}
