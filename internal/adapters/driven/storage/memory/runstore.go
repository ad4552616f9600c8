// Package memory provides in-memory implementations of the storage ports.
// Used in tests and as a fallback when persistence is disabled.
package memory

import (
	"context"
	"sync"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
	"github.com/notebook-ci/nbcheck/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs []domain.RunRecord
}

// NewRunStore creates an empty in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

// SaveRun records one notebook evaluation.
func (s *RunStore) SaveRun(_ context.Context, rec domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, rec)
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *RunStore) ListRuns(_ context.Context, limit int) ([]domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.RunRecord, 0, len(s.runs))
	for i := len(s.runs) - 1; i >= 0; i-- {
		result = append(result, s.runs[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// Close is a no-op for the in-memory store.
func (s *RunStore) Close() error {
	return nil
}
