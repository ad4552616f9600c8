package driven

import (
	"github.com/notebook-ci/nbcheck/internal/core/domain"
)

// SpellChecker reports unrecognised words in a piece of text.
//
// Implementations are configured with a base dictionary plus a
// supplementary word list of domain terms, and must exempt email
// addresses and URLs from being flagged. Findings preserve order of
// occurrence. Checking is stateless across calls.
type SpellChecker interface {
	// Check returns the misspellings found in text, in order of occurrence.
	Check(text string) []domain.Misspelling
}
