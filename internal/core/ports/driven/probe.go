package driven

import (
	"context"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
)

// LinkProbe answers whether a hyperlink target can be opened.
//
// The probe is purely a reachability question: any failure to open the
// target (network error, HTTP error status, missing file) folds into an
// Unreachable result, never into a returned error. Probes are
// single-attempt; transient network flakiness is an accepted source of
// false failures.
type LinkProbe interface {
	// Probe attempts to open uri and reports the outcome.
	Probe(ctx context.Context, uri string) domain.Reachability
}
