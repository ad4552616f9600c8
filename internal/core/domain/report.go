package domain

import "time"

// OutputDiagnostic names a cell that was persisted with stale output.
type OutputDiagnostic struct {
	// Source is the offending cell's source text.
	Source string
}

// LinkDiagnostic names a markdown cell with one or more broken hyperlinks.
type LinkDiagnostic struct {
	// Source is the offending cell's source text.
	Source string

	// BrokenLinks lists the resolved URIs that failed the reachability probe.
	BrokenLinks []string
}

// SpellingDiagnostic names a cell with one or more unrecognised words.
type SpellingDiagnostic struct {
	// Source is the offending cell's source text.
	Source string

	// Findings lists the misspelled words with suggestions, in order of
	// occurrence.
	Findings []Misspelling
}

// Misspelling is a single spell-check finding.
type Misspelling struct {
	// Word is the unrecognised word.
	Word string

	// Suggestions are the checker's proposed corrections.
	Suggestions []string
}

// StaticReport aggregates the three static sub-checks for one notebook.
// All sub-checks run to completion so a single report carries every
// category of defect.
type StaticReport struct {
	OutputCells   []OutputDiagnostic
	BrokenLinks   []LinkDiagnostic
	SpellingCells []SpellingDiagnostic
}

// Passed reports the static verdict: no stale output, no broken links,
// no spelling defects.
func (r *StaticReport) Passed() bool {
	return len(r.OutputCells) == 0 && len(r.BrokenLinks) == 0 && len(r.SpellingCells) == 0
}

// UnexpectedError names an error output that no annotation covers.
type UnexpectedError struct {
	// EValue is the captured error message.
	EValue string

	// Source is the offending cell's source text.
	Source string
}

// MissingExpectedError names a declared-expected error that never occurred.
type MissingExpectedError struct {
	// Marker is the declared expected-error substring.
	Marker string

	// Source is the offending cell's source text.
	Source string
}

// DynamicReport aggregates the execution reconciliation for one notebook.
type DynamicReport struct {
	UnexpectedErrors      []UnexpectedError
	MissingExpectedErrors []MissingExpectedError
}

// Passed reports the dynamic verdict: no unexpected errors and no missing
// expected errors.
func (r *DynamicReport) Passed() bool {
	return len(r.UnexpectedErrors) == 0 && len(r.MissingExpectedErrors) == 0
}

// Evaluation is the combined outcome of one notebook's full evaluation.
type Evaluation struct {
	// NotebookPath is the evaluated notebook.
	NotebookPath string

	// Kernel is the execution kernel used for dynamic analysis.
	Kernel string

	// Static is the static analysis report.
	Static *StaticReport

	// Dynamic is the dynamic analysis report.
	Dynamic *DynamicReport

	// StartedAt is when the evaluation began.
	StartedAt time.Time

	// Duration is the total evaluation wall time.
	Duration time.Duration
}

// Passed reports the suite verdict: the logical AND of both analyses.
func (e *Evaluation) Passed() bool {
	return e.Static.Passed() && e.Dynamic.Passed()
}

// RunRecord is a persisted summary of one notebook evaluation.
type RunRecord struct {
	// ID is the unique run identifier.
	ID string

	// NotebookPath is the evaluated notebook.
	NotebookPath string

	// Kernel is the execution kernel used.
	Kernel string

	// StaticPassed is the static verdict.
	StaticPassed bool

	// DynamicPassed is the dynamic verdict.
	DynamicPassed bool

	// DefectCount is the total number of diagnostics across both reports.
	DefectCount int

	// StartedAt is when the evaluation began.
	StartedAt time.Time

	// Duration is the total evaluation wall time.
	Duration time.Duration
}

// NewRunRecord summarises an evaluation for persistence.
func NewRunRecord(id string, e *Evaluation) RunRecord {
	defects := len(e.Static.OutputCells) + len(e.Static.BrokenLinks) +
		len(e.Static.SpellingCells) + len(e.Dynamic.UnexpectedErrors) +
		len(e.Dynamic.MissingExpectedErrors)
	return RunRecord{
		ID:            id,
		NotebookPath:  e.NotebookPath,
		Kernel:        e.Kernel,
		StaticPassed:  e.Static.Passed(),
		DynamicPassed: e.Dynamic.Passed(),
		DefectCount:   defects,
		StartedAt:     e.StartedAt,
		Duration:      e.Duration,
	}
}
