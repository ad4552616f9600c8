// Package nbconvert executes notebooks through the `jupyter nbconvert`
// command-line engine.
package nbconvert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
	"github.com/notebook-ci/nbcheck/internal/core/ports/driven"
	"github.com/notebook-ci/nbcheck/internal/logger"
)

// DefaultTimeout bounds one notebook execution. Generous because some
// notebooks run registrations that legitimately take minutes.
const DefaultTimeout = 600 * time.Second

// Ensure Executor implements the interface.
var _ driven.NotebookExecutor = (*Executor)(nil)

// Executor runs a notebook via `jupyter nbconvert --execute` as a
// blocking subprocess and reads back the executed result.
//
// Cell-level errors never fail the subprocess: execution always runs
// with allow_errors so errors are captured as outputs and reconciled by
// the dynamic analyzer. Only infrastructure failures (unknown kernel,
// crash, timeout) surface as errors, and those are fatal for the
// notebook's evaluation. No retries.
type Executor struct {
	reader  driven.NotebookReader
	command string
	timeout time.Duration
}

// Option configures an Executor.
type Option func(*Executor)

// WithCommand overrides the jupyter executable name. Useful for testing.
func WithCommand(command string) Option {
	return func(e *Executor) { e.command = command }
}

// WithTimeout overrides the per-notebook execution timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Executor) { e.timeout = timeout }
}

// NewExecutor creates an nbconvert executor that parses executed output
// with the given reader.
func NewExecutor(reader driven.NotebookReader, opts ...Option) *Executor {
	e := &Executor{
		reader:  reader,
		command: "jupyter",
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs the notebook at path with the given kernel.
//
// The executed document is written to a uniquely-named temporary file
// which is read back as a fresh notebook and then discarded. The file is
// never held open while nbconvert writes it, so removal after the read
// is safe on every platform, Windows included. The subprocess working
// directory is the notebook's own directory so relative resource paths
// inside the notebook resolve correctly.
func (e *Executor) Execute(ctx context.Context, path, kernel string) (*domain.Notebook, error) {
	dir := filepath.Dir(path)
	outDir := os.TempDir()
	outName := fmt.Sprintf("nbcheck-%s.ipynb", uuid.New().String())
	outPath := filepath.Join(outDir, outName)
	defer os.Remove(outPath)

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	args := buildArgs(kernel, int(e.timeout.Seconds()), outDir, outName, path)
	logger.Debug("running %s %s", e.command, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, e.command, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: timed out after %s", domain.ErrExecutionFailed, e.timeout)
		}
		return nil, fmt.Errorf("%w: %v: %s", domain.ErrExecutionFailed, err, strings.TrimSpace(string(output)))
	}

	nb, err := e.reader.Read(outPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading executed notebook: %v", domain.ErrExecutionFailed, err)
	}
	// The executed document keeps the source path so diagnostics point
	// at the real notebook, not the temporary copy.
	nb.Path = path
	return nb, nil
}

// buildArgs assembles the nbconvert invocation: execute in place,
// continue past cell errors, bounded per-cell timeout.
func buildArgs(kernel string, timeoutSeconds int, outDir, outName, path string) []string {
	return []string{
		"nbconvert",
		"--to", "notebook",
		"--execute",
		"--ExecutePreprocessor.kernel_name=" + kernel,
		"--ExecutePreprocessor.allow_errors=True",
		fmt.Sprintf("--ExecutePreprocessor.timeout=%d", timeoutSeconds),
		"--output-dir", outDir,
		"--output", outName,
		path,
	}
}
