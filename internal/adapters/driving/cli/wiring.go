package cli

import (
	"fmt"
	"time"

	"github.com/notebook-ci/nbcheck/internal/adapters/driven/linkprobe"
	"github.com/notebook-ci/nbcheck/internal/adapters/driven/markdown"
	"github.com/notebook-ci/nbcheck/internal/adapters/driven/nbconvert"
	"github.com/notebook-ci/nbcheck/internal/adapters/driven/nbformat"
	"github.com/notebook-ci/nbcheck/internal/adapters/driven/spellcheck"
	"github.com/notebook-ci/nbcheck/internal/adapters/driven/storage/sqlite"
	"github.com/notebook-ci/nbcheck/internal/core/ports/driven"
	"github.com/notebook-ci/nbcheck/internal/core/services"
	"github.com/notebook-ci/nbcheck/internal/logger"
)

// buildEvaluator wires the analyzers to their adapters from the loaded
// configuration. The returned closer releases the run store (nil-safe).
func buildEvaluator(withHistory bool) (*services.Evaluator, func(), error) {
	checker, err := spellcheck.New(spellcheck.Config{
		DictionaryPath: cfg.Dictionary,
		WordListPath:   cfg.WordList,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("configuring spell checker: %w", err)
	}

	reader := nbformat.NewReader()
	static := services.NewStaticAnalyzer(
		markdown.NewRenderer(),
		markdown.NewInspector(),
		checker,
		linkprobe.New(
			linkprobe.WithRate(cfg.Links.RatePerSecond),
			linkprobe.WithTimeout(time.Duration(cfg.Links.TimeoutSeconds)*time.Second),
		),
	)
	dynamic := services.NewDynamicAnalyzer(nbconvert.NewExecutor(
		reader,
		nbconvert.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
	))

	var runs driven.RunStore
	closer := func() {}
	if withHistory && cfg.History {
		store, err := sqlite.NewStore("")
		if err != nil {
			// History is best-effort: evaluation proceeds without it.
			logger.Warn("opening run store: %v", err)
		} else {
			runs = store
			closer = func() { _ = store.Close() }
		}
	}

	return services.NewEvaluator(reader, static, dynamic, runs), closer, nil
}
