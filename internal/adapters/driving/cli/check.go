package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/notebook-ci/nbcheck/internal/logger"
)

var checkKernel string

var checkCmd = &cobra.Command{
	Use:   "check [notebook...]",
	Short: "Run static and dynamic analysis of notebooks",
	Long: `Evaluates each notebook in sequence: static analysis of the stored
file, then dynamic analysis of an executed copy. Both always run so one
invocation surfaces the complete defect list. The suite verdict per
notebook is the logical AND of both analyses.

With no arguments the configured notebook list is evaluated.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkKernel, "kernel", "k", "", "execution kernel (default from config)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	notebooks := args
	if len(notebooks) == 0 {
		notebooks = cfg.Notebooks
	}
	if len(notebooks) == 0 {
		return errors.New("no notebooks given and none configured")
	}

	kernel := checkKernel
	if kernel == "" {
		kernel = cfg.Kernel
	}

	evaluator, closeStore, err := buildEvaluator(true)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := context.Background()
	failed := 0
	for _, nb := range notebooks {
		path, err := filepath.Abs(nb)
		if err != nil {
			return err
		}

		logger.Section(path)
		ev, err := evaluator.Evaluate(ctx, path, kernel)
		if err != nil {
			// Infrastructure failure: this notebook has no verdict.
			// Remaining notebooks are still evaluated.
			cmd.PrintErrf("%s %s: %v\n", failLabel, path, err)
			failed++
			continue
		}

		renderEvaluation(cmd, ev)
		if !ev.Passed() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d notebooks failed", failed, len(notebooks))
	}
	return nil
}
