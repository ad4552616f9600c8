package cli

import (
	"context"
	"errors"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/notebook-ci/nbcheck/internal/core/services"
	"github.com/notebook-ci/nbcheck/internal/logger"
)

var watchExecute bool

var watchCmd = &cobra.Command{
	Use:   "watch [notebook...]",
	Short: "Re-check notebooks whenever they change",
	Long: `Watches the given notebooks (or the configured list) and re-runs
static analysis on every save. Pass --execute to also run dynamic
analysis, which executes the notebook and is correspondingly slower.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchExecute, "execute", false, "also run dynamic analysis on change")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	notebooks := args
	if len(notebooks) == 0 {
		notebooks = cfg.Notebooks
	}
	if len(notebooks) == 0 {
		return errors.New("no notebooks given and none configured")
	}

	watched := make(map[string]bool, len(notebooks))
	dirs := make(map[string]bool)
	for _, nb := range notebooks {
		path, err := filepath.Abs(nb)
		if err != nil {
			return err
		}
		watched[path] = true
		dirs[filepath.Dir(path)] = true
	}

	evaluator, closeStore, err := buildEvaluator(watchExecute)
	if err != nil {
		return err
	}
	defer closeStore()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch directories, not files: editors typically replace the file
	// on save, which drops a file-level watch.
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("watching %d notebooks (ctrl-c to stop)\n", len(watched))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[event.Name] || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debug("change detected: %s", event.Name)
			checkOnChange(ctx, cmd, evaluator, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

func checkOnChange(ctx context.Context, cmd *cobra.Command, evaluator *services.Evaluator, path string) {
	if watchExecute {
		ev, err := evaluator.Evaluate(ctx, path, cfg.Kernel)
		if err != nil {
			cmd.PrintErrf("%s %s: %v\n", failLabel, path, err)
			return
		}
		renderEvaluation(cmd, ev)
		return
	}

	report, err := evaluator.EvaluateStatic(ctx, path)
	if err != nil {
		cmd.PrintErrf("%s %s: %v\n", failLabel, path, err)
		return
	}
	cmd.Printf("-------- static %s --------\n", path)
	renderStatic(cmd, report)
	cmd.Printf("%s %s\n", verdictLabel(report.Passed()), strings.TrimSpace(path))
}
