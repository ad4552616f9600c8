package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/notebook-ci/nbcheck/internal/adapters/driven/storage/sqlite"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent notebook evaluations",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := sqlite.NewStore("")
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background(), historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	for _, r := range runs {
		verdict := failLabel
		if r.StaticPassed && r.DynamicPassed {
			verdict = passLabel
		}
		cmd.Printf("%s  %s  %s  kernel=%s  defects=%d  %.1fs\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			verdict,
			r.NotebookPath,
			r.Kernel,
			r.DefectCount,
			r.Duration.Seconds(),
		)
	}
	return nil
}
