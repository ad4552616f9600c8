// Package cli implements the nbcheck command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/notebook-ci/nbcheck/internal/adapters/driven/config/file"
	"github.com/notebook-ci/nbcheck/internal/logger"
)

var version = "dev"

var (
	flagConfig  string
	flagVerbose bool

	cfg file.Config
)

var rootCmd = &cobra.Command{
	Use:   "nbcheck",
	Short: "Static and dynamic validation of executable notebooks",
	Long: `nbcheck validates a corpus of executable notebooks.

Static analysis checks content hygiene: no stored output, no broken
hyperlinks, no spelling defects. Dynamic analysis executes every cell and
reconciles the captured errors against the per-cell expected/allowed
error annotations, so cells designed to fail don't break the suite while
new, undeclared failures still do.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		path := flagConfig
		if path == "" {
			var err error
			path, err = file.DefaultPath()
			if err != nil {
				return err
			}
		}
		var err error
		cfg, err = file.Load(path)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.nbcheck/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}
