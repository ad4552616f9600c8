// Command nbcheck validates executable notebooks: static content-hygiene
// checks plus execution with expected-error reconciliation.
package main

import (
	"os"

	"github.com/notebook-ci/nbcheck/internal/adapters/driving/cli"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	cli.SetVersion(Version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
