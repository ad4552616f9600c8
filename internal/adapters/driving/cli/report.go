package cli

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
)

var (
	passLabel = color.New(color.FgGreen, color.Bold).Sprint("PASS")
	failLabel = color.New(color.FgRed, color.Bold).Sprint("FAIL")
)

// renderStatic prints the static report's diagnostics, one section per
// sub-check, naming every offending cell.
func renderStatic(cmd *cobra.Command, report *domain.StaticReport) {
	if len(report.OutputCells) > 0 {
		cmd.Println("Cells with unexpected output:\n_____________________________")
		for _, d := range report.OutputCells {
			cmd.Println(d.Source + "\n---")
		}
	} else {
		cmd.Println("no unexpected output")
	}

	if len(report.BrokenLinks) > 0 {
		cmd.Println("Cells with broken links:\n________________________")
		for _, d := range report.BrokenLinks {
			cmd.Println(d.Source + "\n")
			cmd.Println("\tBroken links:")
			cmd.Println("\t" + strings.Join(d.BrokenLinks, "\n\t") + "\n---")
		}
	} else {
		cmd.Println("no broken links")
	}

	if len(report.SpellingCells) > 0 {
		cmd.Println("Cells with spelling mistakes:\n________________________")
		for _, d := range report.SpellingCells {
			cmd.Println(d.Source + "\n")
			cmd.Println("\tMisspelled words and suggestions:")
			for _, f := range d.Findings {
				cmd.Printf("\terror: '%s', suggestions: %v\n", f.Word, f.Suggestions)
			}
			cmd.Println("---")
		}
	} else {
		cmd.Println("no spelling mistakes")
	}
}

// renderDynamic prints the dynamic report's diagnostics.
func renderDynamic(cmd *cobra.Command, report *domain.DynamicReport) {
	if len(report.UnexpectedErrors) > 0 {
		cmd.Println("Cells with unexpected errors:\n_____________________________")
		for _, d := range report.UnexpectedErrors {
			cmd.Println(d.Source)
			cmd.Println("unexpected error: " + d.EValue)
		}
	} else {
		cmd.Println("no unexpected errors")
	}

	if len(report.MissingExpectedErrors) > 0 {
		cmd.Println("\nCells with missing expected errors:\n___________________________________")
		for _, d := range report.MissingExpectedErrors {
			cmd.Println(d.Source)
			cmd.Println("missing expected error: " + d.Marker)
		}
	} else {
		cmd.Println("no missing expected errors")
	}
}

// renderEvaluation prints the full evaluation of one notebook, framed by
// begin/end markers, and the combined verdict.
func renderEvaluation(cmd *cobra.Command, ev *domain.Evaluation) {
	cmd.Printf("-------- begin (kernel %s) %s --------\n", ev.Kernel, ev.NotebookPath)
	renderStatic(cmd, ev.Static)
	renderDynamic(cmd, ev.Dynamic)
	cmd.Printf("-------- end (kernel %s) %s --------\n", ev.Kernel, ev.NotebookPath)
	cmd.Printf("%s %s (%.1fs)\n", verdictLabel(ev.Passed()), ev.NotebookPath, ev.Duration.Seconds())
}

func verdictLabel(passed bool) string {
	if passed {
		return passLabel
	}
	return failLabel
}
