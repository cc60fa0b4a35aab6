package export

import (
	"fmt"

	"github.com/gorewood/ghostmigrate/internal/output"
)

// FormatJSON writes the run summary as JSON to the printer.
func FormatJSON(printer *output.Printer, result *Result) error {
	return printer.WriteJSON(result)
}

// FormatHuman writes the written paths followed by a one-line summary.
func FormatHuman(printer *output.Printer, result *Result) error {
	for _, path := range result.Written {
		printer.Println(path)
	}
	return printer.Success(map[string]any{"message": summaryLine(result)})
}

// summaryLine returns e.g. "Wrote 3 posts to _posts (1 skipped)".
func summaryLine(result *Result) string {
	verb := "Wrote"
	if result.DryRun {
		verb = "Would write"
	}
	noun := "posts"
	if len(result.Written) == 1 {
		noun = "post"
	}
	return fmt.Sprintf("%s %d %s to %s (%d skipped)", verb, len(result.Written), noun, result.OutputDir, len(result.Skipped))
}
