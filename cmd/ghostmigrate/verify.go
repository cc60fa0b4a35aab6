// Package main provides the entry point for the ghostmigrate CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/ghostmigrate/internal/export"
	"github.com/gorewood/ghostmigrate/internal/output"
	"github.com/gorewood/ghostmigrate/internal/verify"
)

// newVerifyCmd creates the verify command.
func newVerifyCmd(flags *migrateFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [dir]",
		Short: "Check migrated post files",
		Long: `Check the post files in a directory (default: the configured output
directory). Each file must be named YYYY-MM-DD-slug.ext, carry front matter
with a layout, title and date, and contain no code fence still tagged lang-X.

Exits with status 3 when any problem is found.

Examples:
  ghostmigrate verify
  ghostmigrate verify site/_posts --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args, flags)
		},
	}
}

// runVerify executes the verify command.
func runVerify(cmd *cobra.Command, args []string, flags *migrateFlags) error {
	printer := newPrinter(cmd)

	settings, err := resolveSettings(cmd, flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	dir := settings.OutputDir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		dir = export.DefaultOutputDir
	}
	ext := settings.Extension
	if ext == "" {
		ext = export.DefaultExtension
	}

	report, err := verify.Dir(dir, ext)
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(userErr)
		return userErr
	}

	if printer.IsJSON() {
		if err := printer.WriteJSON(report); err != nil {
			return err
		}
	} else {
		printVerifyReport(printer, report)
	}

	if !report.OK() {
		return output.NewVerifyError(fmt.Sprintf("%d problems in %s", len(report.Findings), dir))
	}
	return nil
}

// printVerifyReport prints findings as a table followed by a summary line.
func printVerifyReport(printer *output.Printer, report *verify.Report) {
	if report.OK() {
		_ = printer.Success(map[string]any{
			"message": fmt.Sprintf("Checked %d posts, no problems found", report.Checked),
		})
		return
	}

	rows := make([][]string, 0, len(report.Findings))
	for _, finding := range report.Findings {
		rows = append(rows, []string{finding.Path, finding.Problem})
	}
	printer.Table([]string{"FILE", "PROBLEM"}, rows)
	printer.Warn("checked %d posts, found %d problems", report.Checked, len(report.Findings))
}
