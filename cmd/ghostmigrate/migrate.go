// Package main provides the entry point for the ghostmigrate CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/ghostmigrate/internal/export"
)

// runMigrate executes the migration: load, render and write every post.
func runMigrate(cmd *cobra.Command, args []string, flags migrateFlags) error {
	printer := newPrinter(cmd)

	exp, migrator, err := setup(cmd, args, &flags, flags.dryRun)
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := migrator.Run(exp)
	if err != nil {
		err = toExitError(err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return export.FormatJSON(printer, result)
	}
	return export.FormatHuman(printer, result)
}
