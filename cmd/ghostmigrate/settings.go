// Package main provides the entry point for the ghostmigrate CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/ghostmigrate/internal/config"
	"github.com/gorewood/ghostmigrate/internal/export"
	"github.com/gorewood/ghostmigrate/internal/ghost"
	"github.com/gorewood/ghostmigrate/internal/output"
)

// migrateFlags holds the flags shared by the commands that read an export.
type migrateFlags struct {
	configPath  string
	outDir      string
	extension   string
	missingTags string
	skipDrafts  bool
	dryRun      bool
}

// addMigrateFlags registers the migration flags on the root command.
func addMigrateFlags(cmd *cobra.Command, flags *migrateFlags) {
	cmd.PersistentFlags().StringVar(&flags.outDir, "out", "", "Output directory (default: _posts)")
	cmd.PersistentFlags().StringVar(&flags.extension, "ext", "", "Post file extension (default: md)")
	cmd.PersistentFlags().StringVar(&flags.missingTags, "missing-tags", "", "Unknown tag links: fail or skip (default: fail)")
	cmd.PersistentFlags().BoolVar(&flags.skipDrafts, "skip-drafts", false, "Skip posts with draft status")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Render posts without writing files")
}

// resolveSettings merges the settings file, environment and flags.
func resolveSettings(cmd *cobra.Command, flags *migrateFlags) (config.Settings, error) {
	settings, _, err := config.Load(flags.configPath)
	if err != nil {
		return settings, output.NewUserErrorWithCause(err.Error(), err)
	}

	if cmd.Flags().Changed("out") {
		settings.OutputDir = flags.outDir
	}
	if cmd.Flags().Changed("ext") {
		settings.Extension = flags.extension
	}
	if cmd.Flags().Changed("missing-tags") {
		settings.MissingTags = flags.missingTags
	}
	if cmd.Flags().Changed("skip-drafts") {
		settings.SkipDrafts = flags.skipDrafts
	}
	return settings, nil
}

// migrationOptions turns settings into migrator options.
func migrationOptions(settings config.Settings, dryRun bool) (export.Options, error) {
	policy, err := export.ParseMissingTagPolicy(settings.MissingTags)
	if err != nil {
		return export.Options{}, output.NewUserErrorWithCause(err.Error(), err)
	}
	return export.Options{
		OutputDir:   settings.OutputDir,
		Extension:   settings.Extension,
		Layout:      settings.Layout,
		MissingTags: policy,
		SkipDrafts:  settings.SkipDrafts,
		DryRun:      dryRun,
	}, nil
}

// inputPath returns the positional export path or the configured default.
func inputPath(args []string, settings config.Settings) string {
	if len(args) > 0 {
		return args[0]
	}
	return settings.InputPath()
}

// loadExport reads the export and converts loader errors into exit errors.
func loadExport(path string) (*ghost.Export, error) {
	exp, err := ghost.Load(path)
	if err == nil {
		return exp, nil
	}
	return nil, toExitError(err)
}

// toExitError maps domain errors onto CLI exit codes. Errors that already
// carry a code pass through unchanged.
func toExitError(err error) error {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	var notFound *ghost.FileNotFoundError
	var dateErr *export.InvalidDateError
	var tagErr *ghost.TagNotFoundError
	switch {
	case errors.As(err, &notFound),
		errors.Is(err, ghost.ErrMalformedInput),
		errors.As(err, &dateErr),
		errors.As(err, &tagErr):
		return output.NewUserErrorWithCause(err.Error(), err)
	default:
		return output.NewSystemErrorWithCause(fmt.Sprintf("unexpected failure: %v", err), err)
	}
}

// setup resolves settings and loads the export for commands that need both.
func setup(cmd *cobra.Command, args []string, flags *migrateFlags, dryRun bool) (*ghost.Export, *export.Migrator, error) {
	printer := newPrinter(cmd)

	settings, err := resolveSettings(cmd, flags)
	if err != nil {
		return nil, nil, err
	}
	opts, err := migrationOptions(settings, dryRun)
	if err != nil {
		return nil, nil, err
	}

	exp, err := loadExport(inputPath(args, settings))
	if err != nil {
		return nil, nil, err
	}
	return exp, export.NewMigrator(opts, printer), nil
}
