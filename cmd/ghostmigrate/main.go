// Package main provides the entry point for the ghostmigrate CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/ghostmigrate/internal/config"
	"github.com/gorewood/ghostmigrate/internal/envfile"
	"github.com/gorewood/ghostmigrate/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// colorMode reads the --color persistent flag from the command hierarchy.
func colorMode(cmd *cobra.Command) (output.ColorMode, error) {
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag == nil {
		return output.ColorAuto, nil
	}
	return output.ParseColorMode(flag.Value.String())
}

// newPrinter builds the printer for a command: stdout for results, stderr
// for warnings and errors in human mode.
func newPrinter(cmd *cobra.Command) *output.Printer {
	mode, err := colorMode(cmd)
	if err != nil {
		mode = output.ColorAuto
	}
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), mode.Styled(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command. Run without a subcommand it performs
// the migration.
func newRootCmd() *cobra.Command {
	var flags migrateFlags

	cmd := &cobra.Command{
		Use:   "ghostmigrate [export.json]",
		Short: "Convert a Ghost export into Jekyll posts",
		Long: `ghostmigrate converts a Ghost blog export into Jekyll post files.

Every post that is not a page becomes _posts/<YYYY-MM-DD>-<slug>.md with a
front matter header (layout, title, date, tags, image) followed by its
markdown. Ghost's ` + "```lang-X" + ` code fences are rewritten to ` + "```X" + `.

Without an argument the export is read from the configured input, which
defaults to ghost.json next to the executable.

Examples:
  ghostmigrate                         # Migrate ghost.json into _posts/
  ghostmigrate export.json --out site/_posts
  ghostmigrate export.json --dry-run   # Show what would be written
  ghostmigrate list export.json        # Inspect posts before migrating
  ghostmigrate verify _posts           # Check the written files`,
		Version:       buildVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, args, flags)
		},
	}

	// Validate --color, then load .env.local, .env and the global env file
	// before any command runs. Environment variables always take precedence
	// over file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if _, err := colorMode(cmd); err != nil {
			userErr := output.NewUserErrorWithCause(err.Error(), err)
			newPrinter(cmd).Error(userErr)
			return userErr
		}
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always or never")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Settings file (default: ./"+config.ProjectFile+" or the global config)")
	addMigrateFlags(cmd, &flags)

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newListCmd(&flags))
	cmd.AddCommand(newVerifyCmd(&flags))
	cmd.AddCommand(newServeCmd(&flags))

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. ~/.config/ghostmigrate/env
func loadEnvFiles() {
	_, _ = envfile.Load(".env.local")
	_, _ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_, _ = envfile.Load(filepath.Join(dir, "env"))
	}
}
