// Package main provides the entry point for the ghostmigrate CLI.
package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/ghostmigrate/internal/export"
	"github.com/gorewood/ghostmigrate/internal/ghost"
	"github.com/gorewood/ghostmigrate/internal/output"
)

// newListCmd creates the list command.
func newListCmd(flags *migrateFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list [export.json]",
		Short: "List the posts in an export and what will happen to each",
		Long: `List every post in a Ghost export with its publication date, tags,
target file and whether it will be migrated.

Problems that would abort a migration (unparseable dates, links to unknown
tags) are shown per post instead of stopping the listing.

Examples:
  ghostmigrate list export.json
  ghostmigrate list export.json --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, flags)
		},
	}
}

// runList executes the list command.
func runList(cmd *cobra.Command, args []string, flags *migrateFlags) error {
	printer := newPrinter(cmd)

	exp, migrator, err := setup(cmd, args, flags, true)
	if err != nil {
		printer.Error(err)
		return err
	}

	posts := migrator.Summarize(exp)
	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"count": len(posts),
			"posts": posts,
		})
	}

	printExportMeta(printer, exp)
	printer.Table([]string{"ID", "PUBLISHED", "SLUG", "TAGS", "ACTION"}, listRows(posts))
	return nil
}

// printExportMeta prints the export version and time when present.
func printExportMeta(printer *output.Printer, exp *ghost.Export) {
	if exp.Meta.Version != "" {
		printer.KeyValue("Ghost version", exp.Meta.Version)
	}
	if exported, err := exp.Meta.ExportedOn.Time(); err == nil {
		printer.KeyValue("Exported", exported.Format(time.RFC3339))
	}
	printer.KeyValue("Posts", strconv.Itoa(len(exp.Posts)))
	printer.Println()
}

// listRows builds table rows from post summaries.
func listRows(posts []export.PostSummary) [][]string {
	rows := make([][]string, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, []string{
			post.ID,
			post.Published,
			post.Slug,
			strings.Join(post.Tags, ", "),
			postAction(post),
		})
	}
	return rows
}

// postAction describes what a migration does with the post.
func postAction(post export.PostSummary) string {
	switch {
	case post.Skip != "":
		return "skip (" + post.Skip + ")"
	case post.Problem != "":
		return "error: " + post.Problem
	default:
		return "write " + post.Path
	}
}
