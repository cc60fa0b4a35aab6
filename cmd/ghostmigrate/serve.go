// Package main provides the entry point for the ghostmigrate CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	migratemcp "github.com/gorewood/ghostmigrate/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(flags *migrateFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve [export.json]",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run ghostmigrate as a Model Context Protocol (MCP) server over stdio.

The export is loaded once at startup. Agents can then list its posts and
preview the Jekyll file for any of them; nothing is written.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "ghostmigrate": {
        "command": "ghostmigrate",
        "args": ["serve", "/path/to/export.json"]
      }
    }
  }

Available tools: list_posts, render_post`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, migrator, err := setup(cmd, args, flags, true)
			if err != nil {
				newPrinter(cmd).Error(err)
				return err
			}
			server := migratemcp.NewServer(buildVersion(), exp, migrator)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
