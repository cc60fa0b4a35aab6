// Package mcp provides a Model Context Protocol server for ghostmigrate.
// It lets an MCP-capable agent inspect an export and preview rendered posts
// before anything is written.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/ghostmigrate/internal/export"
	"github.com/gorewood/ghostmigrate/internal/ghost"
)

// NewServer creates an MCP server with all ghostmigrate tools registered.
func NewServer(version string, exp *ghost.Export, migrator *export.Migrator) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ghostmigrate",
		Version: version,
	}, nil)
	registerTools(server, exp, migrator)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all ghostmigrate tools to the server.
func registerTools(server *mcp.Server, exp *ghost.Export, migrator *export.Migrator) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_posts",
		Description: "List the posts in the Ghost export with their dates, tags, target file and whether they will be migrated or skipped.",
		Annotations: readOnlyAnnotations(),
	}, handleListPosts(exp, migrator))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_post",
		Description: "Render a single post by id or slug and return the Jekyll file path and content without writing it.",
		Annotations: readOnlyAnnotations(),
	}, handleRenderPost(exp, migrator))
}
