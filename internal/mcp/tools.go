package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/ghostmigrate/internal/export"
	"github.com/gorewood/ghostmigrate/internal/ghost"
)

// --- List tool ---

// ListPostsInput is the input for the list_posts tool.
type ListPostsInput struct {
	IncludeSkipped bool `json:"include_skipped,omitempty" jsonschema:"also list pages and other posts that will not be migrated"`
}

// ListPostsOutput is the output for the list_posts tool.
type ListPostsOutput struct {
	Count int                  `json:"count" jsonschema:"number of posts returned"`
	Posts []export.PostSummary `json:"posts" jsonschema:"posts in export order"`
}

func handleListPosts(exp *ghost.Export, migrator *export.Migrator) mcp.ToolHandlerFor[ListPostsInput, ListPostsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListPostsInput) (*mcp.CallToolResult, ListPostsOutput, error) {
		posts := migrator.Summarize(exp)
		if !input.IncludeSkipped {
			kept := posts[:0]
			for _, post := range posts {
				if post.Skip == "" {
					kept = append(kept, post)
				}
			}
			posts = kept
		}
		return nil, ListPostsOutput{Count: len(posts), Posts: posts}, nil
	}
}

// --- Render tool ---

// RenderPostInput is the input for the render_post tool.
type RenderPostInput struct {
	Post string `json:"post" jsonschema:"post id or slug"`
}

// RenderPostOutput is the output for the render_post tool.
type RenderPostOutput struct {
	Path    string `json:"path"           jsonschema:"output file the post would be written to"`
	Content string `json:"content"        jsonschema:"full file content: front matter and body"`
	Skip    string `json:"skip,omitempty" jsonschema:"set when a migration run would skip this post"`
}

func handleRenderPost(exp *ghost.Export, migrator *export.Migrator) mcp.ToolHandlerFor[RenderPostInput, RenderPostOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderPostInput) (*mcp.CallToolResult, RenderPostOutput, error) {
		if input.Post == "" {
			return nil, RenderPostOutput{}, errors.New("specify a post id or slug")
		}

		post, ok := exp.FindPost(input.Post)
		if !ok {
			return nil, RenderPostOutput{}, fmt.Errorf("post %q not found", input.Post)
		}

		rendered, err := migrator.Render(post, exp.TagIndex(), exp.PostTags)
		if err != nil {
			return nil, RenderPostOutput{}, fmt.Errorf("rendering post %q: %w", input.Post, err)
		}

		return nil, RenderPostOutput{
			Path:    rendered.Path,
			Content: rendered.Content(),
			Skip:    migrator.SkipReason(post),
		}, nil
	}
}
