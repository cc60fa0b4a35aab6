package export

import (
	"github.com/gorewood/ghostmigrate/internal/ghost"
)

// PostSummary describes one post of the export.
type PostSummary struct {
	ID          string   `json:"id"                     jsonschema:"post id from the export"`
	Slug        string   `json:"slug"                   jsonschema:"post slug"`
	Title       string   `json:"title"                  jsonschema:"post title"`
	Published   string   `json:"published,omitempty"    jsonschema:"publication time (YYYY-MM-DD HH:MM:SS)"`
	Tags        []string `json:"tags,omitempty"         jsonschema:"resolved tag names in link order"`
	MissingTags []string `json:"missing_tags,omitempty" jsonschema:"linked tag ids with no tag record"`
	Path        string   `json:"path,omitempty"         jsonschema:"output file the post will be written to"`
	Skip        string   `json:"skip,omitempty"         jsonschema:"reason the post is skipped (page, draft)"`
	Problem     string   `json:"problem,omitempty"      jsonschema:"error that would stop the migration at this post"`
}

// Summarize describes every post of the export in order, recording
// problems instead of failing on them.
func (m *Migrator) Summarize(exp *ghost.Export) []PostSummary {
	index := exp.TagIndex()
	opts := m.opts
	summaries := make([]PostSummary, 0, len(exp.Posts))

	for i := range exp.Posts {
		post := &exp.Posts[i]
		summary := PostSummary{
			ID:    string(post.ID),
			Slug:  post.Slug,
			Title: post.Title,
			Skip:  m.SkipReason(post),
		}

		// Same order as Render: date first, then tags.
		published, err := PublishedAt(post)
		if err != nil {
			if summary.Skip == "" {
				summary.Problem = err.Error()
			}
		} else {
			summary.Published = published.Format(headerDateLayout)
			if summary.Skip == "" {
				summary.Path = PostPath(opts.OutputDir, published, post.Slug, opts.Extension)
			}
		}

		names, dangling := index.Lookup(post.ID, exp.PostTags)
		summary.Tags = names
		for _, id := range dangling {
			summary.MissingTags = append(summary.MissingTags, string(id))
		}
		if len(dangling) > 0 && opts.MissingTags == MissingTagsFail && summary.Skip == "" && summary.Problem == "" {
			summary.Problem = (&ghost.TagNotFoundError{PostID: post.ID, TagID: dangling[0]}).Error()
		}

		summaries = append(summaries, summary)
	}
	return summaries
}
