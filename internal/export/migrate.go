package export

import (
	"fmt"
	"os"

	"github.com/gorewood/ghostmigrate/internal/ghost"
	"github.com/gorewood/ghostmigrate/internal/output"
)

// MissingTagPolicy decides what happens to links that point at unknown tags.
type MissingTagPolicy string

// Missing tag policies.
const (
	MissingTagsFail MissingTagPolicy = "fail"
	MissingTagsSkip MissingTagPolicy = "skip"
)

// ParseMissingTagPolicy validates a policy name. Empty means fail.
func ParseMissingTagPolicy(value string) (MissingTagPolicy, error) {
	switch MissingTagPolicy(value) {
	case "", MissingTagsFail:
		return MissingTagsFail, nil
	case MissingTagsSkip:
		return MissingTagsSkip, nil
	default:
		return "", fmt.Errorf("unknown missing tag policy %q (want fail or skip)", value)
	}
}

// Skip reasons reported in Result.
const (
	SkipReasonPage  = "page"
	SkipReasonDraft = "draft"
)

// Options configures a Migrator. Zero values select the defaults.
type Options struct {
	OutputDir   string
	Extension   string
	Layout      string
	MissingTags MissingTagPolicy
	SkipDrafts  bool
	DryRun      bool
}

// Warner receives non-fatal problems found during a run.
type Warner interface {
	Warn(format string, args ...any)
}

// Skipped records a post that produced no file.
type Skipped struct {
	ID     ghost.ID `json:"id"`
	Slug   string   `json:"slug"`
	Reason string   `json:"reason"`
}

// Result summarizes a run.
type Result struct {
	OutputDir string    `json:"output_dir"`
	DryRun    bool      `json:"dry_run"`
	Written   []string  `json:"written"`
	Skipped   []Skipped `json:"skipped"`
}

// Migrator renders and writes posts.
type Migrator struct {
	opts Options
	warn Warner
}

// NewMigrator creates a Migrator, filling unset options with defaults.
// A nil warner discards warnings.
func NewMigrator(opts Options, warn Warner) *Migrator {
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if opts.Layout == "" {
		opts.Layout = DefaultLayout
	}
	if opts.MissingTags == "" {
		opts.MissingTags = MissingTagsFail
	}
	if warn == nil {
		warn = discardWarner{}
	}
	return &Migrator{opts: opts, warn: warn}
}

// Options returns the effective options.
func (m *Migrator) Options() Options {
	return m.opts
}

// SkipReason returns why a post produces no file, or "" if it is migrated.
func (m *Migrator) SkipReason(post *ghost.Post) string {
	if post.Page {
		return SkipReasonPage
	}
	if m.opts.SkipDrafts && post.IsDraft() {
		return SkipReasonDraft
	}
	return ""
}

// Render builds the output for a single post without writing it.
func (m *Migrator) Render(post *ghost.Post, index ghost.TagIndex, links []ghost.PostTag) (*Rendered, error) {
	published, err := PublishedAt(post)
	if err != nil {
		return nil, err
	}

	tags, err := m.resolveTags(post, index, links)
	if err != nil {
		return nil, err
	}

	return &Rendered{
		Path:   PostPath(m.opts.OutputDir, published, post.Slug, m.opts.Extension),
		Layout: m.opts.Layout,
		Title:  post.Title,
		Date:   published,
		Tags:   tags,
		Image:  post.HeaderImage(),
		Body:   RewriteCodeFences(post.Markdown),
	}, nil
}

// resolveTags applies the missing tag policy to the post's links.
func (m *Migrator) resolveTags(post *ghost.Post, index ghost.TagIndex, links []ghost.PostTag) ([]string, error) {
	if m.opts.MissingTags != MissingTagsSkip {
		return index.Resolve(post.ID, links)
	}

	names, dangling := index.Lookup(post.ID, links)
	for _, tagID := range dangling {
		m.warn.Warn("post %s (%s) links to unknown tag %s; skipping it", post.ID, post.Slug, tagID)
	}
	return names, nil
}

// Run migrates every post in the export, in order.
func (m *Migrator) Run(exp *ghost.Export) (*Result, error) {
	result := &Result{
		OutputDir: m.opts.OutputDir,
		DryRun:    m.opts.DryRun,
		Written:   []string{},
		Skipped:   []Skipped{},
	}

	if !m.opts.DryRun {
		if err := os.MkdirAll(m.opts.OutputDir, 0755); err != nil {
			return result, output.NewSystemErrorWithCause(
				fmt.Sprintf("failed to create output directory %s: %v", m.opts.OutputDir, err), err)
		}
	}

	index := exp.TagIndex()
	owners := make(map[string]ghost.ID)

	for i := range exp.Posts {
		post := &exp.Posts[i]

		if reason := m.SkipReason(post); reason != "" {
			result.Skipped = append(result.Skipped, Skipped{ID: post.ID, Slug: post.Slug, Reason: reason})
			continue
		}

		rendered, err := m.Render(post, index, exp.PostTags)
		if err != nil {
			return result, err
		}

		if owner, taken := owners[rendered.Path]; taken {
			m.warn.Warn("posts %s and %s both map to %s; the later one wins", owner, post.ID, rendered.Path)
		}
		owners[rendered.Path] = post.ID

		if err := m.write(rendered); err != nil {
			return result, err
		}
		result.Written = append(result.Written, rendered.Path)
	}

	return result, nil
}

// write stores the rendered post unless this is a dry run.
func (m *Migrator) write(rendered *Rendered) error {
	if m.opts.DryRun {
		return nil
	}
	if err := os.WriteFile(rendered.Path, []byte(rendered.Content()), 0644); err != nil { //nolint:gosec // site sources are world-readable
		return output.NewSystemErrorWithCause(fmt.Sprintf("failed to write file %s: %v", rendered.Path, err), err)
	}
	return nil
}

type discardWarner struct{}

func (discardWarner) Warn(string, ...any) {}
