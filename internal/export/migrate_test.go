package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/ghostmigrate/internal/ghost"
)

// recordingWarner collects warnings for assertions.
type recordingWarner struct {
	warnings []string
}

func (w *recordingWarner) Warn(format string, args ...any) {
	w.warnings = append(w.warnings, fmt.Sprintf(format, args...))
}

// testExport builds a small export with one post, one page and one tag.
func testExport() *ghost.Export {
	return &ghost.Export{
		Posts: []ghost.Post{
			{
				ID:          "1",
				Title:       "Hello",
				Slug:        "hello-world",
				Markdown:    "```lang-ruby\ncode\n```",
				PublishedAt: ghost.NewTimestamp("2014-03-05T10:00:00Z"),
			},
			{
				ID:          "2",
				Title:       "About",
				Slug:        "about",
				Markdown:    "about me",
				Page:        true,
				PublishedAt: ghost.NewTimestamp("2014-03-06T10:00:00Z"),
			},
		},
		Tags:     []ghost.Tag{{ID: "5", Name: "intro"}},
		PostTags: []ghost.PostTag{{PostID: "1", TagID: "5"}},
	}
}

func TestMigrator_Run(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "_posts")
	migrator := NewMigrator(Options{OutputDir: dir}, nil)

	result, err := migrator.Run(testExport())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantPath := filepath.Join(dir, "2014-03-05-hello-world.md")
	if len(result.Written) != 1 || result.Written[0] != wantPath {
		t.Fatalf("Written = %v, want [%s]", result.Written, wantPath)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Reason != SkipReasonPage {
		t.Errorf("Skipped = %+v, want the page", result.Skipped)
	}

	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "---\nlayout: post\ntitle: 'Hello'\ndate: 2014-03-05 10:00:00\ntags:\n- 'intro'\n---\n```ruby\ncode\n```\n"
	if string(data) != want {
		t.Errorf("file content mismatch\ngot:\n%s\nwant:\n%s", data, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one file, got %d", len(entries))
	}
}

func TestMigrator_Run_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2014-03-05-hello-world.md")
	if err := os.WriteFile(path, []byte("stale"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewMigrator(Options{OutputDir: dir}, nil).Run(testExport()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("existing file should be overwritten")
	}
}

func TestMigrator_Run_DryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "_posts")

	result, err := NewMigrator(Options{OutputDir: dir, DryRun: true}, nil).Run(testExport())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Written) != 1 {
		t.Errorf("Written = %v, want one planned path", result.Written)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("dry run should not create the output directory")
	}
}

func TestMigrator_Run_InvalidDate(t *testing.T) {
	exp := testExport()
	exp.Posts[0].PublishedAt = ghost.NewTimestamp("not a date")

	_, err := NewMigrator(Options{OutputDir: t.TempDir()}, nil).Run(exp)
	var dateErr *InvalidDateError
	if !errors.As(err, &dateErr) {
		t.Fatalf("Run() error = %v, want *InvalidDateError", err)
	}
	if dateErr.Slug != "hello-world" || dateErr.Value != "not a date" {
		t.Errorf("InvalidDateError = %+v", dateErr)
	}
}

func TestMigrator_Run_MissingDate(t *testing.T) {
	exp := testExport()
	exp.Posts[0].PublishedAt = ghost.Timestamp{}

	_, err := NewMigrator(Options{OutputDir: t.TempDir()}, nil).Run(exp)
	var dateErr *InvalidDateError
	if !errors.As(err, &dateErr) {
		t.Fatalf("Run() error = %v, want *InvalidDateError", err)
	}
	if !strings.Contains(err.Error(), "no published_at") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestMigrator_Run_PageIgnoresBadFields(t *testing.T) {
	exp := testExport()
	exp.Posts[1].PublishedAt = ghost.NewTimestamp("garbage")

	if _, err := NewMigrator(Options{OutputDir: t.TempDir()}, nil).Run(exp); err != nil {
		t.Errorf("pages should be skipped before any parsing, got %v", err)
	}
}

func TestMigrator_Run_DanglingTag(t *testing.T) {
	t.Run("fail policy aborts", func(t *testing.T) {
		exp := testExport()
		exp.PostTags = append(exp.PostTags, ghost.PostTag{PostID: "1", TagID: "99"})

		_, err := NewMigrator(Options{OutputDir: t.TempDir()}, nil).Run(exp)
		var notFound *ghost.TagNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("Run() error = %v, want *ghost.TagNotFoundError", err)
		}
	})

	t.Run("skip policy warns and continues", func(t *testing.T) {
		exp := testExport()
		exp.PostTags = append(exp.PostTags, ghost.PostTag{PostID: "1", TagID: "99"})
		dir := t.TempDir()
		warner := &recordingWarner{}

		result, err := NewMigrator(Options{OutputDir: dir, MissingTags: MissingTagsSkip}, warner).Run(exp)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if len(warner.warnings) != 1 || !strings.Contains(warner.warnings[0], "99") {
			t.Errorf("warnings = %v", warner.warnings)
		}

		data, err := os.ReadFile(result.Written[0])
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "tags:\n- 'intro'\n---") {
			t.Errorf("resolved tags should be kept:\n%s", data)
		}
	})
}

func TestMigrator_Run_SkipDrafts(t *testing.T) {
	exp := testExport()
	exp.Posts[0].Status = ghost.StatusDraft

	result, err := NewMigrator(Options{OutputDir: t.TempDir(), SkipDrafts: true}, nil).Run(exp)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Written) != 0 {
		t.Errorf("Written = %v, want none", result.Written)
	}
	if len(result.Skipped) != 2 || result.Skipped[0].Reason != SkipReasonDraft {
		t.Errorf("Skipped = %+v", result.Skipped)
	}

	result, err = NewMigrator(Options{OutputDir: t.TempDir()}, nil).Run(exp)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Written) != 1 {
		t.Error("drafts are migrated unless SkipDrafts is set")
	}
}

func TestMigrator_Run_Collision(t *testing.T) {
	exp := testExport()
	dup := exp.Posts[0]
	dup.ID = "3"
	dup.Title = "Hello again"
	exp.Posts = append(exp.Posts, dup)
	warner := &recordingWarner{}

	result, err := NewMigrator(Options{OutputDir: t.TempDir()}, warner).Run(exp)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(warner.warnings) != 1 {
		t.Fatalf("warnings = %v, want one collision warning", warner.warnings)
	}

	data, err := os.ReadFile(result.Written[1])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "title: 'Hello again'") {
		t.Error("the later post should win a collision")
	}
}

func TestMigrator_Render_Image(t *testing.T) {
	exp := testExport()
	post := &exp.Posts[0]
	post.Image = "/content/images/hello.png"

	rendered, err := NewMigrator(Options{}, nil).Render(post, exp.TagIndex(), exp.PostTags)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if rendered.Image != "/content/images/hello.png" {
		t.Errorf("Image = %q", rendered.Image)
	}
	if rendered.Path != filepath.Join(DefaultOutputDir, "2014-03-05-hello-world.md") {
		t.Errorf("Path = %q", rendered.Path)
	}
}

func TestMigrator_Run_UnwritableDir(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	if err := os.WriteFile(blocker, nil, 0600); err != nil {
		t.Fatal(err)
	}

	_, err := NewMigrator(Options{OutputDir: filepath.Join(blocker, "_posts")}, nil).Run(testExport())
	if err == nil {
		t.Error("Run() expected error when the output directory cannot be created")
	}
}

func TestParseMissingTagPolicy(t *testing.T) {
	tests := []struct {
		value   string
		want    MissingTagPolicy
		wantErr bool
	}{
		{value: "", want: MissingTagsFail},
		{value: "fail", want: MissingTagsFail},
		{value: "skip", want: MissingTagsSkip},
		{value: "ignore", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMissingTagPolicy(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMissingTagPolicy(%q) error = %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMissingTagPolicy(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestMigrator_Run_UntitledPageAndPost(t *testing.T) {
	input := `{"db": [{"data": {
		"posts": [
			{"id": 1, "title": "", "slug": "untitled", "markdown": "body", "page": 0, "published_at": "2014-03-05T10:00:00Z"},
			{"id": 2, "title": null, "slug": null, "markdown": null, "page": 1, "published_at": null}
		],
		"tags": [],
		"posts_tags": []
	}}]}`
	exp, err := ghost.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dir := t.TempDir()
	result, err := NewMigrator(Options{OutputDir: dir}, nil).Run(exp)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Written) != 1 || len(result.Skipped) != 1 {
		t.Fatalf("Written = %v, Skipped = %v", result.Written, result.Skipped)
	}

	data, err := os.ReadFile(filepath.Join(dir, "2014-03-05-untitled.md"))
	if err != nil {
		t.Fatalf("reading post: %v", err)
	}
	if !strings.Contains(string(data), "title: ''\n") {
		t.Errorf("empty title should render as '':\n%s", data)
	}
}
