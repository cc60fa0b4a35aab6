package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gorewood/ghostmigrate/internal/ghost"
)

const (
	// DefaultOutputDir is the Jekyll posts directory.
	DefaultOutputDir = "_posts"
	// DefaultExtension is the post file extension.
	DefaultExtension = "md"
	// DefaultLayout is the layout written to every header.
	DefaultLayout = "post"

	fileDateLayout   = "2006-01-02"
	headerDateLayout = "2006-01-02 15:04:05"
)

// InvalidDateError is returned when a post's published_at cannot be parsed.
type InvalidDateError struct {
	PostID ghost.ID
	Slug   string
	Value  string
	Err    error
}

// Error implements the error interface.
func (e *InvalidDateError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("post %s (%s) has no published_at", e.PostID, e.Slug)
	}
	return fmt.Sprintf("post %s (%s) has invalid published_at %q", e.PostID, e.Slug, e.Value)
}

// Unwrap returns the parse error.
func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// PublishedAt parses the post's publication timestamp.
func PublishedAt(post *ghost.Post) (time.Time, error) {
	published, err := post.PublishedAt.Time()
	if err != nil {
		return time.Time{}, &InvalidDateError{
			PostID: post.ID,
			Slug:   post.Slug,
			Value:  post.PublishedAt.String(),
			Err:    err,
		}
	}
	return published, nil
}

// FileName returns <YYYY-MM-DD>-<slug>.<ext>.
func FileName(published time.Time, slug, ext string) string {
	return published.Format(fileDateLayout) + "-" + slug + "." + ext
}

// PostPath returns the output path for a post published at the given time.
func PostPath(dir string, published time.Time, slug, ext string) string {
	return filepath.Join(dir, FileName(published, slug, ext))
}
