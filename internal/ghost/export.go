package ghost

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
)

// StatusDraft is the status Ghost gives to unpublished posts.
const StatusDraft = "draft"

// Post is a single post record from the export.
type Post struct {
	ID           ID        `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Markdown     string    `json:"markdown"`
	Page         Flag      `json:"page"`
	Status       string    `json:"status,omitempty"`
	Image        string    `json:"image,omitempty"`
	FeatureImage string    `json:"feature_image,omitempty"`
	PublishedAt  Timestamp `json:"published_at"`
}

// Tag is a tag record from the export.
type Tag struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// PostTag links a post to a tag.
type PostTag struct {
	PostID ID `json:"post_id"`
	TagID  ID `json:"tag_id"`
}

// Meta describes the export itself. It does not affect the migration.
type Meta struct {
	ExportedOn Timestamp `json:"exported_on"`
	Version    string    `json:"version"`
}

// Export holds the collections read from db[0].data.
type Export struct {
	Meta     Meta
	Posts    []Post
	Tags     []Tag
	PostTags []PostTag
}

// Validate checks the fields every migrated post needs. An empty title is
// allowed and renders as an empty header value.
func (p *Post) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Slug, validation.Required.Error("is empty and cannot be derived from the title")),
	)
}

// HeaderImage returns the post image, falling back to feature_image.
func (p *Post) HeaderImage() string {
	if p.Image != "" {
		return p.Image
	}
	return p.FeatureImage
}

// IsDraft reports whether the post has draft status.
func (p *Post) IsDraft() bool {
	return p.Status == StatusDraft
}

// Load reads and decodes the export at path.
func Load(path string) (*Export, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileNotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("opening export %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	return Decode(file)
}

// Decode reads an export document from r.
func Decode(r io.Reader) (*Export, error) {
	var root map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, &MalformedInputError{Reason: "invalid JSON", Err: err}
	}

	rawDB, ok := root["db"]
	if !ok {
		return nil, &MissingFieldError{Field: "db"}
	}
	var dbs []map[string]json.RawMessage
	if err := json.Unmarshal(rawDB, &dbs); err != nil {
		return nil, &MalformedInputError{Reason: "db is not an array of objects", Err: err}
	}
	if len(dbs) == 0 {
		return nil, &MalformedInputError{Reason: "db is empty"}
	}

	return decodeDatabase(dbs[0])
}

// decodeDatabase extracts the collections from the first db element.
func decodeDatabase(db map[string]json.RawMessage) (*Export, error) {
	rawData, ok := db["data"]
	if !ok {
		return nil, &MissingFieldError{Field: "db[0].data"}
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(rawData, &data); err != nil {
		return nil, &MalformedInputError{Reason: "db[0].data is not an object", Err: err}
	}

	exp := &Export{}
	if rawMeta, ok := db["meta"]; ok {
		if err := json.Unmarshal(rawMeta, &exp.Meta); err != nil {
			return nil, &MalformedInputError{Reason: "decoding meta", Err: err}
		}
	}

	if err := decodeCollection(data, "posts", &exp.Posts); err != nil {
		return nil, err
	}
	if err := decodeCollection(data, "tags", &exp.Tags); err != nil {
		return nil, err
	}
	if err := decodeCollection(data, "posts_tags", &exp.PostTags); err != nil {
		return nil, err
	}

	if err := exp.normalizePosts(); err != nil {
		return nil, err
	}
	return exp, nil
}

// decodeCollection unmarshals data[key] into target.
func decodeCollection(data map[string]json.RawMessage, key string, target any) error {
	raw, ok := data[key]
	if !ok {
		return &MissingFieldError{Field: "db[0].data." + key}
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return &MalformedInputError{Reason: "decoding " + key, Err: err}
	}
	return nil
}

// normalizePosts derives missing slugs from titles and validates each post.
// Pages are never migrated, so their fields are left unchecked.
func (e *Export) normalizePosts() error {
	for i := range e.Posts {
		post := &e.Posts[i]
		if post.Page {
			continue
		}
		if post.Slug == "" && post.Title != "" {
			derived, err := slug.Normalize(post.Title)
			if err != nil {
				return &MalformedInputError{Reason: fmt.Sprintf("post %s: deriving slug", post.ID), Err: err}
			}
			post.Slug = derived
		}
		if err := post.Validate(); err != nil {
			return &MalformedInputError{Reason: fmt.Sprintf("post %s", post.ID), Err: err}
		}
	}
	return nil
}

// FindPost returns the post with the given id or slug.
func (e *Export) FindPost(key string) (*Post, bool) {
	for i := range e.Posts {
		if string(e.Posts[i].ID) == key || e.Posts[i].Slug == key {
			return &e.Posts[i], true
		}
	}
	return nil, false
}
