package ghost

import (
	"errors"
	"fmt"
)

// ErrMalformedInput matches every error caused by an export that cannot be
// understood: invalid JSON, missing keys or invalid post records.
var ErrMalformedInput = errors.New("malformed export")

// FileNotFoundError is returned when the export path does not exist.
type FileNotFoundError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("export file not found: %s", e.Path)
}

// Unwrap returns the underlying filesystem error.
func (e *FileNotFoundError) Unwrap() error {
	return e.Err
}

// MalformedInputError is returned when the export cannot be decoded or
// contains an invalid record.
type MalformedInputError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	if e.Err == nil {
		return "malformed export: " + e.Reason
	}
	return fmt.Sprintf("malformed export: %s: %v", e.Reason, e.Err)
}

// Unwrap returns the underlying decode or validation error.
func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedInput.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// MissingFieldError is returned when an expected key is absent from the export.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("malformed export: missing field %q", e.Field)
}

// Is reports whether target is ErrMalformedInput.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMalformedInput
}

// TagNotFoundError is returned when a posts_tags link references a tag id
// with no matching tag record.
type TagNotFoundError struct {
	PostID ID
	TagID  ID
}

// Error implements the error interface.
func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("post %s links to unknown tag %s", e.PostID, e.TagID)
}
