package storage

import (
	"errors"
	"io"
)

// ErrFileMissing is returned when a stored path has no file behind it.
// Callers treat it as recoverable (the database row stays valid).
var ErrFileMissing = errors.New("stored file missing")

// FileStore abstracts where evidence bytes live. Paths returned by Store are
// relative to the store root and are what gets persisted.
type FileStore interface {
	Store(src io.Reader, orderNumber, category, description, ext string) (string, error)
	Retrieve(relPath string) ([]byte, error)
	Remove(relPath string) error
}
