package service

import (
	"context"
	"errors"
	"io"
)

// ErrPhotoNotFound is returned by PhotoStorage.Open for unknown keys.
var ErrPhotoNotFound = errors.New("photo not found")

// StoredPhoto is a readable stored object. Callers must close Body.
type StoredPhoto struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// PhotoStorage keeps uploaded profile photos in an object bucket.
type PhotoStorage interface {
	// Save writes data under key with the given content type.
	Save(ctx context.Context, key, contentType string, data []byte) error

	// Open returns a reader over the object stored under key.
	Open(ctx context.Context, key string) (*StoredPhoto, error)

	// Close releases the underlying bucket.
	Close() error
}
