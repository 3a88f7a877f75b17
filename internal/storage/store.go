package storage

import (
	"context"
	"io"
)

// FileRef is a reference to exactly one blob in a FileStore. It is a tagged
// variant: local refs carry the stored filename in Path, remote refs carry
// the object name in PublicID. URL is always dereferenceable regardless of
// backend, so API responses never need to know the locator shape.
type FileRef struct {
	Kind     string `json:"kind,omitempty"` // KindLocal or KindGCS
	Path     string `json:"path,omitempty"`
	URL      string `json:"url,omitempty"`
	PublicID string `json:"public_id,omitempty"`
}

const (
	KindLocal = "local"
	KindGCS   = "gcs"
)

// IsZero reports whether the ref points at no blob.
func (r FileRef) IsZero() bool {
	return r.Path == "" && r.URL == "" && r.PublicID == ""
}

// Upload is an incoming blob to persist.
type Upload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// FileStore persists blobs and deletes them by reference. Folder partitions
// the blob namespace per entity variant.
//
// Delete must be tolerant: removing a ref whose blob is already gone is not
// an error, so callers can treat cleanup as best-effort.
type FileStore interface {
	Put(ctx context.Context, folder string, up Upload) (FileRef, error)
	Delete(ctx context.Context, ref FileRef) error
}
