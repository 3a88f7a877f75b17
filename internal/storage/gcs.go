package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// GCSStore keeps blobs in a Google Cloud Storage bucket. The object name is
// the deletion key, carried in FileRef.PublicID; the public URL is only good
// for retrieval.
type GCSStore struct {
	Client *gcs.Client
	Bucket string
}

func NewGCSStore(client *gcs.Client, bucket string) *GCSStore {
	return &GCSStore{Client: client, Bucket: bucket}
}

func (s *GCSStore) Put(ctx context.Context, folder string, up Upload) (FileRef, error) {
	if s.Client == nil || s.Bucket == "" {
		return FileRef{}, errors.New("gcs not configured")
	}
	ext := strings.ToLower(path.Ext(up.Filename))
	object := path.Join(folder, uuid.NewString()+ext)

	wc := s.Client.Bucket(s.Bucket).Object(object).NewWriter(ctx)
	wc.ContentType = up.ContentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, up.Reader); err != nil {
		_ = wc.Close()
		return FileRef{}, err
	}
	if err := wc.Close(); err != nil {
		return FileRef{}, err
	}

	return FileRef{
		Kind:     KindGCS,
		URL:      publicURL(s.Bucket, object),
		PublicID: object,
	}, nil
}

// Delete removes the object. Deleting an object that no longer exists is a
// no-op so callers can retry cleanup safely.
func (s *GCSStore) Delete(ctx context.Context, ref FileRef) error {
	if ref.PublicID == "" {
		return nil
	}
	err := s.Client.Bucket(s.Bucket).Object(ref.PublicID).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	return err
}

func publicURL(bucket, object string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, object)
}

var _ FileStore = (*GCSStore)(nil)
