package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

// DiskStore keeps blobs on the local filesystem under Dir. Stored files are
// served statically under BaseURL. Generated names combine a nanosecond
// timestamp, a per-process counter and the sanitized original name, so two
// Puts in the same tick cannot collide.
type DiskStore struct {
	Dir     string
	BaseURL string

	seq atomic.Uint64
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *DiskStore) Put(ctx context.Context, folder string, up Upload) (FileRef, error) {
	if err := ctx.Err(); err != nil {
		return FileRef{}, err
	}
	name := fmt.Sprintf("%d_%d_%s", time.Now().UnixNano(), s.seq.Add(1), sanitizeName(up.Filename))
	if folder != "" {
		if err := os.MkdirAll(filepath.Join(s.Dir, folder), 0o755); err != nil {
			return FileRef{}, err
		}
		name = path.Join(folder, name)
	}

	f, err := os.OpenFile(filepath.Join(s.Dir, filepath.FromSlash(name)), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return FileRef{}, err
	}
	if _, err := io.Copy(f, up.Reader); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return FileRef{}, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return FileRef{}, err
	}

	return FileRef{
		Kind: KindLocal,
		Path: name,
		URL:  s.BaseURL + "/" + name,
	}, nil
}

// Delete unlinks the blob. A ref whose file is already gone is a no-op.
func (s *DiskStore) Delete(ctx context.Context, ref FileRef) error {
	if ref.Path == "" {
		return nil
	}
	clean := filepath.Clean(filepath.FromSlash(ref.Path))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("refusing to delete outside uploads dir: %s", ref.Path)
	}
	err := os.Remove(filepath.Join(s.Dir, clean))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// sanitizeName strips path separators and control characters from the
// client-supplied filename before it becomes part of the stored name.
func sanitizeName(name string) string {
	name = filepath.Base(filepath.FromSlash(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

var _ FileStore = (*DiskStore)(nil)
