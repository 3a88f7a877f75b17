package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	s, err := NewDiskStore(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return s
}

func testUpload(name, body string) Upload {
	return Upload{
		Reader:      strings.NewReader(body),
		Filename:    name,
		ContentType: "text/plain",
		Size:        int64(len(body)),
	}
}

func TestDiskStorePutStoresBlob(t *testing.T) {
	s := newTestStore(t)

	ref, err := s.Put(context.Background(), "employees", testUpload("photo.png", "img-bytes"))
	require.NoError(t, err)

	assert.Equal(t, KindLocal, ref.Kind)
	assert.True(t, strings.HasPrefix(ref.Path, "employees/"))
	assert.Equal(t, "http://localhost:8080/uploads/"+ref.Path, ref.URL)

	data, err := os.ReadFile(filepath.Join(s.Dir, filepath.FromSlash(ref.Path)))
	require.NoError(t, err)
	assert.Equal(t, "img-bytes", string(data))
}

func TestDiskStorePutUniqueNames(t *testing.T) {
	s := newTestStore(t)

	a, err := s.Put(context.Background(), "", testUpload("same.png", "a"))
	require.NoError(t, err)
	b, err := s.Put(context.Background(), "", testUpload("same.png", "b"))
	require.NoError(t, err)

	assert.NotEqual(t, a.Path, b.Path)
}

func TestDiskStorePutSanitizesFilename(t *testing.T) {
	s := newTestStore(t)

	ref, err := s.Put(context.Background(), "", testUpload("../../etc/pass wd.png", "x"))
	require.NoError(t, err)

	assert.NotContains(t, ref.Path, "..")
	assert.NotContains(t, ref.Path, " ")
	_, err = os.Stat(filepath.Join(s.Dir, filepath.FromSlash(ref.Path)))
	assert.NoError(t, err)
}

func TestDiskStoreDelete(t *testing.T) {
	s := newTestStore(t)

	ref, err := s.Put(context.Background(), "news", testUpload("thumb.jpg", "t"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), ref))
	_, err = os.Stat(filepath.Join(s.Dir, filepath.FromSlash(ref.Path)))
	assert.True(t, os.IsNotExist(err))

	// second delete of the same ref is a no-op
	assert.NoError(t, s.Delete(context.Background(), ref))
}

func TestDiskStoreDeleteRefusesEscape(t *testing.T) {
	s := newTestStore(t)

	err := s.Delete(context.Background(), FileRef{Kind: KindLocal, Path: "../outside.txt"})
	assert.Error(t, err)

	err = s.Delete(context.Background(), FileRef{Kind: KindLocal, Path: "/etc/hosts"})
	assert.Error(t, err)
}

func TestDiskStoreDeleteEmptyPath(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Delete(context.Background(), FileRef{}))
}
