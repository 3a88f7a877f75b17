package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/dilvertex/pipesite-backend/internal/domain/repository"
	"github.com/dilvertex/pipesite-backend/internal/storage"
	"github.com/dilvertex/pipesite-backend/pkg/apperrors"
)

// FileBacked is implemented by entities that own blob references. FileRef is
// the primary reference (employee photo, news thumbnail); AllRefs includes
// any gallery elements as well.
type FileBacked interface {
	FileRef() storage.FileRef
	SetFileRef(ref storage.FileRef)
	AllRefs() []storage.FileRef
}

// FileSyncer keeps an entity's blob references consistent with the file
// store across its whole lifecycle. It is the only component allowed to
// write both sides: the repository owns entity identity, the store owns
// blob bytes, the syncer owns the linkage.
//
// Invariants:
//   - at most one live blob per reference at any time;
//   - every reference held by a live entity points at a stored blob;
//   - a blob is deleted from the store only after its reference is no
//     longer reachable (replaced or record deleted).
//
// Blob deletions are best-effort: a failed delete leaks a blob (recoverable
// by an out-of-band sweep) but never corrupts the record.
type FileSyncer[T any, PT interface {
	*T
	FileBacked
}] struct {
	Repo      repository.Collection[T]
	Store     storage.FileStore
	Folder    string // blob namespace partition, one per variant
	FileField string // JSON key of the primary reference in the document
	Logger    *logrus.Logger

	locks keyedMutex
}

func NewFileSyncer[T any, PT interface {
	*T
	FileBacked
}](repo repository.Collection[T], store storage.FileStore, folder, fileField string, logger *logrus.Logger) *FileSyncer[T, PT] {
	return &FileSyncer[T, PT]{Repo: repo, Store: store, Folder: folder, FileField: fileField, Logger: logger}
}

// Create stores the blob first and persists the record only once the
// locator is known. A nil upload leaves the reference empty; whether that
// is allowed is variant policy enforced at the handler.
func (s *FileSyncer[T, PT]) Create(ctx context.Context, e *T, up *storage.Upload) error {
	if up != nil {
		ref, err := s.Store.Put(ctx, s.Folder, *up)
		if err != nil {
			// Gallery refs may already be attached (stored via PutAll).
			// No record will reference them, so release them too.
			s.releaseRefs(ctx, PT(e).AllRefs())
			return apperrors.Storage(err)
		}
		PT(e).SetFileRef(ref)
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		// The record never existed, so the fresh blobs are unreachable.
		// Release them instead of leaking.
		s.releaseRefs(ctx, PT(e).AllRefs())
		return err
	}
	return nil
}

// PutAll stores a batch of uploads (news gallery photos) and returns their
// references in order. On failure the already-stored blobs are released.
func (s *FileSyncer[T, PT]) PutAll(ctx context.Context, ups []storage.Upload) ([]storage.FileRef, error) {
	refs := make([]storage.FileRef, 0, len(ups))
	for _, up := range ups {
		ref, err := s.Store.Put(ctx, s.Folder, up)
		if err != nil {
			s.releaseRefs(ctx, refs)
			return nil, apperrors.Storage(err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// All is a pass-through to the repository: a fresh snapshot per call.
func (s *FileSyncer[T, PT]) All(ctx context.Context) ([]T, error) {
	return s.Repo.All(ctx)
}

// Get is a pass-through to the repository.
func (s *FileSyncer[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	return s.Repo.Get(ctx, id)
}

// Update applies merge semantics: only keys present in patch overwrite. If a
// replacement file is supplied, the new blob is stored before the old one is
// deleted, so the reference never points at a deleted blob; if the old
// delete fails the old blob leaks but the record stays correct.
func (s *FileSyncer[T, PT]) Update(ctx context.Context, id string, patch map[string]any, up *storage.Upload) (*T, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if up != nil {
		ref, err := s.Store.Put(ctx, s.Folder, *up)
		if err != nil {
			return nil, apperrors.Storage(err)
		}
		if old := PT(existing).FileRef(); !old.IsZero() {
			if derr := s.Store.Delete(ctx, old); derr != nil {
				s.warn(derr, id, "replaced blob delete failed, blob leaked")
			}
		}
		if patch == nil {
			patch = make(map[string]any, 1)
		}
		patch[s.FileField] = ref
	}
	return s.Repo.Update(ctx, id, patch)
}

// Delete removes the record first, then releases every blob the snapshot
// referenced. Each blob deletion failure is independent and never blocks
// removal of the record or of the other blobs.
func (s *FileSyncer[T, PT]) Delete(ctx context.Context, id string) (*T, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	e, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.releaseRefs(ctx, PT(e).AllRefs())
	return e, nil
}

func (s *FileSyncer[T, PT]) releaseRefs(ctx context.Context, refs []storage.FileRef) {
	for _, ref := range refs {
		if ref.IsZero() {
			continue
		}
		if err := s.Store.Delete(ctx, ref); err != nil {
			s.warn(err, "", "blob delete failed, blob leaked")
		}
	}
}

func (s *FileSyncer[T, PT]) warn(err error, id, msg string) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithError(err).WithFields(logrus.Fields{"folder": s.Folder, "id": id}).Warn(msg)
}
