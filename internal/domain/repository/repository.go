package repository

import (
	"context"
	"errors"

	"github.com/dilvertex/pipesite-backend/internal/domain/entity"
)

// ErrNotFound is returned when a referenced identifier has no stored record.
var ErrNotFound = errors.New("not found")

// Document is implemented by every content entity stored in a JSONB
// collection. The repository owns identity: it assigns the id at creation
// and ids are never reused.
type Document interface {
	EntityID() string
	SetEntityID(id string)
}

// Collection is generic create/read/update/delete over one document
// collection. Update has merge semantics: only the fields present in patch
// overwrite. Delete returns the pre-deletion snapshot so callers can inspect
// file references before they are lost.
type Collection[T any] interface {
	Create(ctx context.Context, e *T) error
	All(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, patch map[string]any) (*T, error)
	Delete(ctx context.Context, id string) (*T, error)
}

// AdminRepository stores back-office credentials.
type AdminRepository interface {
	Create(ctx context.Context, a *entity.Admin) error
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
}

// UserRepository stores site visitor accounts.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	SetVerified(ctx context.Context, id string) error
}

// VerificationTokenRepository stores the single-use email tokens.
type VerificationTokenRepository interface {
	Create(ctx context.Context, t *entity.VerificationToken) error
	Get(ctx context.Context, token string) (*entity.VerificationToken, error)
	Delete(ctx context.Context, token string) error
}
