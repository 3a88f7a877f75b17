package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilvertex/pipesite-backend/internal/domain/entity"
	"github.com/dilvertex/pipesite-backend/internal/domain/repository"
	"github.com/dilvertex/pipesite-backend/pkg/helpers"
)

type memAdminRepo struct {
	byName map[string]*entity.Admin
	nextID int
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{byName: map[string]*entity.Admin{}}
}

func (r *memAdminRepo) Create(ctx context.Context, a *entity.Admin) error {
	r.nextID++
	a.ID = "admin-1"
	a.CreatedAt = time.Now()
	cp := *a
	r.byName[a.Username] = &cp
	return nil
}

func (r *memAdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	a, ok := r.byName[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func newTestAdminService() *AdminService {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	// min bcrypt cost keeps the suite fast
	return NewAdminService(newMemAdminRepo(), jwt, 4, nil)
}

func TestAdminSignupAndLogin(t *testing.T) {
	svc := newTestAdminService()
	ctx := context.Background()

	a, err := svc.Signup(ctx, "boss", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, "s3cret-pass", a.Password, "password must be stored hashed")

	logged, token, exp, err := svc.Login(ctx, "boss", "s3cret-pass")
	require.NoError(t, err)
	require.NotNil(t, logged)
	assert.Equal(t, a.ID, logged.ID)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, a.ID, claims.UserID)
	assert.Equal(t, "boss", claims.Username)
}

func TestAdminSignupDuplicateUsername(t *testing.T) {
	svc := newTestAdminService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "boss", "pass-one")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "boss", "pass-two")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	svc := newTestAdminService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "boss", "right-pass")
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "boss", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLoginUnknownUser(t *testing.T) {
	svc := newTestAdminService()

	_, _, _, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrNotFound)
}
