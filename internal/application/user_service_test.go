package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilvertex/pipesite-backend/internal/domain/entity"
	"github.com/dilvertex/pipesite-backend/internal/domain/repository"
	"github.com/dilvertex/pipesite-backend/pkg/helpers"
	"github.com/dilvertex/pipesite-backend/pkg/mailer"
)

type memUserRepo struct {
	byID   map[string]*entity.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) SetVerified(ctx context.Context, id string) error {
	u, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.IsVerified = true
	return nil
}

type memTokenRepo struct {
	tokens map[string]*entity.VerificationToken
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: map[string]*entity.VerificationToken{}}
}

func (r *memTokenRepo) Create(ctx context.Context, t *entity.VerificationToken) error {
	t.CreatedAt = time.Now()
	cp := *t
	r.tokens[t.Token] = &cp
	return nil
}

func (r *memTokenRepo) Get(ctx context.Context, token string) (*entity.VerificationToken, error) {
	t, ok := r.tokens[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTokenRepo) Delete(ctx context.Context, token string) error {
	if _, ok := r.tokens[token]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tokens, token)
	return nil
}

type memPublisher struct {
	jobs []mailer.EmailJob
	err  error
}

func (p *memPublisher) PublishJSON(ctx context.Context, body any) error {
	if p.err != nil {
		return p.err
	}
	if job, ok := body.(mailer.EmailJob); ok {
		p.jobs = append(p.jobs, job)
	}
	return nil
}

func newTestUserService(pub EmailPublisher) (*UserService, *memUserRepo, *memTokenRepo) {
	users := newMemUserRepo()
	tokens := newMemTokenRepo()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	svc := NewUserService(users, tokens, jwt, pub, 4, "http://localhost:8080/verify-email", true, nil)
	return svc, users, tokens
}

func TestUserRegisterCreatesTokenAndPublishes(t *testing.T) {
	pub := &memPublisher{}
	svc, users, tokens := newTestUserService(pub)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Dina", "dina@example.com", "password123")
	require.NoError(t, err)
	assert.False(t, u.IsVerified)
	assert.NotEqual(t, "password123", users.byID[u.ID].Password)

	require.Len(t, tokens.tokens, 1)
	require.Len(t, pub.jobs, 1)
	job := pub.jobs[0]
	assert.Equal(t, "dina@example.com", job.To)
	assert.Equal(t, mailer.TemplateVerifyEmail, job.Template)
	for tok := range tokens.tokens {
		assert.Equal(t, "http://localhost:8080/verify-email/"+tok, job.Data["Link"])
	}
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestUserService(&memPublisher{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "Dina", "dina@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other", "dina@example.com", "password456")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserRegisterPublishFailureIsBestEffort(t *testing.T) {
	pub := &memPublisher{err: fmt.Errorf("broker down")}
	svc, _, tokens := newTestUserService(pub)

	u, err := svc.Register(context.Background(), "Dina", "dina@example.com", "password123")
	require.NoError(t, err, "registration must survive a publish failure")
	assert.NotEmpty(t, u.ID)
	assert.Len(t, tokens.tokens, 1)
}

func TestUserVerifyEmailSingleUse(t *testing.T) {
	svc, users, tokens := newTestUserService(&memPublisher{})
	ctx := context.Background()

	u, err := svc.Register(ctx, "Dina", "dina@example.com", "password123")
	require.NoError(t, err)

	var tok string
	for k := range tokens.tokens {
		tok = k
	}

	require.NoError(t, svc.VerifyEmail(ctx, tok))
	assert.True(t, users.byID[u.ID].IsVerified)

	// the token was consumed; replay fails
	err = svc.VerifyEmail(ctx, tok)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

// consumedTokenRepo simulates losing the verification race: the token is
// readable, but by the time Delete runs another request has removed the row.
type consumedTokenRepo struct {
	*memTokenRepo
}

func (r *consumedTokenRepo) Delete(ctx context.Context, token string) error {
	return repository.ErrNotFound
}

func TestUserVerifyEmailLosesDeleteRace(t *testing.T) {
	svc, _, tokens := newTestUserService(&memPublisher{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "Dina", "dina@example.com", "password123")
	require.NoError(t, err)

	var tok string
	for k := range tokens.tokens {
		tok = k
	}

	// only the request that deletes the token row may report success
	svc.Tokens = &consumedTokenRepo{memTokenRepo: tokens}
	err = svc.VerifyEmail(ctx, tok)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestUserVerifyEmailUnknownToken(t *testing.T) {
	svc, _, _ := newTestUserService(&memPublisher{})

	err := svc.VerifyEmail(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestUserLogin(t *testing.T) {
	svc, _, _ := newTestUserService(&memPublisher{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "Dina", "dina@example.com", "password123")
	require.NoError(t, err)

	u, token, exp, err := svc.Login(ctx, "dina@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "dina@example.com", u.Email)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	_, _, _, err = svc.Login(ctx, "dina@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, _, err = svc.Login(ctx, "ghost@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
