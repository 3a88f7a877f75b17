package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dilvertex/pipesite-backend/internal/domain/entity"
	"github.com/dilvertex/pipesite-backend/internal/domain/repository"
)

type VerificationTokenRepository struct {
	pool *pgxpool.Pool
}

func NewVerificationTokenRepository(pool *pgxpool.Pool) *VerificationTokenRepository {
	return &VerificationTokenRepository{pool: pool}
}

func (r *VerificationTokenRepository) Create(ctx context.Context, t *entity.VerificationToken) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO verification_tokens (token, user_id)
		VALUES ($1, $2)
		RETURNING created_at
	`, t.Token, t.UserID)
	return row.Scan(&t.CreatedAt)
}

func (r *VerificationTokenRepository) Get(ctx context.Context, token string) (*entity.VerificationToken, error) {
	t := &entity.VerificationToken{}
	row := r.pool.QueryRow(ctx, `
		SELECT token, user_id, created_at
		FROM verification_tokens
		WHERE token = $1
	`, token)
	if err := row.Scan(&t.Token, &t.UserID, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Delete consumes the token. Missing rows are reported so a second
// verification attempt with the same token fails.
func (r *VerificationTokenRepository) Delete(ctx context.Context, token string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM verification_tokens WHERE token = $1`, token)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.VerificationTokenRepository = (*VerificationTokenRepository)(nil)
