package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dilvertex/pipesite-backend/internal/domain/repository"
)

// Collection stores one entity variant as JSONB documents in its own table
// (id uuid primary key, doc jsonb). The id also lives inside the document so
// a scanned doc round-trips to a complete entity.
type Collection[T any, PT interface {
	*T
	repository.Document
}] struct {
	pool  *pgxpool.Pool
	table string
}

func NewCollection[T any, PT interface {
	*T
	repository.Document
}](pool *pgxpool.Pool, table string) *Collection[T, PT] {
	return &Collection[T, PT]{pool: pool, table: table}
}

// Create assigns a fresh identifier and persists the document.
func (c *Collection[T, PT]) Create(ctx context.Context, e *T) error {
	id := uuid.NewString()
	PT(e).SetEntityID(id)
	doc, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = c.pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, c.table),
		id, doc)
	return err
}

// All returns a fresh, unordered snapshot of the collection.
func (c *Collection[T, PT]) All(ctx context.Context) ([]T, error) {
	rows, err := c.pool.Query(ctx, fmt.Sprintf(`SELECT doc FROM %s`, c.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var e T
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (c *Collection[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	var raw []byte
	err := c.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, c.table), id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	e := new(T)
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update merges patch into the stored document: only keys present in patch
// overwrite, everything else is left unchanged.
func (c *Collection[T, PT]) Update(ctx context.Context, id string, patch map[string]any) (*T, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	if len(patch) == 0 {
		return c.Get(ctx, id)
	}
	p, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	var raw []byte
	err = c.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE %s SET doc = doc || $2::jsonb, updated_at = now() WHERE id = $1 RETURNING doc`, c.table),
		id, p).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	e := new(T)
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes the row and returns the pre-deletion snapshot so the caller
// can release the blobs it referenced.
func (c *Collection[T, PT]) Delete(ctx context.Context, id string) (*T, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	var raw []byte
	err := c.pool.QueryRow(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING doc`, c.table), id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	e := new(T)
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, err
	}
	return e, nil
}
