package readstore

import (
	"context"
	"errors"

	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserReadStore serves user views and existence checks (queries.UserViewRepo).
type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var v queries.UserView
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email FROM users WHERE id = $1`, id,
	).Scan(&v.ID, &v.Name, &v.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user view by id", err)
	}
	return &v, nil
}

func (r *UserReadStore) ListAll(ctx context.Context) ([]queries.UserView, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, email FROM users ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user views", err)
	}
	defer rows.Close()

	result := make([]queries.UserView, 0)
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user view", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user views", err)
	}
	return result, nil
}

func (r *UserReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}
