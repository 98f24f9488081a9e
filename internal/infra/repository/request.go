package repository

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RequestRepository is the write-side store for item requests
// (commands.RequestRepository).
type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.ItemRequest) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO item_requests (id, requester_id, description, created_at)
		VALUES ($1, $2, $3, $4)`,
		req.ID(), req.RequesterID(), req.Description(), req.Created(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create item request", err)
	}
	return nil
}

func (r *RequestRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM item_requests WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check item request", err)
	}
	return exists, nil
}
