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

// RequestReadStore serves item request views (queries.RequestViewRepo).
// Answering items are attached by the query layer, not here.
type RequestReadStore struct {
	pool *pgxpool.Pool
}

func NewRequestReadStore(pool *pgxpool.Pool) *RequestReadStore {
	return &RequestReadStore{pool: pool}
}

const requestViewSelect = `
	SELECT id, requester_id, description, created_at
	FROM item_requests`

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row := r.pool.QueryRow(ctx, requestViewSelect+` WHERE id = $1`, id)

	view, err := scanRequestView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item request view by id", err)
	}
	return view, nil
}

func (r *RequestReadStore) ListByRequesterID(ctx context.Context, requesterID uuid.UUID) ([]queries.RequestView, error) {
	return r.list(ctx, requestViewSelect+` WHERE requester_id = $1 ORDER BY created_at`, requesterID)
}

func (r *RequestReadStore) ListByOtherRequesters(ctx context.Context, requesterID uuid.UUID) ([]queries.RequestView, error) {
	return r.list(ctx, requestViewSelect+` WHERE requester_id <> $1 ORDER BY created_at DESC`, requesterID)
}

func (r *RequestReadStore) list(ctx context.Context, sql string, args ...any) ([]queries.RequestView, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item request views", err)
	}
	defer rows.Close()

	result := make([]queries.RequestView, 0)
	for rows.Next() {
		view, err := scanRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item request view", err)
		}
		result = append(result, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item request views", err)
	}
	return result, nil
}

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var v queries.RequestView
	if err := row.Scan(&v.ID, &v.RequesterID, &v.Description, &v.Created); err != nil {
		return nil, err
	}
	return &v, nil
}
