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

// ItemReadStore serves catalog views (queries.ItemViewRepo). Summaries and
// comments are attached by the query layer, not here.
type ItemReadStore struct {
	pool *pgxpool.Pool
}

func NewItemReadStore(pool *pgxpool.Pool) *ItemReadStore {
	return &ItemReadStore{pool: pool}
}

const itemViewSelect = `
	SELECT id, owner_id, name, description, available, request_id
	FROM items`

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row := r.pool.QueryRow(ctx, itemViewSelect+` WHERE id = $1`, id)

	view, err := scanItemView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item view by id", err)
	}
	return view, nil
}

func (r *ItemReadStore) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]queries.ItemView, error) {
	return r.list(ctx, itemViewSelect+` WHERE owner_id = $1 ORDER BY id`, ownerID)
}

func (r *ItemReadStore) ListByRequestID(ctx context.Context, requestID uuid.UUID) ([]queries.ItemView, error) {
	return r.list(ctx, itemViewSelect+` WHERE request_id = $1 ORDER BY id`, requestID)
}

// Search matches available items on a name or description substring,
// case-insensitively.
func (r *ItemReadStore) Search(ctx context.Context, text string) ([]queries.ItemView, error) {
	return r.list(ctx, itemViewSelect+`
		WHERE available
		  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY id`, text)
}

func (r *ItemReadStore) HasAnyByOwnerID(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM items WHERE owner_id = $1)`, ownerID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check owner items", err)
	}
	return exists, nil
}

func (r *ItemReadStore) list(ctx context.Context, sql string, args ...any) ([]queries.ItemView, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item views", err)
	}
	defer rows.Close()

	result := make([]queries.ItemView, 0)
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item view", err)
		}
		result = append(result, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item views", err)
	}
	return result, nil
}

func scanItemView(row pgx.Row) (*queries.ItemView, error) {
	var v queries.ItemView
	if err := row.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Available, &v.RequestID); err != nil {
		return nil, err
	}
	return &v, nil
}
