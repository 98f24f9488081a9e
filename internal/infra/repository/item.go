package repository

import (
	"context"
	"errors"

	"shareit/internal/domain/item"
	"shareit/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ItemRepository is the write-side store for catalog items
// (commands.ItemRepository).
type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO items (id, owner_id, name, description, available, request_id)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		i.ID(), i.OwnerID(), i.Name(), i.Description(), i.Available(), i.RequestID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE items SET name = $1, description = $2, available = $3
		WHERE id = $4`,
		i.Name(), i.Description(), i.Available(), i.ID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	var (
		itemID, ownerID   uuid.UUID
		name, description string
		available         bool
		requestID         *uuid.UUID
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, name, description, available, request_id
		FROM items WHERE id = $1`, id,
	).Scan(&itemID, &ownerID, &name, &description, &available, &requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}
	return item.Reconstruct(itemID, ownerID, name, description, available, requestID), nil
}
