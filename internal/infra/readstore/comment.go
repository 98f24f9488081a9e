package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CommentReadStore serves comment views joined with the author's name
// (queries.CommentViewRepo).
type CommentReadStore struct {
	pool *pgxpool.Pool
}

func NewCommentReadStore(pool *pgxpool.Pool) *CommentReadStore {
	return &CommentReadStore{pool: pool}
}

func (r *CommentReadStore) ListByItemID(ctx context.Context, itemID uuid.UUID) ([]queries.CommentView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.text, u.name, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.created_at`, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comment views", err)
	}
	defer rows.Close()

	result := make([]queries.CommentView, 0)
	for rows.Next() {
		var v queries.CommentView
		if err := rows.Scan(&v.ID, &v.Text, &v.AuthorName, &v.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment view", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment views", err)
	}
	return result, nil
}
