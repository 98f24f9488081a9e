package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CommentRepository is the write-side store for comments
// (commands.CommentRepository).
type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, item_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID(), c.ItemID(), c.AuthorID(), c.Text(), c.Created(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create comment", err)
	}
	return nil
}
