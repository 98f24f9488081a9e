package commands

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in internal/infra/repository and
// signal failure classes through infra.RepositoryError kinds.

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// Approve runs as a single conditional update (status <> APPROVED) so two
	// racing approvals cannot both succeed; a lost race surfaces as KindConflict.
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
	ListByBookerAndItem(ctx context.Context, bookerID, itemID uuid.UUID) ([]*booking.Booking, error)
}

type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) error
	Update(ctx context.Context, i *item.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) error
}

type RequestRepository interface {
	Create(ctx context.Context, r *request.ItemRequest) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// requireUser distinguishes a missing caller identity from an unknown one.
func requireUser(ctx context.Context, users UserRepository, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return errs.ErrUserNotDefined
	}
	exists, err := users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrUserNotFound
	}
	return nil
}
