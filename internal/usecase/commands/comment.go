package commands

import (
	"context"
	"strings"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentCommands interface {
	Add(ctx context.Context, authorID, itemID uuid.UUID, text string) (*queries.CommentView, error)
}

type commentCommandsImpl struct {
	comments CommentRepository
	bookings BookingRepository
	items    ItemRepository
	users    UserRepository
	clock    clock.Clock
}

func NewCommentCommands(
	comments CommentRepository,
	bookings BookingRepository,
	items ItemRepository,
	users UserRepository,
	clk clock.Clock,
) CommentCommands {
	return &commentCommandsImpl{
		comments: comments,
		bookings: bookings,
		items:    items,
		users:    users,
		clock:    clk,
	}
}

// Add stores a comment if the author has at least one finished rental of the
// item. Any finished booking qualifies; no particular one is preferred.
func (c *commentCommandsImpl) Add(ctx context.Context, authorID, itemID uuid.UUID, text string) (*queries.CommentView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errs.Mark(comment.ErrEmptyText, errs.ErrValidation)
	}
	if authorID == uuid.Nil {
		return nil, errs.ErrUserNotDefined
	}

	author, err := c.users.FindByID(ctx, authorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	if _, err := c.items.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, err
	}

	bookings, err := c.bookings.ListByBookerAndItem(ctx, authorID, itemID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, errs.Mark(errs.New("user has never booked this item"), errs.ErrCommentNotAllowed)
	}

	now := c.clock.Now()
	finished := false
	for _, b := range bookings {
		if b.Period().HasFinished(now) {
			finished = true
			break
		}
	}
	if !finished {
		return nil, errs.Mark(errs.New("user has no finished booking of this item"), errs.ErrCommentNotAllowed)
	}

	cm, err := comment.NewComment(itemID, authorID, text, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if err := c.comments.Create(ctx, cm); err != nil {
		return nil, err
	}

	return &queries.CommentView{
		ID:         cm.ID(),
		Text:       cm.Text(),
		AuthorName: author.Name(),
		Created:    cm.Created(),
	}, nil
}
