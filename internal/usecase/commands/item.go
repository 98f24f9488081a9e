package commands

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type UpdateItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateItemInput) (*item.Item, error)
	Update(ctx context.Context, actorID, itemID uuid.UUID, in UpdateItemInput) (*item.Item, error)
}

type itemCommandsImpl struct {
	items    ItemRepository
	users    UserRepository
	requests RequestRepository
}

func NewItemCommands(items ItemRepository, users UserRepository, requests RequestRepository) ItemCommands {
	return &itemCommandsImpl{items: items, users: users, requests: requests}
}

// Create registers a new item. When a request id is given the item is linked
// as an answer to that request; an unknown request id fails the command.
func (c *itemCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, in CreateItemInput) (*item.Item, error) {
	if err := requireUser(ctx, c.users, ownerID); err != nil {
		return nil, err
	}

	itm, err := item.NewItem(ownerID, in.Name, in.Description, in.Available)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if in.RequestID != nil {
		exists, err := c.requests.Exists(ctx, *in.RequestID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.ErrRequestNotFound
		}
		itm.LinkRequest(*in.RequestID)
	}

	if err := c.items.Create(ctx, itm); err != nil {
		return nil, err
	}
	return itm, nil
}

// Update applies a partial patch; only the item's owner may modify it.
func (c *itemCommandsImpl) Update(ctx context.Context, actorID, itemID uuid.UUID, in UpdateItemInput) (*item.Item, error) {
	if err := requireUser(ctx, c.users, actorID); err != nil {
		return nil, err
	}

	itm, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, err
	}
	if !itm.IsOwnedBy(actorID) {
		return nil, errs.ErrNotOwner
	}

	if err := itm.ApplyPatch(in.Name, in.Description, in.Available); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if err := c.items.Update(ctx, itm); err != nil {
		return nil, err
	}
	return itm, nil
}
