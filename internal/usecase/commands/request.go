package commands

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestCommands interface {
	Create(ctx context.Context, requesterID uuid.UUID, description string) (*request.ItemRequest, error)
}

type requestCommandsImpl struct {
	requests RequestRepository
	users    UserRepository
	clock    clock.Clock
}

func NewRequestCommands(requests RequestRepository, users UserRepository, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{requests: requests, users: users, clock: clk}
}

func (c *requestCommandsImpl) Create(ctx context.Context, requesterID uuid.UUID, description string) (*request.ItemRequest, error) {
	if err := requireUser(ctx, c.users, requesterID); err != nil {
		return nil, err
	}

	req, err := request.NewItemRequest(requesterID, description, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if err := c.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
