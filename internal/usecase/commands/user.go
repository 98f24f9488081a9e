package commands

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateUserInput struct {
	Name  string
	Email string
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, in CreateUserInput) (*user.User, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*user.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userCommandsImpl struct {
	users UserRepository
}

func NewUserCommands(users UserRepository) UserCommands {
	return &userCommandsImpl{users: users}
}

func (c *userCommandsImpl) Create(ctx context.Context, in CreateUserInput) (*user.User, error) {
	u, err := user.NewUser(in.Name, in.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if err := c.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

func (c *userCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*user.User, error) {
	u, err := c.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	if err := u.ApplyPatch(in.Name, in.Email); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if err := c.users.Update(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

func (c *userCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.users.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return err
	}
	return nil
}
