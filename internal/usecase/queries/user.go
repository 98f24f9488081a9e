package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	ListAll(ctx context.Context) ([]UserView, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	ListAll(ctx context.Context) ([]UserView, error)
}

type userQueriesImpl struct {
	users UserViewRepo
}

func NewUserQueries(users UserViewRepo) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	view, err := q.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) ListAll(ctx context.Context) ([]UserView, error) {
	return q.users.ListAll(ctx)
}
