package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

// RequestViewRepo is the read-side port for item request rows. Own requests
// come back oldest first, foreign ones newest first; the query layer relies
// on those orders.
type RequestViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListByRequesterID(ctx context.Context, requesterID uuid.UUID) ([]RequestView, error)
	ListByOtherRequesters(ctx context.Context, requesterID uuid.UUID) ([]RequestView, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, userID, requestID uuid.UUID) (*RequestView, error)
	ListOwn(ctx context.Context, userID uuid.UUID) ([]RequestView, error)
	ListOthers(ctx context.Context, userID uuid.UUID, page Page) ([]RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestViewRepo
	items    ItemViewRepo
	users    UserViewRepo
}

func NewRequestQueries(requests RequestViewRepo, items ItemViewRepo, users UserViewRepo) RequestQueries {
	return &requestQueriesImpl{requests: requests, items: items, users: users}
}

// GetByID returns a single request with its answering items. Any known user
// may read any request.
func (q *requestQueriesImpl) GetByID(ctx context.Context, userID, requestID uuid.UUID) (*RequestView, error) {
	if err := requireUser(ctx, q.users, userID); err != nil {
		return nil, err
	}

	view, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, err
	}
	if err := q.attachItems(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

// ListOwn returns the caller's requests, oldest first, each with the items
// answering it.
func (q *requestQueriesImpl) ListOwn(ctx context.Context, userID uuid.UUID) ([]RequestView, error) {
	if err := requireUser(ctx, q.users, userID); err != nil {
		return nil, err
	}

	rows, err := q.requests.ListByRequesterID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if err := q.attachItems(ctx, &rows[i]); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// ListOthers pages through everyone else's requests, newest first. Items are
// attached only for the returned window.
func (q *requestQueriesImpl) ListOthers(ctx context.Context, userID uuid.UUID, page Page) ([]RequestView, error) {
	if err := requireUser(ctx, q.users, userID); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	rows, err := q.requests.ListByOtherRequesters(ctx, userID)
	if err != nil {
		return nil, err
	}
	rows = paginate(rows, page)
	for i := range rows {
		if err := q.attachItems(ctx, &rows[i]); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func (q *requestQueriesImpl) attachItems(ctx context.Context, view *RequestView) error {
	items, err := q.items.ListByRequestID(ctx, view.ID)
	if err != nil {
		return err
	}
	view.Items = items
	return nil
}
