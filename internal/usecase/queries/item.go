package queries

import (
	"context"
	"strings"
	"time"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

// ItemViewRepo is the read-side port for catalog rows. Listings are ordered
// by id for a stable default order.
type ItemViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]ItemView, error)
	ListByRequestID(ctx context.Context, requestID uuid.UUID) ([]ItemView, error)
	Search(ctx context.Context, text string) ([]ItemView, error)
	HasAnyByOwnerID(ctx context.Context, ownerID uuid.UUID) (bool, error)
}

type CommentViewRepo interface {
	ListByItemID(ctx context.Context, itemID uuid.UUID) ([]CommentView, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, viewerID, itemID uuid.UUID) (*ItemView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]ItemView, error)
	Search(ctx context.Context, text string, page Page) ([]ItemView, error)
}

type itemQueriesImpl struct {
	items    ItemViewRepo
	bookings BookingViewRepo
	comments CommentViewRepo
	users    UserViewRepo
	clock    clock.Clock
}

func NewItemQueries(items ItemViewRepo, bookings BookingViewRepo, comments CommentViewRepo, users UserViewRepo, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{
		items:    items,
		bookings: bookings,
		comments: comments,
		users:    users,
		clock:    clk,
	}
}

// GetByID returns the item with comments attached. The last/next booking
// summary is owner-only information and is suppressed for other viewers.
func (q *itemQueriesImpl) GetByID(ctx context.Context, viewerID, itemID uuid.UUID) (*ItemView, error) {
	if err := requireUser(ctx, q.users, viewerID); err != nil {
		return nil, err
	}

	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, err
	}

	if view.OwnerID == viewerID {
		if err := q.attachSummary(ctx, view); err != nil {
			return nil, err
		}
	}
	if err := q.attachComments(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *itemQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]ItemView, error) {
	if err := requireUser(ctx, q.users, ownerID); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	rows, err := q.items.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	rows = paginate(rows, page)
	for i := range rows {
		if err := q.attachSummary(ctx, &rows[i]); err != nil {
			return nil, err
		}
		if err := q.attachComments(ctx, &rows[i]); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// Search matches available items by name or description substring. An empty
// query returns an empty result without hitting the store.
func (q *itemQueriesImpl) Search(ctx context.Context, text string, page Page) ([]ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []ItemView{}, nil
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	rows, err := q.items.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	return paginate(rows, page), nil
}

func (q *itemQueriesImpl) attachSummary(ctx context.Context, view *ItemView) error {
	rows, err := q.bookings.ListByItemID(ctx, view.ID)
	if err != nil {
		return err
	}
	view.LastBooking, view.NextBooking = Summarize(rows, q.clock.Now())
	return nil
}

func (q *itemQueriesImpl) attachComments(ctx context.Context, view *ItemView) error {
	comments, err := q.comments.ListByItemID(ctx, view.ID)
	if err != nil {
		return err
	}
	view.Comments = comments
	return nil
}

// Summarize derives the availability summary from all bookings of one item:
// last is the latest-ending booking that has completed or is ongoing, next is
// the earliest-starting upcoming booking. An ongoing booking can only appear
// as last, never as next. Recomputed on every read, linear in the booking
// count for the item.
func Summarize(rows []BookingView, now time.Time) (last, next *BookingSummary) {
	for i := range rows {
		v := rows[i]
		ended := v.End.Before(now)
		ongoing := v.Start.Before(now) && v.End.After(now)
		if ended || ongoing {
			if last == nil || v.End.After(last.End) {
				last = toSummary(v)
			}
		}
	}
	for i := range rows {
		v := rows[i]
		if !v.Start.After(now) {
			continue
		}
		if last != nil && v.ID == last.ID {
			continue
		}
		if next == nil || v.Start.Before(next.Start) {
			next = toSummary(v)
		}
	}
	return last, next
}

func toSummary(v BookingView) *BookingSummary {
	return &BookingSummary{
		ID:       v.ID,
		BookerID: v.Booker.ID,
		Start:    v.Start,
		End:      v.End,
		Status:   v.Status,
	}
}
