package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingViewRepo is the read-side port for booking rows. Implementations
// return rows ordered by start descending; the engine relies on that order.
type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByBookerID(ctx context.Context, bookerID uuid.UUID) ([]BookingView, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]BookingView, error)
	ListByItemID(ctx context.Context, itemID uuid.UUID) ([]BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID, bookingID uuid.UUID) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID uuid.UUID, stateToken string, page Page) ([]BookingView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, stateToken string, page Page) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingViewRepo
	items    ItemViewRepo
	users    UserViewRepo
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingViewRepo, items ItemViewRepo, users UserViewRepo, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		items:    items,
		users:    users,
		clock:    clk,
	}
}

// GetByID is visible only to the item's owner or the booking's booker. Any
// other caller gets the same not-found error as for a missing booking, so
// existence is not leaked.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, bookingID uuid.UUID) (*BookingView, error) {
	if err := requireUser(ctx, q.users, actorID); err != nil {
		return nil, err
	}

	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}

	if view.Item.OwnerID != actorID && view.Booker.ID != actorID {
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForBooker(ctx context.Context, bookerID uuid.UUID, stateToken string, page Page) ([]BookingView, error) {
	state, err := q.validateListArgs(ctx, bookerID, stateToken, page)
	if err != nil {
		return nil, err
	}

	rows, err := q.bookings.ListByBookerID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	return paginate(filterByState(rows, state, q.clock.Now()), page), nil
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, stateToken string, page Page) ([]BookingView, error) {
	state, err := q.validateListArgs(ctx, ownerID, stateToken, page)
	if err != nil {
		return nil, err
	}

	// An owner without items gets an empty page without touching the booking store.
	hasItems, err := q.items.HasAnyByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !hasItems {
		return []BookingView{}, nil
	}

	rows, err := q.bookings.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return paginate(filterByState(rows, state, q.clock.Now()), page), nil
}

func (q *bookingQueriesImpl) validateListArgs(ctx context.Context, userID uuid.UUID, stateToken string, page Page) (State, error) {
	if err := requireUser(ctx, q.users, userID); err != nil {
		return "", err
	}
	state, err := ParseState(stateToken)
	if err != nil {
		return "", err
	}
	if err := page.Validate(); err != nil {
		return "", err
	}
	return state, nil
}

// requireUser distinguishes a missing caller identity from an unknown one.
func requireUser(ctx context.Context, users UserViewRepo, userID uuid.UUID) error {
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
