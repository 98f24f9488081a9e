package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error)
	ChangeStatus(ctx context.Context, actorID, bookingID uuid.UUID, approve bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings     BookingRepository
	items        ItemRepository
	users        UserRepository
	bookingViews queries.BookingViewRepo
	clock        clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	items ItemRepository,
	users UserRepository,
	bookingViews queries.BookingViewRepo,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:     bookings,
		items:        items,
		users:        users,
		bookingViews: bookingViews,
		clock:        clk,
	}
}

// Create allocates a WAITING booking. Overlap with existing approved bookings
// for the same item is deliberately not checked.
func (c *bookingCommandsImpl) Create(ctx context.Context, bookerID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error) {
	if err := requireUser(ctx, c.users, bookerID); err != nil {
		return nil, err
	}

	itm, err := c.items.FindByID(ctx, in.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, err
	}
	if itm.IsOwnedBy(bookerID) {
		return nil, errs.ErrOwnerBooking
	}
	if !itm.Available() {
		return nil, errs.ErrItemNotAvailable
	}

	period, err := booking.NewPeriod(in.Start, in.End, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidBookingDate)
	}

	b := booking.NewBooking(in.ItemID, bookerID, period)
	if err := c.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	// Read-after-write: return the joined view from the read side.
	return c.bookingViews.FindByID(ctx, b.ID())
}

// ChangeStatus approves or rejects a booking. Only the owner of the booked
// item may act. Rejection is unconditional so an owner can revoke an earlier
// approval; only a repeated approval is refused.
func (c *bookingCommandsImpl) ChangeStatus(ctx context.Context, actorID, bookingID uuid.UUID, approve bool) (*queries.BookingView, error) {
	if err := requireUser(ctx, c.users, actorID); err != nil {
		return nil, err
	}

	b, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}

	itm, err := c.items.FindByID(ctx, b.ItemID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, err
	}
	if !itm.IsOwnedBy(actorID) {
		return nil, errs.ErrNotOwner
	}

	if approve {
		if err := b.Approve(); err != nil {
			return nil, errs.Mark(err, errs.ErrStatusAlreadyChanged)
		}
		if err := c.bookings.Approve(ctx, bookingID); err != nil {
			// The conditional update lost a race against another approval.
			if infra.IsKind(err, infra.KindConflict) {
				return nil, errs.ErrStatusAlreadyChanged
			}
			return nil, err
		}
	} else {
		if err := c.bookings.Reject(ctx, bookingID); err != nil {
			return nil, err
		}
	}

	return c.bookingViews.FindByID(ctx, bookingID)
}
