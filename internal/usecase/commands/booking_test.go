//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/tests/common/builder"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func notFoundErr() error {
	return infra.WrapRepoErr("row not found", errors.New("no rows in result set"), infra.KindNotFound)
}

func conflictErr() error {
	return infra.WrapRepoErr("no rows updated", errors.New("status already set"), infra.KindConflict)
}

type bookingCommandsFixture struct {
	bookings     *commandsmock.MockBookingRepository
	items        *commandsmock.MockItemRepository
	users        *commandsmock.MockUserRepository
	bookingViews *queriesmock.MockBookingViewRepo
	clock        *clock.MockClock
	sut          commands.BookingCommands
}

func newBookingCommandsFixture(t *testing.T) *bookingCommandsFixture {
	ctrl := gomock.NewController(t)
	f := &bookingCommandsFixture{
		bookings:     commandsmock.NewMockBookingRepository(ctrl),
		items:        commandsmock.NewMockItemRepository(ctrl),
		users:        commandsmock.NewMockUserRepository(ctrl),
		bookingViews: queriesmock.NewMockBookingViewRepo(ctrl),
		clock:        clock.NewMockClock(testNow),
	}
	f.sut = commands.NewBookingCommands(f.bookings, f.items, f.users, f.bookingViews, f.clock)
	return f
}

func availableItem(ownerID uuid.UUID) *item.Item {
	return item.Reconstruct(uuid.New(), ownerID, "cordless drill", "18V with two batteries", true, nil)
}

func validInput(itemID uuid.UUID) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ItemID: itemID,
		Start:  testNow.Add(24 * time.Hour),
		End:    testNow.Add(48 * time.Hour),
	}
}

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns joined view", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		bookerID := uuid.New()
		itm := availableItem(uuid.New())
		view := builder.NewBookingViewBuilder(testNow).WithBooker(bookerID).BuildView()

		f.users.EXPECT().Exists(ctx, bookerID).Return(true, nil)
		f.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)
		f.bookings.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b *booking.Booking) error {
				assert.Equal(t, booking.StatusWaiting, b.Status())
				assert.Equal(t, bookerID, b.BookerID())
				assert.Equal(t, itm.ID(), b.ItemID())
				return nil
			})
		f.bookingViews.EXPECT().FindByID(ctx, gomock.Any()).Return(&view, nil)

		got, err := f.sut.Create(ctx, bookerID, validInput(itm.ID()))
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("owner cannot book own item", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		ownerID := uuid.New()
		itm := availableItem(ownerID)

		f.users.EXPECT().Exists(ctx, ownerID).Return(true, nil)
		f.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)

		_, err := f.sut.Create(ctx, ownerID, validInput(itm.ID()))
		assert.ErrorIs(t, err, errs.ErrOwnerBooking)
	})

	t.Run("unavailable item", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		bookerID := uuid.New()
		itm := item.Reconstruct(uuid.New(), uuid.New(), "cordless drill", "broken charger", false, nil)

		f.users.EXPECT().Exists(ctx, bookerID).Return(true, nil)
		f.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)

		_, err := f.sut.Create(ctx, bookerID, validInput(itm.ID()))
		assert.ErrorIs(t, err, errs.ErrItemNotAvailable)
	})

	t.Run("missing item", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		bookerID := uuid.New()
		itemID := uuid.New()

		f.users.EXPECT().Exists(ctx, bookerID).Return(true, nil)
		f.items.EXPECT().FindByID(ctx, itemID).Return(nil, notFoundErr())

		_, err := f.sut.Create(ctx, bookerID, validInput(itemID))
		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})

	t.Run("date validation", func(t *testing.T) {
		cases := []struct {
			name  string
			start time.Time
			end   time.Time
		}{
			{name: "start in the past", start: testNow.Add(-time.Hour), end: testNow.Add(time.Hour)},
			{name: "end before start", start: testNow.Add(2 * time.Hour), end: testNow.Add(time.Hour)},
			{name: "end equals start", start: testNow.Add(time.Hour), end: testNow.Add(time.Hour)},
			{name: "start equals now", start: testNow, end: testNow.Add(time.Hour)},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newBookingCommandsFixture(t)
				bookerID := uuid.New()
				itm := availableItem(uuid.New())

				f.users.EXPECT().Exists(ctx, bookerID).Return(true, nil)
				f.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)

				_, err := f.sut.Create(ctx, bookerID, commands.CreateBookingInput{
					ItemID: itm.ID(), Start: tc.start, End: tc.end,
				})
				assert.ErrorIs(t, err, errs.ErrInvalidBookingDate)
			})
		}
	})

	t.Run("nil booker", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		_, err := f.sut.Create(ctx, uuid.Nil, validInput(uuid.New()))
		assert.ErrorIs(t, err, errs.ErrUserNotDefined)
	})

	t.Run("unknown booker", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		bookerID := uuid.New()
		f.users.EXPECT().Exists(ctx, bookerID).Return(false, nil)

		_, err := f.sut.Create(ctx, bookerID, validInput(uuid.New()))
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestBookingCommands_ChangeStatus(t *testing.T) {
	ctx := context.Background()

	waitingBooking := func(itm *item.Item, bookerID uuid.UUID) *booking.Booking {
		period := booking.ReconstructPeriod(testNow.Add(24*time.Hour), testNow.Add(48*time.Hour))
		return booking.Reconstruct(uuid.New(), itm.ID(), bookerID, period, booking.StatusWaiting)
	}

	t.Run("owner approves waiting booking", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		ownerID := uuid.New()
		itm := availableItem(ownerID)
		b := waitingBooking(itm, uuid.New())
		view := builder.NewBookingViewBuilder(testNow).WithID(b.ID()).WithStatus(booking.StatusApproved).BuildView()

		f.users.EXPECT().Exists(ctx, ownerID).Return(true, nil)
		f.bookings.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		f.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)
		f.bookings.EXPECT().Approve(ctx, b.ID()).Return(nil)
		f.bookingViews.EXPECT().FindByID(ctx, b.ID()).Return(&view, nil)

		got, err := f.sut.ChangeStatus(ctx, ownerID, b.ID(), true)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusApproved, got.Status)
	})

	t.Run("approving an approved booking fails", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		ownerID := uuid.New()
		itm := availableItem(ownerID)
		period := booking.ReconstructPeriod(testNow.Add(24*time.Hour), testNow.Add(48*time.Hour))
		b := booking.Reconstruct(uuid.New(), itm.ID(), uuid.New(), period, booking.StatusApproved)

		f.users.EXPECT().Exists(ctx, ownerID).Return(true, nil)
		f.bookings.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		f.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)

		_, err := f.sut.ChangeStatus(ctx, ownerID, b.ID(), true)
		assert.ErrorIs(t, err, errs.ErrStatusAlreadyChanged)
	})

	t.Run("lost approval race surfaces as already changed", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		ownerID := uuid.New()
		itm := availableItem(ownerID)
		b := waitingBooking(itm, uuid.New())

		f.users.EXPECT().Exists(ctx, ownerID).Return(true, nil)
		f.bookings.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		f.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)
		f.bookings.EXPECT().Approve(ctx, b.ID()).Return(conflictErr())

		_, err := f.sut.ChangeStatus(ctx, ownerID, b.ID(), true)
		assert.ErrorIs(t, err, errs.ErrStatusAlreadyChanged)
	})

	t.Run("reject revokes an approved booking", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		ownerID := uuid.New()
		itm := availableItem(ownerID)
		period := booking.ReconstructPeriod(testNow.Add(24*time.Hour), testNow.Add(48*time.Hour))
		b := booking.Reconstruct(uuid.New(), itm.ID(), uuid.New(), period, booking.StatusApproved)
		view := builder.NewBookingViewBuilder(testNow).WithID(b.ID()).WithStatus(booking.StatusRejected).BuildView()

		f.users.EXPECT().Exists(ctx, ownerID).Return(true, nil)
		f.bookings.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		f.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)
		f.bookings.EXPECT().Reject(ctx, b.ID()).Return(nil)
		f.bookingViews.EXPECT().FindByID(ctx, b.ID()).Return(&view, nil)

		got, err := f.sut.ChangeStatus(ctx, ownerID, b.ID(), false)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusRejected, got.Status)
	})

	t.Run("non-owner may not change status", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		itm := availableItem(uuid.New())
		b := waitingBooking(itm, uuid.New())
		stranger := uuid.New()

		f.users.EXPECT().Exists(ctx, stranger).Return(true, nil)
		f.bookings.EXPECT().FindByID(ctx, b.ID()).Return(b, nil)
		f.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)

		_, err := f.sut.ChangeStatus(ctx, stranger, b.ID(), true)
		assert.ErrorIs(t, err, errs.ErrNotOwner)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		actorID := uuid.New()
		bookingID := uuid.New()

		f.users.EXPECT().Exists(ctx, actorID).Return(true, nil)
		f.bookings.EXPECT().FindByID(ctx, bookingID).Return(nil, notFoundErr())

		_, err := f.sut.ChangeStatus(ctx, actorID, bookingID, true)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}
