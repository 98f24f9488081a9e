//go:build unit

package builder

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingViewBuilder assembles read-model rows for query and handler tests.
// Defaults describe a waiting, future booking relative to the given anchor.
type BookingViewBuilder struct {
	id       uuid.UUID
	itemID   uuid.UUID
	ownerID  uuid.UUID
	itemName string
	bookerID uuid.UUID
	booker   string
	start    time.Time
	end      time.Time
	status   booking.Status
}

func NewBookingViewBuilder(anchor time.Time) *BookingViewBuilder {
	return &BookingViewBuilder{
		id:       uuid.New(),
		itemID:   uuid.New(),
		ownerID:  uuid.New(),
		itemName: "cordless drill",
		bookerID: uuid.New(),
		booker:   "renter",
		start:    anchor.Add(24 * time.Hour),
		end:      anchor.Add(48 * time.Hour),
		status:   booking.StatusWaiting,
	}
}

func (b *BookingViewBuilder) WithID(id uuid.UUID) *BookingViewBuilder {
	b.id = id
	return b
}

func (b *BookingViewBuilder) WithItem(itemID, ownerID uuid.UUID) *BookingViewBuilder {
	b.itemID = itemID
	b.ownerID = ownerID
	return b
}

func (b *BookingViewBuilder) WithBooker(id uuid.UUID) *BookingViewBuilder {
	b.bookerID = id
	return b
}

func (b *BookingViewBuilder) WithPeriod(start, end time.Time) *BookingViewBuilder {
	b.start = start
	b.end = end
	return b
}

func (b *BookingViewBuilder) WithStatus(s booking.Status) *BookingViewBuilder {
	b.status = s
	return b
}

func (b *BookingViewBuilder) BuildView() queries.BookingView {
	return queries.BookingView{
		ID:     b.id,
		Start:  b.start,
		End:    b.end,
		Status: b.status,
		Item:   queries.ItemRef{ID: b.itemID, OwnerID: b.ownerID, Name: b.itemName},
		Booker: queries.UserRef{ID: b.bookerID, Name: b.booker},
	}
}
