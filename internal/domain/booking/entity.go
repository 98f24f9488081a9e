package booking

import (
	"errors"

	"github.com/google/uuid"
)

var ErrAlreadyApproved = errors.New("booking is already approved")

type Booking struct {
	id       uuid.UUID
	itemID   uuid.UUID
	bookerID uuid.UUID
	period   Period
	status   Status
}

// NewBooking allocates a WAITING booking for an already validated period.
func NewBooking(itemID, bookerID uuid.UUID, period Period) *Booking {
	return &Booking{
		id:       uuid.New(),
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}
}

func Reconstruct(id, itemID, bookerID uuid.UUID, period Period, status Status) *Booking {
	return &Booking{
		id:       id,
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   status,
	}
}

// Approve moves the booking to APPROVED. Approving twice is rejected; the
// persistence layer enforces the same guard with a conditional update so two
// racing approvals cannot both win.
func (b *Booking) Approve() error {
	if b.status == StatusApproved {
		return ErrAlreadyApproved
	}
	b.status = StatusApproved
	return nil
}

// Reject moves the booking to REJECTED unconditionally. The owner may revoke
// an earlier approval this way.
func (b *Booking) Reject() {
	b.status = StatusRejected
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) ItemID() uuid.UUID   { return b.itemID }
func (b *Booking) BookerID() uuid.UUID { return b.bookerID }
func (b *Booking) Period() Period      { return b.period }
func (b *Booking) Status() Status      { return b.status }
