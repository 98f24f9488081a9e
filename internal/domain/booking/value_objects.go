package booking

import (
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid booking period")

// Period is the half-open rental window of a booking. Validated once at
// creation: start and end must both be strictly in the future and start must
// precede end. Reconstructed bookings skip validation.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end, now time.Time) (Period, error) {
	if !start.After(now) || !end.After(now) || !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

// ReconstructPeriod restores a period from storage without re-validating.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) IsCurrent(now time.Time) bool {
	return p.start.Before(now) && p.end.After(now)
}

func (p Period) IsPast(now time.Time) bool {
	return p.end.Before(now)
}

func (p Period) IsFuture(now time.Time) bool {
	return p.start.After(now)
}

// HasFinished reports whether the rental has ended at or before now.
// Used by comment eligibility, which accepts end == now.
func (p Period) HasFinished(now time.Time) bool {
	return !p.end.After(now)
}
