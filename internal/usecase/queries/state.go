package queries

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"
)

// State selects a logical booking view: a time partition relative to "now"
// or a literal status filter.
type State string

const (
	StateAll     State = "ALL"
	StateCurrent State = "CURRENT"
	StatePast    State = "PAST"
	StateFuture  State = "FUTURE"
)

// ParseState accepts exactly the known tokens; anything else is reported back
// as an incorrect "state" parameter.
func ParseState(raw string) (State, error) {
	switch State(raw) {
	case StateAll, StateCurrent, StatePast, StateFuture:
		return State(raw), nil
	}
	if booking.Status(raw).IsValid() {
		return State(raw), nil
	}
	return "", errs.NewIncorrectParameter("state", raw)
}

// Matches evaluates the state predicate against a booking row at the query
// instant. The four time partitions are disjoint for bookings that do not
// straddle a boundary exactly at now.
func (s State) Matches(v BookingView, now time.Time) bool {
	switch s {
	case StateAll:
		return true
	case StateCurrent:
		return v.Start.Before(now) && v.End.After(now)
	case StatePast:
		return v.End.Before(now)
	case StateFuture:
		return v.Start.After(now)
	default:
		return v.Status == booking.Status(s)
	}
}

func filterByState(rows []BookingView, s State, now time.Time) []BookingView {
	if s == StateAll {
		return rows
	}
	out := make([]BookingView, 0, len(rows))
	for _, v := range rows {
		if s.Matches(v, now) {
			out = append(out, v)
		}
	}
	return out
}
