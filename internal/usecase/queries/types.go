package queries

import (
	"strconv"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side).

type ItemRef struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"-"`
	Name    string    `json:"name"`
}

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BookingView is a booking row joined with item and booker summaries.
// Constructed fresh per query, never persisted.
type BookingView struct {
	ID     uuid.UUID      `json:"id"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status booking.Status `json:"status"`
	Item   ItemRef        `json:"item"`
	Booker UserRef        `json:"booker"`
}

// BookingSummary is the last/next projection attached to owner item views.
type BookingSummary struct {
	ID       uuid.UUID      `json:"id"`
	BookerID uuid.UUID      `json:"bookerId"`
	Start    time.Time      `json:"start"`
	End      time.Time      `json:"end"`
	Status   booking.Status `json:"status"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemView struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"-"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Available   bool            `json:"available"`
	RequestID   *uuid.UUID      `json:"requestId,omitempty"`
	LastBooking *BookingSummary `json:"lastBooking,omitempty"`
	NextBooking *BookingSummary `json:"nextBooking,omitempty"`
	Comments    []CommentView   `json:"comments,omitempty"`
}

// RequestView is an item request joined with the items answering it.
type RequestView struct {
	ID          uuid.UUID  `json:"id"`
	RequesterID uuid.UUID  `json:"requesterId"`
	Description string     `json:"description"`
	Created     time.Time  `json:"created"`
	Items       []ItemView `json:"items"`
}

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Page is an offset/limit window applied to a filtered, sorted result set.
type Page struct {
	From int
	Size int
}

func (p Page) Validate() error {
	if p.From < 0 {
		return errs.NewIncorrectParameter("from", strconv.Itoa(p.From))
	}
	if p.Size <= 0 {
		return errs.NewIncorrectParameter("size", strconv.Itoa(p.Size))
	}
	return nil
}

// paginate slices rows after filtering and sorting, per the owner-view
// contract: the window is over the derived set, not a store-level limit.
func paginate[T any](rows []T, p Page) []T {
	if p.From >= len(rows) {
		return []T{}
	}
	end := p.From + p.Size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[p.From:end]
}
