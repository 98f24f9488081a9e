package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyDescription = errors.New("request description cannot be empty")

// ItemRequest is a wish for an item that is not in the catalog yet. Owners
// answer it by creating items linked to the request.
type ItemRequest struct {
	id          uuid.UUID
	requesterID uuid.UUID
	description string
	created     time.Time
}

func NewItemRequest(requesterID uuid.UUID, description string, now time.Time) (*ItemRequest, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return nil, ErrEmptyDescription
	}
	return &ItemRequest{
		id:          uuid.New(),
		requesterID: requesterID,
		description: trimmed,
		created:     now,
	}, nil
}

func Reconstruct(id, requesterID uuid.UUID, description string, created time.Time) *ItemRequest {
	return &ItemRequest{id: id, requesterID: requesterID, description: description, created: created}
}

func (r *ItemRequest) ID() uuid.UUID          { return r.id }
func (r *ItemRequest) RequesterID() uuid.UUID { return r.requesterID }
func (r *ItemRequest) Description() string    { return r.description }
func (r *ItemRequest) Created() time.Time     { return r.created }
