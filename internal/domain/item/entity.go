package item

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("item name cannot be empty")
	ErrEmptyDescription = errors.New("item description cannot be empty")
)

type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	available   bool
	requestID   *uuid.UUID
}

func NewItem(ownerID uuid.UUID, name, description string, available bool) (*Item, error) {
	i := &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		available:   available,
	}
	if err := i.validate(); err != nil {
		return nil, err
	}
	return i, nil
}

func Reconstruct(id, ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
	}
}

// LinkRequest marks the item as an answer to an open item request.
func (i *Item) LinkRequest(requestID uuid.UUID) {
	i.requestID = &requestID
}

// ApplyPatch updates only the provided fields, mirroring the PATCH semantics
// of the item endpoint.
func (i *Item) ApplyPatch(name, description *string, available *bool) error {
	if name != nil {
		i.name = strings.TrimSpace(*name)
	}
	if description != nil {
		i.description = strings.TrimSpace(*description)
	}
	if available != nil {
		i.available = *available
	}
	return i.validate()
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

func (i *Item) validate() error {
	if i.name == "" {
		return ErrEmptyName
	}
	if i.description == "" {
		return ErrEmptyDescription
	}
	return nil
}

func (i *Item) ID() uuid.UUID       { return i.id }
func (i *Item) OwnerID() uuid.UUID  { return i.ownerID }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }

func (i *Item) RequestID() *uuid.UUID { return i.requestID }
