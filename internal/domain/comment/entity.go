package comment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyText = errors.New("comment text cannot be empty")

type Comment struct {
	id       uuid.UUID
	itemID   uuid.UUID
	authorID uuid.UUID
	text     string
	created  time.Time
}

func NewComment(itemID, authorID uuid.UUID, text string, now time.Time) (*Comment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyText
	}
	return &Comment{
		id:       uuid.New(),
		itemID:   itemID,
		authorID: authorID,
		text:     trimmed,
		created:  now,
	}, nil
}

func Reconstruct(id, itemID, authorID uuid.UUID, text string, created time.Time) *Comment {
	return &Comment{id: id, itemID: itemID, authorID: authorID, text: text, created: created}
}

func (c *Comment) ID() uuid.UUID       { return c.id }
func (c *Comment) ItemID() uuid.UUID   { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID { return c.authorID }
func (c *Comment) Text() string        { return c.text }
func (c *Comment) Created() time.Time  { return c.created }
