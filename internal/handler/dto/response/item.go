package response

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Available   bool                    `json:"available"`
	RequestID   *uuid.UUID              `json:"requestId,omitempty"`
	LastBooking *BookingSummaryResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingSummaryResponse `json:"nextBooking,omitempty"`
	Comments    []CommentResponse       `json:"comments"`
}

type BookingSummaryResponse struct {
	ID       uuid.UUID      `json:"id"`
	BookerID uuid.UUID      `json:"bookerId"`
	Start    time.Time      `json:"start"`
	End      time.Time      `json:"end"`
	Status   booking.Status `json:"status"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromItemView(v *queries.ItemView) ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, v)
	if resp.Comments == nil {
		resp.Comments = []CommentResponse{}
	}
	return resp
}

func FromItemViews(vs []queries.ItemView) []ItemResponse {
	resps := make([]ItemResponse, 0, len(vs))
	for i := range vs {
		resps = append(resps, FromItemView(&vs[i]))
	}
	return resps
}

func FromCommentView(v *queries.CommentView) CommentResponse {
	var resp CommentResponse
	_ = copier.Copy(&resp, v)
	return resp
}

// command results carry the entity, not a read model
func FromItem(i *item.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID(),
		Name:        i.Name(),
		Description: i.Description(),
		Available:   i.Available(),
		RequestID:   i.RequestID(),
		Comments:    []CommentResponse{},
	}
}
