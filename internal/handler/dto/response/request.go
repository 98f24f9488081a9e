package response

import (
	"time"

	"shareit/internal/domain/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RequestResponse struct {
	ID          uuid.UUID      `json:"id"`
	RequesterID uuid.UUID      `json:"requesterId"`
	Description string         `json:"description"`
	Created     time.Time      `json:"created"`
	Items       []ItemResponse `json:"items"`
}

func FromRequestView(v *queries.RequestView) RequestResponse {
	var resp RequestResponse
	_ = copier.Copy(&resp, v)
	if resp.Items == nil {
		resp.Items = []ItemResponse{}
	}
	return resp
}

func FromRequestViews(vs []queries.RequestView) []RequestResponse {
	resps := make([]RequestResponse, 0, len(vs))
	for i := range vs {
		resps = append(resps, FromRequestView(&vs[i]))
	}
	return resps
}

// command results carry the entity, not a read model
func FromRequest(r *request.ItemRequest) RequestResponse {
	return RequestResponse{
		ID:          r.ID(),
		RequesterID: r.RequesterID(),
		Description: r.Description(),
		Created:     r.Created(),
		Items:       []ItemResponse{},
	}
}
