package response

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID     uuid.UUID       `json:"id"`
	Start  time.Time       `json:"start"`
	End    time.Time       `json:"end"`
	Status booking.Status  `json:"status"`
	Item   ItemRefResponse `json:"item"`
	Booker UserRefResponse `json:"booker"`
}

type ItemRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type UserRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	return resp
}

func FromBookingViews(vs []queries.BookingView) []BookingResponse {
	resps := make([]BookingResponse, 0, len(vs))
	for i := range vs {
		resps = append(resps, FromBookingView(&vs[i]))
	}
	return resps
}
