package response

import (
	"shareit/internal/domain/user"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func FromUserView(v *queries.UserView) UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, v)
	return resp
}

func FromUserViews(vs []queries.UserView) []UserResponse {
	resps := make([]UserResponse, 0, len(vs))
	for i := range vs {
		resps = append(resps, FromUserView(&vs[i]))
	}
	return resps
}

func FromUser(u *user.User) UserResponse {
	return UserResponse{ID: u.ID(), Name: u.Name(), Email: u.Email()}
}
