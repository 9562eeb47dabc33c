package response

import (
	"time"

	"lumina-hotel-api/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromAuthorizedUserRM(rm *readmodel.AuthorizedUserRM) UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, rm)
	return resp
}
