package response

import (
	"time"

	"lumina-hotel-api/internal/pkg/money"
	"lumina-hotel-api/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID          int64       `json:"id"`
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Money `json:"price"`
	SizeSqm     int32       `json:"sizeSqm"`
	Occupancy   int32       `json:"occupancy"`
	Images      []string    `json:"images"`
	Highlights  []string    `json:"highlights"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func FromRoomRM(rm *readmodel.RoomRM) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromRoomList(rms []*readmodel.RoomRM) []*RoomResponse {
	result := make([]*RoomResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromRoomRM(rm))
	}
	return result
}
