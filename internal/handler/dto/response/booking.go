package response

import (
	"time"

	"lumina-hotel-api/internal/pkg/money"
	"lumina-hotel-api/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            int64         `json:"id"`
	RoomID        int64         `json:"roomId"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	CustomerPhone *string       `json:"customerPhone,omitempty"`
	CheckIn       time.Time     `json:"checkIn"`
	CheckOut      time.Time     `json:"checkOut"`
	Guests        int32         `json:"guests"`
	TotalPrice    money.Money   `json:"totalPrice"`
	Status        string        `json:"status"`
	PaymentStatus string        `json:"paymentStatus"`
	Notes         *string       `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	Room          *RoomResponse `json:"room,omitempty"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	if rm.Room != nil {
		resp.Room = FromRoomRM(rm.Room)
	}
	return &resp
}

func FromBookingList(rms []*readmodel.BookingRM) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromBookingRM(rm))
	}
	return result
}
