package request

import (
	"time"

	"lumina-hotel-api/internal/usecase"
)

type CreateBookingRequest struct {
	RoomID        int64     `json:"roomId" binding:"required,gt=0"`
	CustomerName  string    `json:"customerName" binding:"required,min=2"`
	CustomerEmail string    `json:"customerEmail" binding:"required,email"`
	CustomerPhone *string   `json:"customerPhone,omitempty"`
	CheckIn       time.Time `json:"checkIn" binding:"required"`
	CheckOut      time.Time `json:"checkOut" binding:"required"`
	Guests        int32     `json:"guests" binding:"required,min=1,max=6"`
	Notes         *string   `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r CreateBookingRequest) ToParams() usecase.CreateBookingParams {
	return usecase.CreateBookingParams{
		RoomID:        r.RoomID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		Guests:        r.Guests,
		Notes:         r.Notes,
	}
}

type UpdateBookingRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
	Notes         *string `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r UpdateBookingRequest) ToParams() usecase.UpdateBookingParams {
	return usecase.UpdateBookingParams{
		Status:        r.Status,
		PaymentStatus: r.PaymentStatus,
		Notes:         r.Notes,
	}
}
