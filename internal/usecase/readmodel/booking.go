package readmodel

import (
	"time"

	"lumina-hotel-api/internal/pkg/money"
)

type BookingRM struct {
	ID            int64
	RoomID        int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int32
	TotalPrice    money.Money
	Status        string
	PaymentStatus string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Room          *RoomRM
}
