package readmodel

import (
	"time"

	"lumina-hotel-api/internal/pkg/money"
)

// RoomRM is the read-side shape of a room, also embedded in booking views as
// the snapshot the price was computed against.
type RoomRM struct {
	ID          int64
	Slug        string
	Name        string
	Description string
	Price       money.Money
	SizeSqm     int32
	Occupancy   int32
	Images      []string
	Highlights  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
