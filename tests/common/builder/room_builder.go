//go:build unit || e2e

package builder

import (
	"time"

	domroom "lumina-hotel-api/internal/domain/room"
	reqdto "lumina-hotel-api/internal/handler/dto/request"
	"lumina-hotel-api/internal/pkg/money"
	"lumina-hotel-api/internal/usecase/readmodel"
)

type RoomBuilder struct {
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

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		ID:          1,
		Slug:        "deluxe-king-suite",
		Name:        "Deluxe King Suite",
		Description: "A spacious suite with a king bed and panoramic city views.",
		Price:       money.FromCents(24900),
		SizeSqm:     45,
		Occupancy:   2,
		Images:      []string{"https://cdn.example.com/rooms/deluxe-king.jpg"},
		Highlights:  []string{"Panoramic city views", "King bed"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(r.Slug, r.Name, r.Description, r.Price, r.SizeSqm, r.Occupancy, r.Images, r.Highlights)
}

func (r *RoomBuilder) BuildReadModel() *readmodel.RoomRM {
	return &readmodel.RoomRM{
		ID:          r.ID,
		Slug:        r.Slug,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		SizeSqm:     r.SizeSqm,
		Occupancy:   r.Occupancy,
		Images:      r.Images,
		Highlights:  r.Highlights,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		SizeSqm:     r.SizeSqm,
		Occupancy:   r.Occupancy,
		Images:      r.Images,
		Highlights:  r.Highlights,
	}
}

func (r *RoomBuilder) BuildUpdateRequestDTO() reqdto.UpdateRoomRequest {
	name := r.Name
	description := r.Description
	price := r.Price
	sizeSqm := r.SizeSqm
	occupancy := r.Occupancy
	return reqdto.UpdateRoomRequest{
		Name:        &name,
		Description: &description,
		Price:       &price,
		SizeSqm:     &sizeSqm,
		Occupancy:   &occupancy,
		Images:      r.Images,
		Highlights:  r.Highlights,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithName(name string) *RoomBuilder {
	r.Name = name
	return r
}

func (r *RoomBuilder) WithDescription(description string) *RoomBuilder {
	r.Description = description
	return r
}

func (r *RoomBuilder) WithPrice(cents int64) *RoomBuilder {
	r.Price = money.FromCents(cents)
	return r
}

func (r *RoomBuilder) WithSizeSqm(sizeSqm int32) *RoomBuilder {
	r.SizeSqm = sizeSqm
	return r
}

func (r *RoomBuilder) WithOccupancy(occupancy int32) *RoomBuilder {
	r.Occupancy = occupancy
	return r
}

func (r *RoomBuilder) WithImages(images []string) *RoomBuilder {
	r.Images = images
	return r
}

func (r *RoomBuilder) WithHighlights(highlights []string) *RoomBuilder {
	r.Highlights = highlights
	return r
}
