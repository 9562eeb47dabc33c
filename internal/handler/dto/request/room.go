package request

import (
	"lumina-hotel-api/internal/pkg/money"
	"lumina-hotel-api/internal/usecase"
)

type CreateRoomRequest struct {
	Name        string      `json:"name" binding:"required,min=3"`
	Description string      `json:"description" binding:"required,min=10"`
	Price       money.Money `json:"price" binding:"required"`
	SizeSqm     int32       `json:"sizeSqm" binding:"required,gt=0"`
	Occupancy   int32       `json:"occupancy" binding:"required,gt=0"`
	Images      []string    `json:"images" binding:"required,min=1"`
	Highlights  []string    `json:"highlights" binding:"required,min=1"`
}

func (r CreateRoomRequest) ToParams() usecase.CreateRoomParams {
	return usecase.CreateRoomParams{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		SizeSqm:     r.SizeSqm,
		Occupancy:   r.Occupancy,
		Images:      r.Images,
		Highlights:  r.Highlights,
	}
}

type UpdateRoomRequest struct {
	Name        *string      `json:"name,omitempty" binding:"omitempty,min=3"`
	Description *string      `json:"description,omitempty" binding:"omitempty,min=10"`
	Price       *money.Money `json:"price,omitempty"`
	SizeSqm     *int32       `json:"sizeSqm,omitempty" binding:"omitempty,gt=0"`
	Occupancy   *int32       `json:"occupancy,omitempty" binding:"omitempty,gt=0"`
	Images      []string     `json:"images,omitempty"`
	Highlights  []string     `json:"highlights,omitempty"`
}

func (r UpdateRoomRequest) ToParams() usecase.UpdateRoomParams {
	return usecase.UpdateRoomParams{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		SizeSqm:     r.SizeSqm,
		Occupancy:   r.Occupancy,
		Images:      r.Images,
		Highlights:  r.Highlights,
	}
}
