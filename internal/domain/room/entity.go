// Package room models the bookable inventory of the hotel. A room's nightly
// price feeds the booking pricing path; descriptive fields are free to change
// after bookings reference it, the price snapshot is not recomputed.
package room

import (
	"errors"
	"strings"
	"time"

	"lumina-hotel-api/internal/pkg/money"
)

var (
	ErrInvalidName        = errors.New("room name must be at least 3 characters")
	ErrInvalidDescription = errors.New("room description must be at least 10 characters")
	ErrInvalidPrice       = errors.New("room price must be positive")
	ErrInvalidSize        = errors.New("room size must be positive")
	ErrInvalidOccupancy   = errors.New("room occupancy must be positive")
	ErrNoImages           = errors.New("room needs at least one image")
	ErrNoHighlights       = errors.New("room needs at least one highlight")
)

type Room struct {
	id          int64
	slug        string
	name        string
	description string
	price       money.Money
	sizeSqm     int32
	occupancy   int32
	images      []string
	highlights  []string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(slug, name, description string, price money.Money, sizeSqm, occupancy int32, images, highlights []string) (*Room, error) {
	if len(strings.TrimSpace(name)) < 3 {
		return nil, ErrInvalidName
	}
	if len(strings.TrimSpace(description)) < 10 {
		return nil, ErrInvalidDescription
	}
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if sizeSqm <= 0 {
		return nil, ErrInvalidSize
	}
	if occupancy <= 0 {
		return nil, ErrInvalidOccupancy
	}
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if len(highlights) == 0 {
		return nil, ErrNoHighlights
	}

	return &Room{
		slug:        slug,
		name:        name,
		description: description,
		price:       price,
		sizeSqm:     sizeSqm,
		occupancy:   occupancy,
		images:      images,
		highlights:  highlights,
	}, nil
}

func ReconstructRoom(id int64, slug, name, description string, price money.Money, sizeSqm, occupancy int32, images, highlights []string, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:          id,
		slug:        slug,
		name:        name,
		description: description,
		price:       price,
		sizeSqm:     sizeSqm,
		occupancy:   occupancy,
		images:      images,
		highlights:  highlights,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Room) ID() int64            { return r.id }
func (r *Room) Slug() string         { return r.slug }
func (r *Room) Name() string         { return r.name }
func (r *Room) Description() string  { return r.description }
func (r *Room) Price() money.Money   { return r.price }
func (r *Room) SizeSqm() int32       { return r.sizeSqm }
func (r *Room) Occupancy() int32     { return r.occupancy }
func (r *Room) Images() []string     { return r.images }
func (r *Room) Highlights() []string { return r.highlights }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
