package request

import (
	"time"

	"lumina-hotel-api/internal/usecase"
)

type CreateAmenityRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Hours       *string  `json:"hours,omitempty"`
	Images      []string `json:"images" binding:"required"`
}

func (r CreateAmenityRequest) ToParams() usecase.AmenityParams {
	return usecase.AmenityParams{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Hours:       r.Hours,
		Images:      r.Images,
	}
}

type UpdateAmenityRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Hours       *string  `json:"hours,omitempty"`
	Images      []string `json:"images,omitempty"`
}

func (r UpdateAmenityRequest) ToPatch() usecase.AmenityPatch {
	return usecase.AmenityPatch{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Hours:       r.Hours,
		Images:      r.Images,
	}
}

type CreateDiningVenueRequest struct {
	Name        string   `json:"name" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Floor       *int32   `json:"floor,omitempty"`
	Hours       string   `json:"hours" binding:"required"`
	Description string   `json:"description" binding:"required"`
	MenuURL     *string  `json:"menuUrl,omitempty"`
	Images      []string `json:"images" binding:"required"`
}

func (r CreateDiningVenueRequest) ToParams() usecase.DiningVenueParams {
	return usecase.DiningVenueParams{
		Name:        r.Name,
		Type:        r.Type,
		Floor:       r.Floor,
		Hours:       r.Hours,
		Description: r.Description,
		MenuURL:     r.MenuURL,
		Images:      r.Images,
	}
}

type UpdateDiningVenueRequest struct {
	Name        *string  `json:"name,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Floor       *int32   `json:"floor,omitempty"`
	Hours       *string  `json:"hours,omitempty"`
	Description *string  `json:"description,omitempty"`
	MenuURL     *string  `json:"menuUrl,omitempty"`
	Images      []string `json:"images,omitempty"`
}

func (r UpdateDiningVenueRequest) ToPatch() usecase.DiningVenuePatch {
	return usecase.DiningVenuePatch{
		Name:        r.Name,
		Type:        r.Type,
		Floor:       r.Floor,
		Hours:       r.Hours,
		Description: r.Description,
		MenuURL:     r.MenuURL,
		Images:      r.Images,
	}
}

type CreateGalleryItemRequest struct {
	Title    string  `json:"title" binding:"required"`
	Category string  `json:"category" binding:"required"`
	ImageURL string  `json:"imageUrl" binding:"required"`
	Caption  *string `json:"caption,omitempty"`
}

func (r CreateGalleryItemRequest) ToParams() usecase.GalleryItemParams {
	return usecase.GalleryItemParams{
		Title:    r.Title,
		Category: r.Category,
		ImageURL: r.ImageURL,
		Caption:  r.Caption,
	}
}

type UpdateGalleryItemRequest struct {
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Caption  *string `json:"caption,omitempty"`
}

func (r UpdateGalleryItemRequest) ToPatch() usecase.GalleryItemPatch {
	return usecase.GalleryItemPatch{
		Title:    r.Title,
		Category: r.Category,
		ImageURL: r.ImageURL,
		Caption:  r.Caption,
	}
}

type CreateTestimonialRequest struct {
	GuestName string `json:"guestName" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Rating    int32  `json:"rating" binding:"required,min=1,max=5"`
}

func (r CreateTestimonialRequest) ToParams() usecase.TestimonialParams {
	return usecase.TestimonialParams{
		GuestName: r.GuestName,
		Content:   r.Content,
		Rating:    r.Rating,
	}
}

type UpdateTestimonialRequest struct {
	GuestName *string `json:"guestName,omitempty"`
	Content   *string `json:"content,omitempty"`
	Rating    *int32  `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
}

func (r UpdateTestimonialRequest) ToPatch() usecase.TestimonialPatch {
	return usecase.TestimonialPatch{
		GuestName: r.GuestName,
		Content:   r.Content,
		Rating:    r.Rating,
	}
}

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Venue       string    `json:"venue" binding:"required"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
}

func (r CreateEventRequest) ToParams() usecase.EventParams {
	return usecase.EventParams{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Venue:       r.Venue,
		ImageURL:    r.ImageURL,
	}
}

type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Venue       *string    `json:"venue,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
}

func (r UpdateEventRequest) ToPatch() usecase.EventPatch {
	return usecase.EventPatch{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Venue:       r.Venue,
		ImageURL:    r.ImageURL,
	}
}
