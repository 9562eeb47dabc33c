package response

import (
	"time"

	"lumina-hotel-api/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type AmenityResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Hours       *string   `json:"hours,omitempty"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromAmenityRM(rm *readmodel.AmenityRM) *AmenityResponse {
	var resp AmenityResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromAmenityList(rms []*readmodel.AmenityRM) []*AmenityResponse {
	result := make([]*AmenityResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromAmenityRM(rm))
	}
	return result
}

type DiningVenueResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Floor       *int32    `json:"floor,omitempty"`
	Hours       string    `json:"hours"`
	Description string    `json:"description"`
	MenuURL     *string   `json:"menuUrl,omitempty"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromDiningVenueRM(rm *readmodel.DiningVenueRM) *DiningVenueResponse {
	var resp DiningVenueResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromDiningVenueList(rms []*readmodel.DiningVenueRM) []*DiningVenueResponse {
	result := make([]*DiningVenueResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromDiningVenueRM(rm))
	}
	return result
}

type GalleryItemResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"imageUrl"`
	Caption   *string   `json:"caption,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromGalleryItemRM(rm *readmodel.GalleryItemRM) *GalleryItemResponse {
	var resp GalleryItemResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromGalleryItemList(rms []*readmodel.GalleryItemRM) []*GalleryItemResponse {
	result := make([]*GalleryItemResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromGalleryItemRM(rm))
	}
	return result
}

type TestimonialResponse struct {
	ID        int64     `json:"id"`
	GuestName string    `json:"guestName"`
	Content   string    `json:"content"`
	Rating    int32     `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromTestimonialRM(rm *readmodel.TestimonialRM) *TestimonialResponse {
	var resp TestimonialResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromTestimonialList(rms []*readmodel.TestimonialRM) []*TestimonialResponse {
	result := make([]*TestimonialResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromTestimonialRM(rm))
	}
	return result
}

type EventResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromEventRM(rm *readmodel.EventRM) *EventResponse {
	var resp EventResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromEventList(rms []*readmodel.EventRM) []*EventResponse {
	result := make([]*EventResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromEventRM(rm))
	}
	return result
}
