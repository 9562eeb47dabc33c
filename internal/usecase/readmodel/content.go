package readmodel

import "time"

type AmenityRM struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Hours       *string
	Images      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DiningVenueRM struct {
	ID          int64
	Name        string
	Type        string
	Floor       *int32
	Hours       string
	Description string
	MenuURL     *string
	Images      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type GalleryItemRM struct {
	ID        int64
	Title     string
	Category  string
	ImageURL  string
	Caption   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TestimonialRM struct {
	ID        int64
	GuestName string
	Content   string
	Rating    int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventRM struct {
	ID          int64
	Title       string
	Description string
	Date        time.Time
	Venue       string
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
