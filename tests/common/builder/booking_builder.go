//go:build unit || e2e

package builder

import (
	"time"

	dombooking "lumina-hotel-api/internal/domain/booking"
	reqdto "lumina-hotel-api/internal/handler/dto/request"
	"lumina-hotel-api/internal/pkg/money"
	"lumina-hotel-api/internal/usecase"
	"lumina-hotel-api/internal/usecase/readmodel"
)

type BookingBuilder struct {
	ID            int64
	RoomID        int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int32
	TotalPrice    money.Money
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:            1,
		RoomID:        1,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		CheckIn:       time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 3, 3, 11, 0, 0, 0, time.UTC),
		Guests:        2,
		TotalPrice:    money.FromCents(49800), // 249.00 x 2 nights
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	customer, err := dombooking.NewCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		return nil, err
	}
	stay, err := dombooking.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.RoomID, customer, stay, b.Guests, b.TotalPrice, b.Notes)
}

func (b *BookingBuilder) BuildReadModel() *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:            b.ID,
		RoomID:        b.RoomID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Guests:        b.Guests,
		TotalPrice:    b.TotalPrice,
		Status:        dombooking.StatusPending.String(),
		PaymentStatus: dombooking.PaymentUnpaid.String(),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:        b.RoomID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Guests:        b.Guests,
		Notes:         b.Notes,
	}
}

func (b *BookingBuilder) BuildCreateParams() usecase.CreateBookingParams {
	return b.BuildCreateRequestDTO().ToParams()
}

// Fluent builder methods
func (b *BookingBuilder) WithRoomID(roomID int64) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithCustomerName(name string) *BookingBuilder {
	b.CustomerName = name
	return b
}

func (b *BookingBuilder) WithCustomerEmail(email string) *BookingBuilder {
	b.CustomerEmail = email
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithGuests(guests int32) *BookingBuilder {
	b.Guests = guests
	return b
}

func (b *BookingBuilder) WithTotalPrice(cents int64) *BookingBuilder {
	b.TotalPrice = money.FromCents(cents)
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = &notes
	return b
}
