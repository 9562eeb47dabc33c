// Package booking models a reservation of one room for a date range by a
// named customer, with a total price derived once at creation time.
//
// There is deliberately no availability invariant: overlapping bookings for
// the same room are accepted, matching the behavior this service has always
// had. Status transitions are driven by the admin surface, not by this package.
package booking

import (
	"errors"
	"strings"
	"time"

	"lumina-hotel-api/internal/pkg/money"
)

const (
	MinGuests    = 1
	MaxGuests    = 6
	MaxNotesLen  = 500
	minNameLen   = 2
	maxEmailLen  = 254
)

var (
	ErrInvalidCustomerName  = errors.New("customer name must be at least 2 characters")
	ErrInvalidCustomerEmail = errors.New("invalid customer email")
	ErrInvalidGuests        = errors.New("guests must be between 1 and 6")
	ErrNotesTooLong         = errors.New("notes must be at most 500 characters")
	ErrNegativePrice        = errors.New("total price cannot be negative")
)

// Customer is the contact block captured with every booking.
type Customer struct {
	name  string
	email string
	phone *string
}

func NewCustomer(name, email string, phone *string) (Customer, error) {
	name = strings.TrimSpace(name)
	if len(name) < minNameLen {
		return Customer{}, ErrInvalidCustomerName
	}
	email = strings.TrimSpace(email)
	if email == "" || len(email) > maxEmailLen || !strings.Contains(email[1:], "@") {
		return Customer{}, ErrInvalidCustomerEmail
	}
	return Customer{name: name, email: email, phone: phone}, nil
}

func (c Customer) Name() string   { return c.name }
func (c Customer) Email() string  { return c.email }
func (c Customer) Phone() *string { return c.phone }

type Booking struct {
	id            int64
	roomID        int64
	customer      Customer
	stay          StayPeriod
	guests        int32
	totalPrice    money.Money
	status        Status
	paymentStatus PaymentStatus
	notes         *string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking assembles a pending, unpaid booking. The total price must have
// been computed from the room's rate and the stay; it is stored as-is and
// never recomputed, so later room price changes do not rewrite history.
func NewBooking(roomID int64, customer Customer, stay StayPeriod, guests int32, totalPrice money.Money, notes *string) (*Booking, error) {
	if guests < MinGuests || guests > MaxGuests {
		return nil, ErrInvalidGuests
	}
	if notes != nil && len(*notes) > MaxNotesLen {
		return nil, ErrNotesTooLong
	}
	if totalPrice.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		roomID:        roomID,
		customer:      customer,
		stay:          stay,
		guests:        guests,
		totalPrice:    totalPrice,
		status:        StatusPending,
		paymentStatus: PaymentUnpaid,
		notes:         notes,
	}, nil
}

func ReconstructBooking(
	id, roomID int64,
	customer Customer,
	stay StayPeriod,
	guests int32,
	totalPrice money.Money,
	status Status,
	paymentStatus PaymentStatus,
	notes *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		roomID:        roomID,
		customer:      customer,
		stay:          stay,
		guests:        guests,
		totalPrice:    totalPrice,
		status:        status,
		paymentStatus: paymentStatus,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) ID() int64                    { return b.id }
func (b *Booking) RoomID() int64                { return b.roomID }
func (b *Booking) Customer() Customer           { return b.customer }
func (b *Booking) Stay() StayPeriod             { return b.stay }
func (b *Booking) Guests() int32                { return b.guests }
func (b *Booking) TotalPrice() money.Money      { return b.totalPrice }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Notes() *string               { return b.notes }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
