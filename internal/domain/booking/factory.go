package booking

import (
	"lumina-hotel-api/internal/domain/room"
)

// Factory builds bookings against a room snapshot, pricing the stay with the
// room's rate at creation time.
type Factory struct {
	priceCalculator PriceCalculator
}

func NewFactory(priceCalculator PriceCalculator) *Factory {
	return &Factory{priceCalculator: priceCalculator}
}

func (f *Factory) CreateBooking(
	roomEntity *room.Room,
	customer Customer,
	stay StayPeriod,
	guests int32,
	notes *string,
) (*Booking, error) {
	totalPrice := f.priceCalculator.TotalPrice(roomEntity.Price(), stay)
	if totalPrice.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	return NewBooking(roomEntity.ID(), customer, stay, guests, totalPrice, notes)
}
