package booking

import (
	"lumina-hotel-api/internal/pkg/money"
)

// PriceCalculator derives the total price of a stay from the room's current
// nightly rate. Deterministic: depends only on its inputs, never on the clock.
type PriceCalculator interface {
	TotalPrice(nightlyRate money.Money, stay StayPeriod) money.Money
}

// NightlyRateCalculator bills nightly rate × nights, exact to the cent.
type NightlyRateCalculator struct{}

func NewNightlyRateCalculator() *NightlyRateCalculator {
	return &NightlyRateCalculator{}
}

func (c *NightlyRateCalculator) TotalPrice(nightlyRate money.Money, stay StayPeriod) money.Money {
	return nightlyRate.MulInt(stay.Nights())
}
