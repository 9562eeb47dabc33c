package booking

import (
	"errors"
	"time"
)

var ErrCheckOutNotAfterCheckIn = errors.New("check-out must be after check-in")

const nightLength = 24 * time.Hour

// StayPeriod is the half-open [checkIn, checkOut) date range of a booking.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	if !checkOut.After(checkIn) {
		return StayPeriod{}, ErrCheckOutNotAfterCheckIn
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func (s StayPeriod) CheckIn() time.Time {
	return s.checkIn
}

func (s StayPeriod) CheckOut() time.Time {
	return s.checkOut
}

func (s StayPeriod) Duration() time.Duration {
	return s.checkOut.Sub(s.checkIn)
}

// Nights is the billing unit: the stay length in whole days, partial days
// rounded up. A guest leaving any time past check-in on day N pays for night N.
func (s StayPeriod) Nights() int64 {
	d := s.Duration()
	nights := int64(d / nightLength)
	if d%nightLength != 0 {
		nights++
	}
	return nights
}
