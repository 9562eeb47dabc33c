//go:build unit

package booking_test

import (
	"testing"
	"time"

	"lumina-hotel-api/internal/domain/booking"
	"lumina-hotel-api/internal/pkg/money"
	"lumina-hotel-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStay(t *testing.T, checkIn, checkOut time.Time) booking.StayPeriod {
	t.Helper()
	stay, err := booking.NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func TestNightlyRateCalculator(t *testing.T) {
	calc := booking.NewNightlyRateCalculator()

	cases := []struct {
		name      string
		rateCents int64
		checkIn   time.Time
		checkOut  time.Time
		want      string
	}{
		{
			name:      "two full nights",
			rateCents: 24900,
			checkIn:   time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC),
			checkOut:  time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC),
			want:      "498.00",
		},
		{
			name:      "partial second day still bills two nights",
			rateCents: 24900,
			checkIn:   time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC),
			checkOut:  time.Date(2026, 3, 3, 11, 0, 0, 0, time.UTC),
			want:      "498.00",
		},
		{
			name:      "single night",
			rateCents: 24900,
			checkIn:   time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC),
			checkOut:  time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
			want:      "249.00",
		},
		{
			name:      "odd rate stays exact over a week",
			rateCents: 19999,
			checkIn:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			checkOut:  time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC),
			want:      "1399.93",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stay := mustStay(t, tc.checkIn, tc.checkOut)
			total := calc.TotalPrice(money.FromCents(tc.rateCents), stay)
			assert.Equal(t, tc.want, total.String())
		})
	}
}

func TestFactoryCreateBooking(t *testing.T) {
	factory := booking.NewFactory(booking.NewNightlyRateCalculator())

	t.Run("prices the stay with the room rate", func(t *testing.T) {
		roomEntity, err := builder.NewRoomBuilder().WithPrice(24900).BuildDomain()
		require.NoError(t, err)

		customer, err := booking.NewCustomer("Ada Lovelace", "ada@example.com", nil)
		require.NoError(t, err)
		stay := mustStay(t,
			time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 3, 11, 0, 0, 0, time.UTC),
		)

		created, err := factory.CreateBooking(roomEntity, customer, stay, 2, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(49800), created.TotalPrice().Cents())
		assert.Equal(t, booking.StatusPending, created.Status())
		assert.Equal(t, booking.PaymentUnpaid, created.PaymentStatus())
	})

	t.Run("propagates guest validation", func(t *testing.T) {
		roomEntity, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		customer, err := booking.NewCustomer("Ada Lovelace", "ada@example.com", nil)
		require.NoError(t, err)
		stay := mustStay(t,
			time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
		)

		_, err = factory.CreateBooking(roomEntity, customer, stay, 0, nil)
		require.ErrorIs(t, err, booking.ErrInvalidGuests)
	})
}
