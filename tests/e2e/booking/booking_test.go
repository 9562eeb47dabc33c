//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"lumina-hotel-api/internal/handler/dto/request"
	"lumina-hotel-api/internal/handler/dto/response"
	"lumina-hotel-api/internal/pkg/money"
	"lumina-hotel-api/tests/common/authtest"
	"lumina-hotel-api/tests/common/dbtest"
	"lumina-hotel-api/tests/common/httptest"
	"lumina-hotel-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/v1/bookings"

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) createRoom(priceCents int64) int64 {
	return dbtest.CreateTestRoom(s.T(), s.DB, "deluxe-king-suite", "Deluxe King Suite", priceCents)
}

func twoNightRequest(roomID int64) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		RoomID:        roomID,
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		CheckIn:       time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 3, 3, 11, 0, 0, 0, time.UTC),
		Guests:        2,
	}
}

func (s *bookingSuite) TestCreateBooking() {
	s.Run("two-night stay is priced per started night", func() {
		t := s.T()
		roomID := s.createRoom(24900) // 249.00 per night

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, twoNightRequest(roomID), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual response.BookingResponse
		httptest.DecodeResponseBody(t, w.Body, &actual)

		expected := response.BookingResponse{
			RoomID:        roomID,
			CustomerName:  "Ada Lovelace",
			CustomerEmail: "ada@example.com",
			CheckIn:       time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC),
			CheckOut:      time.Date(2026, 3, 3, 11, 0, 0, 0, time.UTC),
			Guests:        2,
			TotalPrice:    money.FromCents(49800),
			Status:        "PENDING",
			PaymentStatus: "UNPAID",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "CreatedAt", "UpdatedAt", "Room"),
			cmp.Comparer(func(a, b money.Money) bool { return a.Cents() == b.Cents() }),
			cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) }),
		}
		if diff := cmp.Diff(expected, actual, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}

		require.NotNil(t, actual.Room)
		require.Equal(t, "deluxe-king-suite", actual.Room.Slug)
		require.Equal(t, "249.00", actual.Room.Price.String())
	})

	s.Run("identical payloads create independent bookings", func() {
		t := s.T()
		roomID := s.createRoom(24900)
		req := twoNightRequest(roomID)

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
		second := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		require.Equal(t, http.StatusCreated, second.Code, second.Body.String())

		var firstResp, secondResp map[string]any
		httptest.DecodeResponseBody(t, first.Body, &firstResp)
		httptest.DecodeResponseBody(t, second.Body, &secondResp)
		require.NotEqual(t, firstResp["id"], secondResp["id"])

		var count int64
		err := s.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM bookings").Scan(&count)
		require.NoError(t, err)
		require.EqualValues(t, 2, count)
	})

	s.Run("unknown room returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, twoNightRequest(99999), "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("check-out before check-in returns 400", func() {
		t := s.T()
		roomID := s.createRoom(24900)

		req := twoNightRequest(roomID)
		req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("too many guests returns 400", func() {
		t := s.T()
		roomID := s.createRoom(24900)

		req := twoNightRequest(roomID)
		req.Guests = 7
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestAdminBookingFlow() {
	s.Run("listing requires authentication", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/v1/admin/bookings", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("admin lists and confirms a booking", func() {
		t := s.T()
		roomID := s.createRoom(24900)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, twoNightRequest(roomID), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created map[string]any
		httptest.DecodeResponseBody(t, w.Body, &created)
		bookingID := int64(created["id"].(float64))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/v1/admin/bookings?status=PENDING", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var listed []map[string]any
		httptest.DecodeResponseBody(t, w.Body, &listed)
		require.Len(t, listed, 1)

		status := "CONFIRMED"
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("/api/v1/admin/bookings/%d", bookingID),
			request.UpdateBookingRequest{Status: &status}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var updated map[string]any
		httptest.DecodeResponseBody(t, w.Body, &updated)
		require.Equal(t, "CONFIRMED", updated["status"])

		// Confirmed bookings no longer match the PENDING filter.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/v1/admin/bookings?status=PENDING", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.DecodeResponseBody(t, w.Body, &listed)
		require.Empty(t, listed)
	})

	s.Run("admin deletes a booking", func() {
		t := s.T()
		roomID := s.createRoom(24900)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, twoNightRequest(roomID), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created map[string]any
		httptest.DecodeResponseBody(t, w.Body, &created)
		bookingID := int64(created["id"].(float64))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("/api/v1/admin/bookings/%d", bookingID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/v1/admin/bookings/%d", bookingID), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}
