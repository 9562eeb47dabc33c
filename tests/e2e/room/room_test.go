//go:build e2e

package room_test

import (
	"net/http"
	"strconv"
	"testing"

	"lumina-hotel-api/internal/handler/dto/request"
	"lumina-hotel-api/internal/pkg/money"
	"lumina-hotel-api/tests/common/authtest"
	"lumina-hotel-api/tests/common/builder"
	"lumina-hotel-api/tests/common/dbtest"
	"lumina-hotel-api/tests/common/httptest"
	"lumina-hotel-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	roomsURL      = "/api/v1/rooms"
	adminRoomsURL = "/api/v1/admin/rooms"
)

type roomSuite struct {
	e2e.SharedSuite
}

func TestRoomSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(roomSuite))
}

func (s *roomSuite) TestPublicRooms() {
	s.Run("list orders rooms by nightly rate", func() {
		t := s.T()
		dbtest.CreateTestRoom(t, s.DB, "ocean-view-suite", "Ocean View Suite", 39900)
		dbtest.CreateTestRoom(t, s.DB, "garden-room", "Garden Room", 18900)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var listed []map[string]any
		httptest.DecodeResponseBody(t, w.Body, &listed)
		require.Len(t, listed, 2)
		require.Equal(t, "garden-room", listed[0]["slug"])
		require.Equal(t, "189.00", listed[0]["price"])
		require.Equal(t, "ocean-view-suite", listed[1]["slug"])
	})

	s.Run("empty catalogue renders an empty array", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.JSONEq(t, "[]", w.Body.String())
	})

	s.Run("get by slug", func() {
		t := s.T()
		dbtest.CreateTestRoom(t, s.DB, "deluxe-king-suite", "Deluxe King Suite", 24900)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"/deluxe-king-suite", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got map[string]any
		httptest.DecodeResponseBody(t, w.Body, &got)
		require.Equal(t, "Deluxe King Suite", got["name"])
		require.Equal(t, "249.00", got["price"])
	})

	s.Run("unknown slug returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"/no-such-room", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *roomSuite) TestAdminRooms() {
	s.Run("create derives the slug from the name", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com")

		req := builder.NewRoomBuilder().WithName("Quantum Suite").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminRoomsURL, req, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created map[string]any
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, "quantum-suite", created["slug"])

		// The room is immediately visible on the public endpoint.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"/quantum-suite", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("colliding names get suffixed slugs", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com")

		req := builder.NewRoomBuilder().WithName("Quantum Suite").BuildCreateRequestDTO()
		for _, wantSlug := range []string{"quantum-suite", "quantum-suite-1", "quantum-suite-2"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminRoomsURL, req, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

			var created map[string]any
			httptest.DecodeResponseBody(t, w.Body, &created)
			require.Equal(t, wantSlug, created["slug"])
		}
	})

	s.Run("price update is reflected in the public listing", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "deluxe-king-suite", "Deluxe King Suite", 24900)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com")

		newPrice := money.FromCents(27900)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			adminRoomsURL+"/"+strconv.FormatInt(roomID, 10),
			request.UpdateRoomRequest{Price: &newPrice}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"/deluxe-king-suite", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var got map[string]any
		httptest.DecodeResponseBody(t, w.Body, &got)
		require.Equal(t, "279.00", got["price"])
	})

	s.Run("create requires authentication", func() {
		t := s.T()

		req := builder.NewRoomBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminRoomsURL, req, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
