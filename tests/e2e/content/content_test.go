//go:build e2e

package content_test

import (
	"net/http"
	"testing"
	"time"

	"lumina-hotel-api/internal/handler/dto/request"
	"lumina-hotel-api/tests/common/authtest"
	"lumina-hotel-api/tests/common/httptest"
	"lumina-hotel-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type contentSuite struct {
	e2e.SharedSuite
}

func TestContentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(contentSuite))
}

func (s *contentSuite) TestHealth() {
	s.Run("reports status with a timestamp", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]string
		httptest.DecodeResponseBody(t, w.Body, &body)
		require.Equal(t, "ok", body["status"])
		_, err := time.Parse(time.RFC3339, body["timestamp"])
		require.NoError(t, err, "timestamp should be RFC3339")
	})
}

func (s *contentSuite) TestEvents() {
	s.Run("events are not exposed publicly", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/v1/events", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("admin listing requires authentication", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/v1/admin/events", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("admin lists events ordered by date", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com")

		later := request.CreateEventRequest{
			Title:       "Jazz Evening",
			Description: "Live trio in the lobby bar",
			Date:        time.Date(2026, 9, 20, 19, 0, 0, 0, time.UTC),
			Venue:       "Lobby Bar",
		}
		earlier := request.CreateEventRequest{
			Title:       "Wine Tasting",
			Description: "Regional whites with the sommelier",
			Date:        time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC),
			Venue:       "Cellar",
		}
		for _, req := range []request.CreateEventRequest{later, earlier} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/v1/admin/events", req, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/v1/admin/events", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var listed []map[string]any
		httptest.DecodeResponseBody(t, w.Body, &listed)
		require.Len(t, listed, 2)
		require.Equal(t, "Wine Tasting", listed[0]["title"])
		require.Equal(t, "Jazz Evening", listed[1]["title"])
	})
}

func (s *contentSuite) TestAdminContentListings() {
	s.Run("admin list endpoints require authentication", func() {
		t := s.T()

		for _, path := range []string{
			"/api/v1/admin/amenities",
			"/api/v1/admin/gallery",
			"/api/v1/admin/testimonials",
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, path)
		}
	})

	s.Run("admin sees every amenity regardless of category", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com")

		for _, req := range []request.CreateAmenityRequest{
			{Name: "Infinity Pool", Description: "Rooftop pool with skyline views", Category: "WELLNESS", Images: []string{"https://cdn.example.com/pool.jpg"}},
			{Name: "Business Lounge", Description: "Meeting rooms and workstations", Category: "BUSINESS", Images: []string{"https://cdn.example.com/lounge.jpg"}},
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/v1/admin/amenities", req, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/v1/admin/amenities", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var listed []map[string]any
		httptest.DecodeResponseBody(t, w.Body, &listed)
		require.Len(t, listed, 2)

		// The public listing still narrows by category.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/v1/amenities?category=WELLNESS", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.DecodeResponseBody(t, w.Body, &listed)
		require.Len(t, listed, 1)
		require.Equal(t, "Infinity Pool", listed[0]["name"])
	})
}

func (s *contentSuite) TestGalleryLimit() {
	s.Run("limit bounds the public listing", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com")

		for _, item := range []request.CreateGalleryItemRequest{
			{Title: "Sunset Terrace", Category: "HOTEL", ImageURL: "https://cdn.example.com/terrace.jpg"},
			{Title: "Grand Lobby", Category: "HOTEL", ImageURL: "https://cdn.example.com/lobby.jpg"},
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/v1/admin/gallery", item, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/v1/gallery?limit=1", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var listed []map[string]any
		httptest.DecodeResponseBody(t, w.Body, &listed)
		require.Len(t, listed, 1)
	})

	s.Run("out-of-range limit is rejected", func() {
		t := s.T()

		for _, q := range []string{"0", "-1", "101", "abc"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/v1/gallery?limit="+q, nil, "")
			require.Equal(t, http.StatusBadRequest, w.Code, "limit="+q)
		}
	})
}
