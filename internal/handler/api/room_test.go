//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"lumina-hotel-api/internal/handler/api"
	resdto "lumina-hotel-api/internal/handler/dto/response"
	"lumina-hotel-api/internal/usecase"
	"lumina-hotel-api/internal/usecase/readmodel"
	"lumina-hotel-api/tests/common/builder"
	"lumina-hotel-api/tests/common/httptest"
	"lumina-hotel-api/tests/common/testutil"
	usecasemock "lumina-hotel-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockRoomUseCase
	handler     *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockRoomUseCase(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockUseCase)

	s.router.GET("/rooms", s.handler.List)
	s.router.GET("/rooms/:slug", s.handler.GetBySlug)
	s.router.GET("/admin/rooms", s.handler.ListAdmin)
	s.router.GET("/admin/rooms/:id", s.handler.Get)
	s.router.POST("/admin/rooms", s.handler.Create)
	s.router.PATCH("/admin/rooms/:id", s.handler.Update)
	s.router.DELETE("/admin/rooms/:id", s.handler.Delete)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestList() {
	s.Run("success: renders prices as decimal strings", func() {
		rm := builder.NewRoomBuilder().BuildReadModel()
		s.mockUseCase.EXPECT().ListRooms(gomock.Any()).
			Return([]*readmodel.RoomRM{rm}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		var response []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("249.00", response[0]["price"])
		s.Equal("deluxe-king-suite", response[0]["slug"])
	})

	s.Run("success: empty catalog renders empty array", func() {
		s.mockUseCase.EXPECT().ListRooms(gomock.Any()).
			Return([]*readmodel.RoomRM{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 500 on database failure", func() {
		s.mockUseCase.EXPECT().ListRooms(gomock.Any()).
			Return(nil, errors.New("database error"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *RoomHandlerTestSuite) TestGetBySlug() {
	s.Run("success", func() {
		rm := builder.NewRoomBuilder().BuildReadModel()
		s.mockUseCase.EXPECT().GetRoomBySlug(gomock.Any(), "deluxe-king-suite").Return(rm, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/deluxe-king-suite", nil, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(rm.Name, response.Name)
	})

	s.Run("error: 404 for unknown slug", func() {
		s.mockUseCase.EXPECT().GetRoomBySlug(gomock.Any(), "ghost-wing").
			Return(nil, usecase.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/ghost-wing", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

func (s *RoomHandlerTestSuite) TestCreate() {
	url := "/admin/rooms"
	reqBody := builder.NewRoomBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created", func() {
		rm := builder.NewRoomBuilder().BuildReadModel()
		s.mockUseCase.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).Return(rm, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(rm.Slug, response.Slug)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "too short name", mutate: testutil.Field("name", "Ze")},
			{name: "too short description", mutate: testutil.Field("description", "short")},
			{name: "missing price", mutate: testutil.Field("price", nil)},
			{name: "zero size", mutate: testutil.Field("sizeSqm", 0)},
			{name: "empty images", mutate: testutil.Field("images", []string{})},
			{name: "missing highlights", mutate: testutil.Field("highlights", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *RoomHandlerTestSuite) TestUpdate() {
	s.Run("success: returns updated room", func() {
		price := "279.00"
		body := map[string]any{"price": price}
		rm := builder.NewRoomBuilder().WithPrice(27900).BuildReadModel()

		s.mockUseCase.EXPECT().UpdateRoom(gomock.Any(), int64(1), gomock.Any()).Return(rm, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/rooms/1", body, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("279.00", response["price"])
	})

	s.Run("error: 404 for unknown room", func() {
		body := map[string]any{"name": "New Wing Suite"}
		s.mockUseCase.EXPECT().UpdateRoom(gomock.Any(), int64(42), gomock.Any()).
			Return(nil, usecase.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/rooms/42", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

func (s *RoomHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204", func() {
		s.mockUseCase.EXPECT().DeleteRoom(gomock.Any(), int64(1)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/rooms/1", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
