//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"lumina-hotel-api/internal/handler/api"
	resdto "lumina-hotel-api/internal/handler/dto/response"
	"lumina-hotel-api/internal/usecase"
	"lumina-hotel-api/tests/common/builder"
	"lumina-hotel-api/tests/common/httptest"
	"lumina-hotel-api/tests/common/testutil"
	usecasemock "lumina-hotel-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase)

	s.router.POST("/admin/auth/login", s.handler.Login)
	s.router.POST("/admin/auth/seed-admin", s.handler.Seed)
	s.router.POST("/admin/auth/register", s.handler.Register)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/admin/auth/login"
	reqBody := builder.NewAuthBuilder().BuildLoginDTO()
	returnUser := builder.NewAuthBuilder().BuildReadModel()

	s.Run("success: returns 200 OK with token and user", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&usecase.LoginResult{Token: "test-jwt-token", User: returnUser}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.Token)
		s.Equal(returnUser.Email, response.User.Email)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "empty email", mutate: testutil.Field("email", "")},
			{name: "malformed email", mutate: testutil.Field("email", "invalid-email")},
			{name: "missing password", mutate: testutil.Field("password", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				usecaseError:   usecase.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestSeed() {
	url := "/admin/auth/seed-admin"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()
	returnUser := builder.NewAuthBuilder().BuildReadModel()

	s.Run("success: returns 201 Created", func() {
		s.mockUseCase.EXPECT().SeedAdmin(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnUser.Email, response.Email)
		s.Equal("ADMIN", response.Role)
	})

	s.Run("error: 403 once an admin exists", func() {
		s.mockUseCase.EXPECT().SeedAdmin(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrAdminAlreadySeeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Admin already exists")
	})

	s.Run("error: 400 for weak password", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("password", "12345"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/admin/auth/register"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()
	returnUser := builder.NewAuthBuilder().BuildReadModel()

	s.Run("success: returns 201 Created", func() {
		s.mockUseCase.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnUser.Email, response.Email)
	})

	s.Run("error: 409 for duplicate email", func() {
		s.mockUseCase.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrUserAlreadyExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})
}
