//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"lumina-hotel-api/internal/domain/user"
	"lumina-hotel-api/internal/infra"
	"lumina-hotel-api/internal/pkg/clock"
	"lumina-hotel-api/internal/pkg/jwt"
	"lumina-hotel-api/internal/pkg/password"
	"lumina-hotel-api/internal/usecase"
	"lumina-hotel-api/tests/common/builder"
	usecasemock "lumina-hotel-api/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUserRepo *usecasemock.MockUserRepository
	jwtService   *jwt.Service
	useCase      usecase.AuthUseCase
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret", time.Hour, clock.NewRealClock())
	s.useCase = usecase.NewAuthUseCase(s.mockUserRepo, s.jwtService)
}

func (s *AuthUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) mustCredentials(email, pass string) user.Credentials {
	creds, err := user.NewCredentials(email, pass)
	s.Require().NoError(err)
	return creds
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("success: returns a token carrying id and role", func() {
		creds := s.mustCredentials("admin@example.com", "password123")
		hash, err := password.HashPassword("password123")
		s.Require().NoError(err)
		userRM := builder.NewAuthBuilder().BuildReadModel()

		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").
			Return(userRM, hash, nil)

		result, err := s.useCase.Login(ctx, creds)
		s.Require().NoError(err)
		s.Equal(userRM.Email, result.User.Email)

		claims, err := s.jwtService.ValidateToken(result.Token)
		s.Require().NoError(err)
		s.Equal(userRM.ID, claims.UserID)
		s.Equal("ADMIN", claims.Role)
	})

	s.Run("error: unknown email", func() {
		creds := s.mustCredentials("ghost@example.com", "password123")
		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := s.useCase.Login(ctx, creds)
		s.Require().ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("error: wrong password", func() {
		creds := s.mustCredentials("admin@example.com", "wrong-password")
		hash, err := password.HashPassword("password123")
		s.Require().NoError(err)

		s.mockUserRepo.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").
			Return(builder.NewAuthBuilder().BuildReadModel(), hash, nil)

		_, err = s.useCase.Login(ctx, creds)
		s.Require().ErrorIs(err, usecase.ErrInvalidCredentials)
	})
}

func (s *AuthUseCaseTestSuite) TestSeedAdmin() {
	ctx := context.Background()

	s.Run("success: first admin", func() {
		creds := s.mustCredentials("admin@example.com", "password123")
		created := builder.NewAuthBuilder().BuildReadModel()

		s.mockUserRepo.EXPECT().CountAdmins(gomock.Any()).Return(int64(0), nil)
		s.mockUserRepo.EXPECT().Create(gomock.Any(), "admin@example.com", gomock.Any(), user.RoleAdmin).
			Return(created, nil)

		got, err := s.useCase.SeedAdmin(ctx, creds)
		s.Require().NoError(err)
		s.Equal(created.Email, got.Email)
	})

	s.Run("error: refused once an admin exists", func() {
		creds := s.mustCredentials("admin@example.com", "password123")
		s.mockUserRepo.EXPECT().CountAdmins(gomock.Any()).Return(int64(1), nil)

		_, err := s.useCase.SeedAdmin(ctx, creds)
		s.Require().ErrorIs(err, usecase.ErrAdminAlreadySeeded)
	})
}

func (s *AuthUseCaseTestSuite) TestRegister() {
	ctx := context.Background()

	s.Run("error: duplicate email", func() {
		creds := s.mustCredentials("admin@example.com", "password123")
		s.mockUserRepo.EXPECT().Create(gomock.Any(), "admin@example.com", gomock.Any(), user.RoleAdmin).
			Return(nil, infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey))

		_, err := s.useCase.Register(ctx, creds)
		s.Require().ErrorIs(err, usecase.ErrUserAlreadyExists)
	})
}

func (s *AuthUseCaseTestSuite) TestValidateToken() {
	s.Run("round trips claims", func() {
		token, err := s.jwtService.GenerateToken(7, user.RoleAdmin)
		s.Require().NoError(err)

		id, role, err := s.useCase.ValidateToken(token)
		s.Require().NoError(err)
		s.Equal(int64(7), id)
		s.True(role.IsAdmin())
	})

	s.Run("rejects tampered token", func() {
		_, _, err := s.useCase.ValidateToken("bogus")
		s.Require().ErrorIs(err, usecase.ErrTokenValidation)
	})
}
