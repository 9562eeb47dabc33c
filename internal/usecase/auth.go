package usecase

import (
	"context"

	"lumina-hotel-api/internal/domain/user"
	"lumina-hotel-api/internal/infra"
	"lumina-hotel-api/internal/pkg/errs"
	"lumina-hotel-api/internal/pkg/jwt"
	"lumina-hotel-api/internal/pkg/password"
	"lumina-hotel-api/internal/usecase/readmodel"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserAlreadyExists  = errs.New("user already exists")
	ErrAdminAlreadySeeded = errs.New("admin already exists")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type UserRepository interface {
	// FindByEmail also returns the stored password hash; the hash never
	// leaves the auth usecase.
	FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error)
	CountAdmins(ctx context.Context) (int64, error)
	Create(ctx context.Context, email, passwordHash string, role user.Role) (*readmodel.AuthorizedUserRM, error)
}

type LoginResult struct {
	Token string
	User  *readmodel.AuthorizedUserRM
}

type TokenValidator interface {
	ValidateToken(tokenString string) (int64, user.Role, error)
}

type AuthUseCase interface {
	TokenValidator
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
	// Register creates a new admin account; callable only by admins.
	Register(ctx context.Context, credentials user.Credentials) (*readmodel.AuthorizedUserRM, error)
	// SeedAdmin bootstraps the first admin and refuses once one exists.
	SeedAdmin(ctx context.Context, credentials user.Credentials) (*readmodel.AuthorizedUserRM, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	userRM, hash, err := a.userRepo.FindByEmail(ctx, credentials.Email().String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(userRM.Role)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	token, err := a.jwtService.GenerateToken(userRM.ID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &LoginResult{Token: token, User: userRM}, nil
}

func (a *authUseCaseImpl) Register(ctx context.Context, credentials user.Credentials) (*readmodel.AuthorizedUserRM, error) {
	return a.createAdmin(ctx, credentials)
}

func (a *authUseCaseImpl) SeedAdmin(ctx context.Context, credentials user.Credentials) (*readmodel.AuthorizedUserRM, error) {
	count, err := a.userRepo.CountAdmins(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if count > 0 {
		return nil, ErrAdminAlreadySeeded
	}
	return a.createAdmin(ctx, credentials)
}

func (a *authUseCaseImpl) createAdmin(ctx context.Context, credentials user.Credentials) (*readmodel.AuthorizedUserRM, error) {
	hash, err := password.HashPassword(credentials.Password())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	created, err := a.userRepo.Create(ctx, credentials.Email().String(), hash, user.RoleAdmin)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrUserAlreadyExists)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return created, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (int64, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return 0, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return 0, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
