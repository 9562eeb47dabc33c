//go:build unit || e2e

package builder

import (
	"time"

	"lumina-hotel-api/internal/domain/user"
	reqdto "lumina-hotel-api/internal/handler/dto/request"
	"lumina-hotel-api/internal/usecase/readmodel"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "admin@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildReadModel() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:        1,
		Email:     a.Email,
		Role:      user.RoleAdmin.String(),
		CreatedAt: time.Now(),
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}
