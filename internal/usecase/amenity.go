package usecase

import (
	"context"

	"lumina-hotel-api/internal/domain/content"
	"lumina-hotel-api/internal/infra"
	"lumina-hotel-api/internal/pkg/errs"
	"lumina-hotel-api/internal/usecase/readmodel"
)

var ErrAmenityNotFound = errs.New("amenity not found")

type AmenityParams struct {
	Name        string
	Description string
	Category    string
	Hours       *string
	Images      []string
}

// AmenityPatch carries only fields present in the PATCH body.
type AmenityPatch struct {
	Name        *string
	Description *string
	Category    *string
	Hours       *string
	Images      []string
}

type AmenityRepository interface {
	FindAll(ctx context.Context, category *string) ([]*readmodel.AmenityRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.AmenityRM, error)
	Create(ctx context.Context, params AmenityParams) (*readmodel.AmenityRM, error)
	Update(ctx context.Context, id int64, patch AmenityPatch) (*readmodel.AmenityRM, error)
	Delete(ctx context.Context, id int64) error
}

type AmenityUseCase interface {
	ListAmenities(ctx context.Context, category *string) ([]*readmodel.AmenityRM, error)
	GetAmenity(ctx context.Context, id int64) (*readmodel.AmenityRM, error)
	CreateAmenity(ctx context.Context, params AmenityParams) (*readmodel.AmenityRM, error)
	UpdateAmenity(ctx context.Context, id int64, patch AmenityPatch) (*readmodel.AmenityRM, error)
	DeleteAmenity(ctx context.Context, id int64) error
}

type amenityUseCaseImpl struct {
	repo AmenityRepository
}

func NewAmenityUseCase(repo AmenityRepository) AmenityUseCase {
	return &amenityUseCaseImpl{repo: repo}
}

func (u *amenityUseCaseImpl) ListAmenities(ctx context.Context, category *string) ([]*readmodel.AmenityRM, error) {
	rms, err := u.repo.FindAll(ctx, category)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *amenityUseCaseImpl) GetAmenity(ctx context.Context, id int64) (*readmodel.AmenityRM, error) {
	rm, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAmenityNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *amenityUseCaseImpl) CreateAmenity(ctx context.Context, params AmenityParams) (*readmodel.AmenityRM, error) {
	if !content.AmenityCategory(params.Category).IsValid() {
		return nil, ErrDomainValidation
	}

	rm, err := u.repo.Create(ctx, params)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *amenityUseCaseImpl) UpdateAmenity(ctx context.Context, id int64, patch AmenityPatch) (*readmodel.AmenityRM, error) {
	if patch.Category != nil && !content.AmenityCategory(*patch.Category).IsValid() {
		return nil, ErrDomainValidation
	}

	rm, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAmenityNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *amenityUseCaseImpl) DeleteAmenity(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrAmenityNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
