package usecase

import (
	"context"

	"lumina-hotel-api/internal/domain/content"
	"lumina-hotel-api/internal/infra"
	"lumina-hotel-api/internal/pkg/errs"
	"lumina-hotel-api/internal/usecase/readmodel"
)

var ErrDiningVenueNotFound = errs.New("dining venue not found")

type DiningVenueParams struct {
	Name        string
	Type        string
	Floor       *int32
	Hours       string
	Description string
	MenuURL     *string
	Images      []string
}

type DiningVenuePatch struct {
	Name        *string
	Type        *string
	Floor       *int32
	Hours       *string
	Description *string
	MenuURL     *string
	Images      []string
}

type DiningRepository interface {
	FindAll(ctx context.Context, venueType *string, orderByName bool) ([]*readmodel.DiningVenueRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.DiningVenueRM, error)
	Create(ctx context.Context, params DiningVenueParams) (*readmodel.DiningVenueRM, error)
	Update(ctx context.Context, id int64, patch DiningVenuePatch) (*readmodel.DiningVenueRM, error)
	Delete(ctx context.Context, id int64) error
}

type DiningUseCase interface {
	// ListVenues serves the public page: optional type filter, name order.
	ListVenues(ctx context.Context, venueType *string) ([]*readmodel.DiningVenueRM, error)
	ListVenuesAdmin(ctx context.Context) ([]*readmodel.DiningVenueRM, error)
	GetVenue(ctx context.Context, id int64) (*readmodel.DiningVenueRM, error)
	CreateVenue(ctx context.Context, params DiningVenueParams) (*readmodel.DiningVenueRM, error)
	UpdateVenue(ctx context.Context, id int64, patch DiningVenuePatch) (*readmodel.DiningVenueRM, error)
	DeleteVenue(ctx context.Context, id int64) error
}

type diningUseCaseImpl struct {
	repo DiningRepository
}

func NewDiningUseCase(repo DiningRepository) DiningUseCase {
	return &diningUseCaseImpl{repo: repo}
}

func (u *diningUseCaseImpl) ListVenues(ctx context.Context, venueType *string) ([]*readmodel.DiningVenueRM, error) {
	rms, err := u.repo.FindAll(ctx, venueType, true)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *diningUseCaseImpl) ListVenuesAdmin(ctx context.Context) ([]*readmodel.DiningVenueRM, error) {
	rms, err := u.repo.FindAll(ctx, nil, false)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *diningUseCaseImpl) GetVenue(ctx context.Context, id int64) (*readmodel.DiningVenueRM, error) {
	rm, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDiningVenueNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *diningUseCaseImpl) CreateVenue(ctx context.Context, params DiningVenueParams) (*readmodel.DiningVenueRM, error) {
	if !content.DiningType(params.Type).IsValid() {
		return nil, ErrDomainValidation
	}

	rm, err := u.repo.Create(ctx, params)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *diningUseCaseImpl) UpdateVenue(ctx context.Context, id int64, patch DiningVenuePatch) (*readmodel.DiningVenueRM, error) {
	if patch.Type != nil && !content.DiningType(*patch.Type).IsValid() {
		return nil, ErrDomainValidation
	}

	rm, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDiningVenueNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *diningUseCaseImpl) DeleteVenue(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrDiningVenueNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
