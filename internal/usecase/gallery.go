package usecase

import (
	"context"

	"lumina-hotel-api/internal/domain/content"
	"lumina-hotel-api/internal/infra"
	"lumina-hotel-api/internal/pkg/errs"
	"lumina-hotel-api/internal/usecase/readmodel"
)

var ErrGalleryItemNotFound = errs.New("gallery item not found")

type GalleryItemParams struct {
	Title    string
	Category string
	ImageURL string
	Caption  *string
}

type GalleryItemPatch struct {
	Title    *string
	Category *string
	ImageURL *string
	Caption  *string
}

type GalleryRepository interface {
	FindAll(ctx context.Context, category *string, limit *int32) ([]*readmodel.GalleryItemRM, error)
	Create(ctx context.Context, params GalleryItemParams) (*readmodel.GalleryItemRM, error)
	Update(ctx context.Context, id int64, patch GalleryItemPatch) (*readmodel.GalleryItemRM, error)
	Delete(ctx context.Context, id int64) error
}

type GalleryUseCase interface {
	ListItems(ctx context.Context, category *string, limit *int32) ([]*readmodel.GalleryItemRM, error)
	CreateItem(ctx context.Context, params GalleryItemParams) (*readmodel.GalleryItemRM, error)
	UpdateItem(ctx context.Context, id int64, patch GalleryItemPatch) (*readmodel.GalleryItemRM, error)
	DeleteItem(ctx context.Context, id int64) error
}

type galleryUseCaseImpl struct {
	repo GalleryRepository
}

func NewGalleryUseCase(repo GalleryRepository) GalleryUseCase {
	return &galleryUseCaseImpl{repo: repo}
}

func (u *galleryUseCaseImpl) ListItems(ctx context.Context, category *string, limit *int32) ([]*readmodel.GalleryItemRM, error) {
	rms, err := u.repo.FindAll(ctx, category, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *galleryUseCaseImpl) CreateItem(ctx context.Context, params GalleryItemParams) (*readmodel.GalleryItemRM, error) {
	if !content.GalleryCategory(params.Category).IsValid() {
		return nil, ErrDomainValidation
	}

	rm, err := u.repo.Create(ctx, params)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *galleryUseCaseImpl) UpdateItem(ctx context.Context, id int64, patch GalleryItemPatch) (*readmodel.GalleryItemRM, error) {
	if patch.Category != nil && !content.GalleryCategory(*patch.Category).IsValid() {
		return nil, ErrDomainValidation
	}

	rm, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrGalleryItemNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *galleryUseCaseImpl) DeleteItem(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrGalleryItemNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
