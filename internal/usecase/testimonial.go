package usecase

import (
	"context"

	"lumina-hotel-api/internal/infra"
	"lumina-hotel-api/internal/pkg/errs"
	"lumina-hotel-api/internal/usecase/readmodel"
)

var ErrTestimonialNotFound = errs.New("testimonial not found")

type TestimonialParams struct {
	GuestName string
	Content   string
	Rating    int32
}

type TestimonialPatch struct {
	GuestName *string
	Content   *string
	Rating    *int32
}

type TestimonialRepository interface {
	FindAll(ctx context.Context, limit *int32) ([]*readmodel.TestimonialRM, error)
	Create(ctx context.Context, params TestimonialParams) (*readmodel.TestimonialRM, error)
	Update(ctx context.Context, id int64, patch TestimonialPatch) (*readmodel.TestimonialRM, error)
	Delete(ctx context.Context, id int64) error
}

type TestimonialUseCase interface {
	ListTestimonials(ctx context.Context, limit *int32) ([]*readmodel.TestimonialRM, error)
	CreateTestimonial(ctx context.Context, params TestimonialParams) (*readmodel.TestimonialRM, error)
	UpdateTestimonial(ctx context.Context, id int64, patch TestimonialPatch) (*readmodel.TestimonialRM, error)
	DeleteTestimonial(ctx context.Context, id int64) error
}

type testimonialUseCaseImpl struct {
	repo TestimonialRepository
}

func NewTestimonialUseCase(repo TestimonialRepository) TestimonialUseCase {
	return &testimonialUseCaseImpl{repo: repo}
}

func (u *testimonialUseCaseImpl) ListTestimonials(ctx context.Context, limit *int32) ([]*readmodel.TestimonialRM, error) {
	rms, err := u.repo.FindAll(ctx, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *testimonialUseCaseImpl) CreateTestimonial(ctx context.Context, params TestimonialParams) (*readmodel.TestimonialRM, error) {
	rm, err := u.repo.Create(ctx, params)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *testimonialUseCaseImpl) UpdateTestimonial(ctx context.Context, id int64, patch TestimonialPatch) (*readmodel.TestimonialRM, error) {
	rm, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrTestimonialNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *testimonialUseCaseImpl) DeleteTestimonial(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrTestimonialNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
