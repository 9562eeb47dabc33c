package usecase

import (
	"context"
	"time"

	"lumina-hotel-api/internal/infra"
	"lumina-hotel-api/internal/pkg/errs"
	"lumina-hotel-api/internal/usecase/readmodel"
)

var ErrEventNotFound = errs.New("event not found")

type EventParams struct {
	Title       string
	Description string
	Date        time.Time
	Venue       string
	ImageURL    *string
}

type EventPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	Venue       *string
	ImageURL    *string
}

type EventRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.EventRM, error)
	Create(ctx context.Context, params EventParams) (*readmodel.EventRM, error)
	Update(ctx context.Context, id int64, patch EventPatch) (*readmodel.EventRM, error)
	Delete(ctx context.Context, id int64) error
}

type EventUseCase interface {
	ListEvents(ctx context.Context) ([]*readmodel.EventRM, error)
	CreateEvent(ctx context.Context, params EventParams) (*readmodel.EventRM, error)
	UpdateEvent(ctx context.Context, id int64, patch EventPatch) (*readmodel.EventRM, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type eventUseCaseImpl struct {
	repo EventRepository
}

func NewEventUseCase(repo EventRepository) EventUseCase {
	return &eventUseCaseImpl{repo: repo}
}

func (u *eventUseCaseImpl) ListEvents(ctx context.Context) ([]*readmodel.EventRM, error) {
	rms, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *eventUseCaseImpl) CreateEvent(ctx context.Context, params EventParams) (*readmodel.EventRM, error) {
	rm, err := u.repo.Create(ctx, params)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *eventUseCaseImpl) UpdateEvent(ctx context.Context, id int64, patch EventPatch) (*readmodel.EventRM, error) {
	rm, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEventNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *eventUseCaseImpl) DeleteEvent(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrEventNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
