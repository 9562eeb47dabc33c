package usecase

import (
	"context"
	"fmt"

	"lumina-hotel-api/internal/domain/room"
	"lumina-hotel-api/internal/infra"
	"lumina-hotel-api/internal/pkg/errs"
	"lumina-hotel-api/internal/pkg/money"
	"lumina-hotel-api/internal/pkg/slug"
	"lumina-hotel-api/internal/usecase/readmodel"
)

type CreateRoomParams struct {
	Name        string
	Description string
	Price       money.Money
	SizeSqm     int32
	Occupancy   int32
	Images      []string
	Highlights  []string
}

// UpdateRoomParams carries only the fields present in the PATCH body.
type UpdateRoomParams struct {
	Name        *string
	Description *string
	Price       *money.Money
	SizeSqm     *int32
	Occupancy   *int32
	Images      []string
	Highlights  []string
}

type RoomRepository interface {
	FindByID(ctx context.Context, id int64) (*readmodel.RoomRM, error)
	FindBySlug(ctx context.Context, slug string) (*readmodel.RoomRM, error)
	// SlugExists reports whether another room (excluding excludeID, 0 for
	// none) already owns the slug.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	FindAllByPrice(ctx context.Context) ([]*readmodel.RoomRM, error)
	FindAllByCreated(ctx context.Context) ([]*readmodel.RoomRM, error)
	Create(ctx context.Context, r *room.Room) (*readmodel.RoomRM, error)
	Update(ctx context.Context, id int64, params UpdateRoomParams, newSlug *string) (*readmodel.RoomRM, error)
	Delete(ctx context.Context, id int64) error
}

type RoomUseCase interface {
	// Public catalog reads.
	ListRooms(ctx context.Context) ([]*readmodel.RoomRM, error)
	GetRoomBySlug(ctx context.Context, slug string) (*readmodel.RoomRM, error)

	// Admin operations.
	ListRoomsAdmin(ctx context.Context) ([]*readmodel.RoomRM, error)
	GetRoom(ctx context.Context, id int64) (*readmodel.RoomRM, error)
	CreateRoom(ctx context.Context, params CreateRoomParams) (*readmodel.RoomRM, error)
	UpdateRoom(ctx context.Context, id int64, params UpdateRoomParams) (*readmodel.RoomRM, error)
	DeleteRoom(ctx context.Context, id int64) error
}

type roomUseCaseImpl struct {
	roomRepo RoomRepository
}

func NewRoomUseCase(roomRepo RoomRepository) RoomUseCase {
	return &roomUseCaseImpl{roomRepo: roomRepo}
}

func (u *roomUseCaseImpl) ListRooms(ctx context.Context) ([]*readmodel.RoomRM, error) {
	rms, err := u.roomRepo.FindAllByPrice(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *roomUseCaseImpl) GetRoomBySlug(ctx context.Context, s string) (*readmodel.RoomRM, error) {
	rm, err := u.roomRepo.FindBySlug(ctx, s)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *roomUseCaseImpl) ListRoomsAdmin(ctx context.Context) ([]*readmodel.RoomRM, error) {
	rms, err := u.roomRepo.FindAllByCreated(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *roomUseCaseImpl) GetRoom(ctx context.Context, id int64) (*readmodel.RoomRM, error) {
	rm, err := u.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *roomUseCaseImpl) CreateRoom(ctx context.Context, params CreateRoomParams) (*readmodel.RoomRM, error) {
	uniqueSlug, err := u.ensureUniqueSlug(ctx, params.Name, 0)
	if err != nil {
		return nil, err
	}

	roomEntity, err := room.NewRoom(
		uniqueSlug, params.Name, params.Description, params.Price,
		params.SizeSqm, params.Occupancy, params.Images, params.Highlights,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	created, err := u.roomRepo.Create(ctx, roomEntity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return created, nil
}

func (u *roomUseCaseImpl) UpdateRoom(ctx context.Context, id int64, params UpdateRoomParams) (*readmodel.RoomRM, error) {
	existing, err := u.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if params.Price != nil && !params.Price.IsPositive() {
		return nil, errs.Mark(room.ErrInvalidPrice, ErrDomainValidation)
	}

	// Renaming re-derives the slug; everything else keeps it stable.
	var newSlug *string
	if params.Name != nil && *params.Name != existing.Name {
		s, slugErr := u.ensureUniqueSlug(ctx, *params.Name, id)
		if slugErr != nil {
			return nil, slugErr
		}
		newSlug = &s
	}

	updated, err := u.roomRepo.Update(ctx, id, params, newSlug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return updated, nil
}

func (u *roomUseCaseImpl) DeleteRoom(ctx context.Context, id int64) error {
	if err := u.roomRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrRoomNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *roomUseCaseImpl) ensureUniqueSlug(ctx context.Context, name string, excludeID int64) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "room"
	}

	candidate := base
	for counter := 1; ; counter++ {
		taken, err := u.roomRepo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
