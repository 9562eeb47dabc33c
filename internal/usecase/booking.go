package usecase

import (
	"context"
	"time"

	"lumina-hotel-api/internal/domain/booking"
	"lumina-hotel-api/internal/domain/room"
	"lumina-hotel-api/internal/infra"
	"lumina-hotel-api/internal/pkg/errs"
	"lumina-hotel-api/internal/usecase/readmodel"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidStay             = errs.New("invalid stay period")
	ErrInvalidBookingStatus    = errs.New("invalid booking status")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	RoomID        int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int32
	Notes         *string
}

type BookingFilters struct {
	Status        *string
	PaymentStatus *string
	RoomID        *int64
	Email         *string
}

type UpdateBookingParams struct {
	Status        *string
	PaymentStatus *string
	Notes         *string
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.BookingRM, error)
	FindAll(ctx context.Context, filters BookingFilters) ([]*readmodel.BookingRM, error)
	Update(ctx context.Context, id int64, params UpdateBookingParams) (*readmodel.BookingRM, error)
	Delete(ctx context.Context, id int64) error
}

type BookingUseCase interface {
	// CreateBooking validates the request, prices the stay against the
	// room's current nightly rate and persists a PENDING/UNPAID booking.
	// Creation is not idempotent: retries produce duplicate bookings.
	CreateBooking(ctx context.Context, params CreateBookingParams) (*readmodel.BookingRM, error)

	// Admin operations.
	ListBookings(ctx context.Context, filters BookingFilters) ([]*readmodel.BookingRM, error)
	GetBooking(ctx context.Context, id int64) (*readmodel.BookingRM, error)
	UpdateBooking(ctx context.Context, id int64, params UpdateBookingParams) (*readmodel.BookingRM, error)
	DeleteBooking(ctx context.Context, id int64) error
}

type bookingUseCaseImpl struct {
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	bookingFactory *booking.Factory
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	bookingFactory *booking.Factory,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		bookingFactory: bookingFactory,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*readmodel.BookingRM, error) {
	roomRM, err := u.roomRepo.FindByID(ctx, params.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	customer, err := booking.NewCustomer(params.CustomerName, params.CustomerEmail, params.CustomerPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	stay, err := booking.NewStayPeriod(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStay)
	}

	roomEntity := room.ReconstructRoom(
		roomRM.ID, roomRM.Slug, roomRM.Name, roomRM.Description,
		roomRM.Price, roomRM.SizeSqm, roomRM.Occupancy,
		roomRM.Images, roomRM.Highlights,
		roomRM.CreatedAt, roomRM.UpdatedAt,
	)

	bookingEntity, err := u.bookingFactory.CreateBooking(roomEntity, customer, stay, params.Guests, params.Notes)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	created, err := u.bookingRepo.Create(ctx, bookingEntity)
	if err != nil {
		// The room can vanish between lookup and insert; surface the
		// FK violation the same way as the pre-check.
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return created, nil
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context, filters BookingFilters) ([]*readmodel.BookingRM, error) {
	// An unknown status filter matches nothing rather than failing.
	if filters.Status != nil && !booking.Status(*filters.Status).IsValid() {
		return []*readmodel.BookingRM{}, nil
	}
	if filters.PaymentStatus != nil && !booking.PaymentStatus(*filters.PaymentStatus).IsValid() {
		return []*readmodel.BookingRM{}, nil
	}

	rms, err := u.bookingRepo.FindAll(ctx, filters)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, id int64) (*readmodel.BookingRM, error) {
	rm, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) UpdateBooking(ctx context.Context, id int64, params UpdateBookingParams) (*readmodel.BookingRM, error) {
	if params.Status != nil && !booking.Status(*params.Status).IsValid() {
		return nil, ErrInvalidBookingStatus
	}
	if params.PaymentStatus != nil && !booking.PaymentStatus(*params.PaymentStatus).IsValid() {
		return nil, ErrInvalidBookingStatus
	}
	if params.Notes != nil && len(*params.Notes) > booking.MaxNotesLen {
		return nil, ErrDomainValidation
	}

	rm, err := u.bookingRepo.Update(ctx, id, params)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id int64) error {
	if err := u.bookingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
