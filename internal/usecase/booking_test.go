//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"lumina-hotel-api/internal/domain/booking"
	"lumina-hotel-api/internal/infra"
	"lumina-hotel-api/internal/usecase"
	"lumina-hotel-api/internal/usecase/readmodel"
	"lumina-hotel-api/tests/common/builder"
	usecasemock "lumina-hotel-api/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockBookingRepo *usecasemock.MockBookingRepository
	mockRoomRepo    *usecasemock.MockRoomRepository
	useCase         usecase.BookingUseCase
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookingRepo = usecasemock.NewMockBookingRepository(s.mockCtrl)
	s.mockRoomRepo = usecasemock.NewMockRoomRepository(s.mockCtrl)
	factory := booking.NewFactory(booking.NewNightlyRateCalculator())
	s.useCase = usecase.NewBookingUseCase(s.mockBookingRepo, s.mockRoomRepo, factory)
}

func (s *BookingUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func (s *BookingUseCaseTestSuite) TestCreateBooking() {
	ctx := context.Background()

	s.Run("success: prices the stay against the room rate", func() {
		roomRM := builder.NewRoomBuilder().WithPrice(24900).BuildReadModel()
		params := builder.NewBookingBuilder().BuildCreateParams()

		s.mockRoomRepo.EXPECT().FindByID(gomock.Any(), params.RoomID).Return(roomRM, nil)
		s.mockBookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) (*readmodel.BookingRM, error) {
				s.Equal(int64(49800), b.TotalPrice().Cents())
				s.Equal(booking.StatusPending, b.Status())
				s.Equal(booking.PaymentUnpaid, b.PaymentStatus())
				rm := builder.NewBookingBuilder().BuildReadModel()
				rm.Room = roomRM
				return rm, nil
			})

		created, err := s.useCase.CreateBooking(ctx, params)
		s.Require().NoError(err)
		s.Equal(int64(49800), created.TotalPrice.Cents())
	})

	s.Run("error: unknown room", func() {
		params := builder.NewBookingBuilder().WithRoomID(999).BuildCreateParams()
		s.mockRoomRepo.EXPECT().FindByID(gomock.Any(), int64(999)).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		_, err := s.useCase.CreateBooking(ctx, params)
		s.Require().ErrorIs(err, usecase.ErrRoomNotFound)
	})

	s.Run("error: invalid stay period", func() {
		roomRM := builder.NewRoomBuilder().BuildReadModel()
		b := builder.NewBookingBuilder()
		params := b.WithStay(b.CheckOut, b.CheckIn).BuildCreateParams()

		s.mockRoomRepo.EXPECT().FindByID(gomock.Any(), params.RoomID).Return(roomRM, nil)

		_, err := s.useCase.CreateBooking(ctx, params)
		s.Require().ErrorIs(err, usecase.ErrInvalidStay)
	})

	s.Run("error: invalid customer maps to domain validation", func() {
		roomRM := builder.NewRoomBuilder().BuildReadModel()
		params := builder.NewBookingBuilder().WithCustomerName("A").BuildCreateParams()

		s.mockRoomRepo.EXPECT().FindByID(gomock.Any(), params.RoomID).Return(roomRM, nil)

		_, err := s.useCase.CreateBooking(ctx, params)
		s.Require().ErrorIs(err, usecase.ErrDomainValidation)
	})

	s.Run("error: room deleted between lookup and insert", func() {
		roomRM := builder.NewRoomBuilder().BuildReadModel()
		params := builder.NewBookingBuilder().BuildCreateParams()

		s.mockRoomRepo.EXPECT().FindByID(gomock.Any(), params.RoomID).Return(roomRM, nil)
		s.mockBookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("room missing", nil, infra.KindForeignKeyViolated))

		_, err := s.useCase.CreateBooking(ctx, params)
		s.Require().ErrorIs(err, usecase.ErrRoomNotFound)
	})
}

func (s *BookingUseCaseTestSuite) TestListBookings() {
	ctx := context.Background()

	s.Run("success: forwards filters", func() {
		status := "PENDING"
		filters := usecase.BookingFilters{Status: &status}

		s.mockBookingRepo.EXPECT().FindAll(gomock.Any(), filters).
			Return([]*readmodel.BookingRM{}, nil)

		_, err := s.useCase.ListBookings(ctx, filters)
		s.Require().NoError(err)
	})

	s.Run("unknown status filter matches nothing", func() {
		status := "SOMEDAY"
		rms, err := s.useCase.ListBookings(ctx, usecase.BookingFilters{Status: &status})
		s.Require().NoError(err)
		s.Empty(rms)
	})

	s.Run("unknown payment status filter matches nothing", func() {
		ps := "MAYBE"
		rms, err := s.useCase.ListBookings(ctx, usecase.BookingFilters{PaymentStatus: &ps})
		s.Require().NoError(err)
		s.Empty(rms)
	})
}

func (s *BookingUseCaseTestSuite) TestUpdateBooking() {
	ctx := context.Background()

	s.Run("error: unknown status", func() {
		status := "ARCHIVED"
		_, err := s.useCase.UpdateBooking(ctx, 1, usecase.UpdateBookingParams{Status: &status})
		s.Require().ErrorIs(err, usecase.ErrInvalidBookingStatus)
	})

	s.Run("error: unknown payment status", func() {
		ps := "IOU"
		_, err := s.useCase.UpdateBooking(ctx, 1, usecase.UpdateBookingParams{PaymentStatus: &ps})
		s.Require().ErrorIs(err, usecase.ErrInvalidBookingStatus)
	})

	s.Run("error: booking not found", func() {
		status := "CONFIRMED"
		s.mockBookingRepo.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := s.useCase.UpdateBooking(ctx, 7, usecase.UpdateBookingParams{Status: &status})
		s.Require().ErrorIs(err, usecase.ErrBookingNotFound)
	})

	s.Run("success: valid transition", func() {
		status := "CONFIRMED"
		params := usecase.UpdateBookingParams{Status: &status}
		rm := builder.NewBookingBuilder().BuildReadModel()
		rm.Status = status

		s.mockBookingRepo.EXPECT().Update(gomock.Any(), int64(1), params).Return(rm, nil)

		updated, err := s.useCase.UpdateBooking(ctx, 1, params)
		s.Require().NoError(err)
		s.Equal("CONFIRMED", updated.Status)
	})
}
