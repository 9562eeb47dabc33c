package components

import (
	"lumina-hotel-api/internal/domain/booking"
	"lumina-hotel-api/internal/pkg/clock"
	"lumina-hotel-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			booking.NewNightlyRateCalculator,
			fx.As(new(booking.PriceCalculator)),
		),
		booking.NewFactory,

		usecase.NewAuthUseCase,
		usecase.NewRoomUseCase,
		usecase.NewBookingUseCase,
		usecase.NewAmenityUseCase,
		usecase.NewDiningUseCase,
		usecase.NewGalleryUseCase,
		usecase.NewTestimonialUseCase,
		usecase.NewEventUseCase,

		func(a usecase.AuthUseCase) usecase.TokenValidator {
			return a
		},
	),
)
