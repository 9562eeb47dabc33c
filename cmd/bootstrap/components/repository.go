package components

import (
	"lumina-hotel-api/internal/infra/db"
	repo_impl "lumina-hotel-api/internal/infra/repository"
	"lumina-hotel-api/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewAmenityRepository,
			fx.As(new(usecase.AmenityRepository)),
		),
		fx.Annotate(
			repo_impl.NewDiningRepository,
			fx.As(new(usecase.DiningRepository)),
		),
		fx.Annotate(
			repo_impl.NewGalleryRepository,
			fx.As(new(usecase.GalleryRepository)),
		),
		fx.Annotate(
			repo_impl.NewTestimonialRepository,
			fx.As(new(usecase.TestimonialRepository)),
		),
		fx.Annotate(
			repo_impl.NewEventRepository,
			fx.As(new(usecase.EventRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
