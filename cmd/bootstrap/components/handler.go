package components

import (
	"lumina-hotel-api/internal/handler"
	"lumina-hotel-api/internal/handler/api"
	"lumina-hotel-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewAmenityHandler,
		api.NewDiningHandler,
		api.NewGalleryHandler,
		api.NewTestimonialHandler,
		api.NewEventHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	room *api.RoomHandler,
	booking *api.BookingHandler,
	amenity *api.AmenityHandler,
	dining *api.DiningHandler,
	gallery *api.GalleryHandler,
	testimonial *api.TestimonialHandler,
	event *api.EventHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Room:        room,
		Booking:     booking,
		Amenity:     amenity,
		Dining:      dining,
		Gallery:     gallery,
		Testimonial: testimonial,
		Event:       event,
	}
}
