package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lumina-hotel-api/internal/handler/api"
	"lumina-hotel-api/internal/handler/middleware"
	"lumina-hotel-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Room        *api.RoomHandler
	Booking     *api.BookingHandler
	Amenity     *api.AmenityHandler
	Dining      *api.DiningHandler
	Gallery     *api.GalleryHandler
	Testimonial *api.TestimonialHandler
	Event       *api.EventHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := engine.Group("/api/v1")
	{
		addRoutes(v1, []route{
			// Login and first-admin seeding live under the admin prefix but
			// stay outside the guarded group: both must work without a token.
			{Method: http.MethodPost, Path: "/admin/auth/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/admin/auth/seed-admin", Handler: h.Auth.Seed},

			{Method: http.MethodGet, Path: "/rooms", Handler: h.Room.List},
			{Method: http.MethodGet, Path: "/rooms/:slug", Handler: h.Room.GetBySlug},

			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},

			{Method: http.MethodGet, Path: "/amenities", Handler: h.Amenity.List},
			{Method: http.MethodGet, Path: "/amenities/:id", Handler: h.Amenity.Get},

			{Method: http.MethodGet, Path: "/dining", Handler: h.Dining.List},
			{Method: http.MethodGet, Path: "/dining/:id", Handler: h.Dining.Get},

			{Method: http.MethodGet, Path: "/gallery", Handler: h.Gallery.List},
			{Method: http.MethodGet, Path: "/testimonials", Handler: h.Testimonial.List},
		})

		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/auth/register", Handler: h.Auth.Register},

				{Method: http.MethodGet, Path: "/rooms", Handler: h.Room.ListAdmin},
				{Method: http.MethodGet, Path: "/rooms/:id", Handler: h.Room.Get},
				{Method: http.MethodPost, Path: "/rooms", Handler: h.Room.Create},
				{Method: http.MethodPatch, Path: "/rooms/:id", Handler: h.Room.Update},
				{Method: http.MethodDelete, Path: "/rooms/:id", Handler: h.Room.Delete},

				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/bookings/:id", Handler: h.Booking.Update},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.Delete},

				{Method: http.MethodGet, Path: "/amenities", Handler: h.Amenity.ListAdmin},
				{Method: http.MethodPost, Path: "/amenities", Handler: h.Amenity.Create},
				{Method: http.MethodPatch, Path: "/amenities/:id", Handler: h.Amenity.Update},
				{Method: http.MethodDelete, Path: "/amenities/:id", Handler: h.Amenity.Delete},

				{Method: http.MethodGet, Path: "/dining", Handler: h.Dining.ListAdmin},
				{Method: http.MethodPost, Path: "/dining", Handler: h.Dining.Create},
				{Method: http.MethodPatch, Path: "/dining/:id", Handler: h.Dining.Update},
				{Method: http.MethodDelete, Path: "/dining/:id", Handler: h.Dining.Delete},

				{Method: http.MethodGet, Path: "/gallery", Handler: h.Gallery.ListAdmin},
				{Method: http.MethodPost, Path: "/gallery", Handler: h.Gallery.Create},
				{Method: http.MethodPatch, Path: "/gallery/:id", Handler: h.Gallery.Update},
				{Method: http.MethodDelete, Path: "/gallery/:id", Handler: h.Gallery.Delete},

				{Method: http.MethodGet, Path: "/testimonials", Handler: h.Testimonial.ListAdmin},
				{Method: http.MethodPost, Path: "/testimonials", Handler: h.Testimonial.Create},
				{Method: http.MethodPatch, Path: "/testimonials/:id", Handler: h.Testimonial.Update},
				{Method: http.MethodDelete, Path: "/testimonials/:id", Handler: h.Testimonial.Delete},

				// Events are staff-facing only; there is no public listing.
				{Method: http.MethodGet, Path: "/events", Handler: h.Event.List},
				{Method: http.MethodPost, Path: "/events", Handler: h.Event.Create},
				{Method: http.MethodPatch, Path: "/events/:id", Handler: h.Event.Update},
				{Method: http.MethodDelete, Path: "/events/:id", Handler: h.Event.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
