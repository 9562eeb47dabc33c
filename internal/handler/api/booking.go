package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "lumina-hotel-api/internal/handler/dto/request"
	resdto "lumina-hotel-api/internal/handler/dto/response"
	"lumina-hotel-api/internal/handler/httperr"
	"lumina-hotel-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create booking
// @Description Create a booking for a room; the total price is computed server-side from the room's nightly rate
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.bookingUseCase.CreateBooking(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			// Referencing a missing room is a bad request, not a missing resource.
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Selected room does not exist", nil)
		case errors.Is(err, usecase.ErrInvalidStay):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out must be after check-in", nil)
		case errors.Is(err, usecase.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingRM(created))
}

// @Summary List bookings
// @Description List all bookings with optional filters
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status filter"
// @Param paymentStatus query string false "Payment status filter"
// @Param roomId query int false "Room ID filter"
// @Param email query string false "Customer email filter"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	filters := usecase.BookingFilters{
		Status:        queryPtr(c, "status"),
		PaymentStatus: queryPtr(c, "paymentStatus"),
		Email:         queryPtr(c, "email"),
	}
	if v := c.Query("roomId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.RoomID = &id
		}
	}

	rms, err := h.bookingUseCase.ListBookings(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingList(rms))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rm, err := h.bookingUseCase.GetBooking(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(rm))
}

// @Summary Update booking
// @Description Update booking status, payment status or notes
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Update booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	rm, err := h.bookingUseCase.UpdateBooking(c.Request.Context(), id, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, usecase.ErrInvalidBookingStatus), errors.Is(err, usecase.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(rm))
}

// @Summary Delete booking
// @Description Delete a booking by ID
// @Tags bookings
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.bookingUseCase.DeleteBooking(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
