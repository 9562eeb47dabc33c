package api

import (
	"errors"
	"net/http"

	reqdto "lumina-hotel-api/internal/handler/dto/request"
	resdto "lumina-hotel-api/internal/handler/dto/response"
	"lumina-hotel-api/internal/handler/httperr"
	"lumina-hotel-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventUseCase usecase.EventUseCase
}

func NewEventHandler(eventUseCase usecase.EventUseCase) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
	}
}

// @Summary List events
// @Description List events ordered by date
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EventResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/events [get]
func (h *EventHandler) List(c *gin.Context) {
	rms, err := h.eventUseCase.ListEvents(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventList(rms))
}

// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Create event request"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.eventUseCase.CreateEvent(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEventRM(created))
}

// @Summary Update event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body reqdto.UpdateEventRequest true "Update event request"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/events/{id} [patch]
func (h *EventHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateEventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	rm, err := h.eventUseCase.UpdateEvent(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventRM(rm))
}

// @Summary Delete event
// @Tags events
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.eventUseCase.DeleteEvent(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
