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

type DiningHandler struct {
	diningUseCase usecase.DiningUseCase
}

func NewDiningHandler(diningUseCase usecase.DiningUseCase) *DiningHandler {
	return &DiningHandler{
		diningUseCase: diningUseCase,
	}
}

// @Summary List dining venues
// @Description List dining venues with an optional type filter
// @Tags dining
// @Produce json
// @Param type query string false "Venue type"
// @Success 200 {array} resdto.DiningVenueResponse
// @Router /dining [get]
func (h *DiningHandler) List(c *gin.Context) {
	rms, err := h.diningUseCase.ListVenues(c.Request.Context(), queryPtr(c, "type"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiningVenueList(rms))
}

// @Summary Get dining venue
// @Tags dining
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} resdto.DiningVenueResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /dining/{id} [get]
func (h *DiningHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rm, err := h.diningUseCase.GetVenue(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDiningVenueNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Dining venue not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiningVenueRM(rm))
}

// @Summary List dining venues (admin)
// @Description List all dining venues ordered by creation time
// @Tags dining
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DiningVenueResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/dining [get]
func (h *DiningHandler) ListAdmin(c *gin.Context) {
	rms, err := h.diningUseCase.ListVenuesAdmin(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiningVenueList(rms))
}

// @Summary Create dining venue
// @Tags dining
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDiningVenueRequest true "Create venue request"
// @Success 201 {object} resdto.DiningVenueResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/dining [post]
func (h *DiningHandler) Create(c *gin.Context) {
	var req reqdto.CreateDiningVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.diningUseCase.CreateVenue(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid venue data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDiningVenueRM(created))
}

// @Summary Update dining venue
// @Tags dining
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Venue ID"
// @Param request body reqdto.UpdateDiningVenueRequest true "Update venue request"
// @Success 200 {object} resdto.DiningVenueResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/dining/{id} [patch]
func (h *DiningHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateDiningVenueRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	rm, err := h.diningUseCase.UpdateVenue(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDiningVenueNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Dining venue not found", nil)
		case errors.Is(err, usecase.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid venue data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiningVenueRM(rm))
}

// @Summary Delete dining venue
// @Tags dining
// @Security BearerAuth
// @Param id path int true "Venue ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/dining/{id} [delete]
func (h *DiningHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.diningUseCase.DeleteVenue(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrDiningVenueNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Dining venue not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
