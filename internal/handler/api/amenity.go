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

type AmenityHandler struct {
	amenityUseCase usecase.AmenityUseCase
}

func NewAmenityHandler(amenityUseCase usecase.AmenityUseCase) *AmenityHandler {
	return &AmenityHandler{
		amenityUseCase: amenityUseCase,
	}
}

// @Summary List amenities
// @Description List amenities with an optional category filter
// @Tags amenities
// @Produce json
// @Param category query string false "Amenity category"
// @Success 200 {array} resdto.AmenityResponse
// @Router /amenities [get]
func (h *AmenityHandler) List(c *gin.Context) {
	rms, err := h.amenityUseCase.ListAmenities(c.Request.Context(), queryPtr(c, "category"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmenityList(rms))
}

// @Summary List amenities (admin)
// @Description List all amenities regardless of category
// @Tags amenities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AmenityResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/amenities [get]
func (h *AmenityHandler) ListAdmin(c *gin.Context) {
	rms, err := h.amenityUseCase.ListAmenities(c.Request.Context(), nil)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmenityList(rms))
}

// @Summary Get amenity
// @Description Get an amenity by ID
// @Tags amenities
// @Produce json
// @Param id path int true "Amenity ID"
// @Success 200 {object} resdto.AmenityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /amenities/{id} [get]
func (h *AmenityHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rm, err := h.amenityUseCase.GetAmenity(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAmenityNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Amenity not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmenityRM(rm))
}

// @Summary Create amenity
// @Tags amenities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAmenityRequest true "Create amenity request"
// @Success 201 {object} resdto.AmenityResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/amenities [post]
func (h *AmenityHandler) Create(c *gin.Context) {
	var req reqdto.CreateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.amenityUseCase.CreateAmenity(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amenity data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAmenityRM(created))
}

// @Summary Update amenity
// @Tags amenities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Amenity ID"
// @Param request body reqdto.UpdateAmenityRequest true "Update amenity request"
// @Success 200 {object} resdto.AmenityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/amenities/{id} [patch]
func (h *AmenityHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateAmenityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	rm, err := h.amenityUseCase.UpdateAmenity(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAmenityNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Amenity not found", nil)
		case errors.Is(err, usecase.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amenity data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmenityRM(rm))
}

// @Summary Delete amenity
// @Tags amenities
// @Security BearerAuth
// @Param id path int true "Amenity ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/amenities/{id} [delete]
func (h *AmenityHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.amenityUseCase.DeleteAmenity(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAmenityNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Amenity not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
