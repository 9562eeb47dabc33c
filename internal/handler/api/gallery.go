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

type GalleryHandler struct {
	galleryUseCase usecase.GalleryUseCase
}

func NewGalleryHandler(galleryUseCase usecase.GalleryUseCase) *GalleryHandler {
	return &GalleryHandler{
		galleryUseCase: galleryUseCase,
	}
}

// @Summary List gallery items
// @Description List gallery items, newest first, with optional category filter and limit
// @Tags gallery
// @Produce json
// @Param category query string false "Gallery category"
// @Param limit query int false "Max items (1-100)"
// @Success 200 {array} resdto.GalleryItemResponse
// @Failure 400 {object} httperr.Response
// @Router /gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	limit, err := parseLimitQuery(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
		return
	}

	rms, err := h.galleryUseCase.ListItems(c.Request.Context(), queryPtr(c, "category"), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGalleryItemList(rms))
}

// @Summary List gallery items (admin)
// @Description List all gallery items, newest first
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.GalleryItemResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/gallery [get]
func (h *GalleryHandler) ListAdmin(c *gin.Context) {
	rms, err := h.galleryUseCase.ListItems(c.Request.Context(), nil, nil)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGalleryItemList(rms))
}

// @Summary Create gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGalleryItemRequest true "Create item request"
// @Success 201 {object} resdto.GalleryItemResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/gallery [post]
func (h *GalleryHandler) Create(c *gin.Context) {
	var req reqdto.CreateGalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.galleryUseCase.CreateItem(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid gallery item data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGalleryItemRM(created))
}

// @Summary Update gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body reqdto.UpdateGalleryItemRequest true "Update item request"
// @Success 200 {object} resdto.GalleryItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/gallery/{id} [patch]
func (h *GalleryHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateGalleryItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	rm, err := h.galleryUseCase.UpdateItem(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrGalleryItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Gallery item not found", nil)
		case errors.Is(err, usecase.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid gallery item data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGalleryItemRM(rm))
}

// @Summary Delete gallery item
// @Tags gallery
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.galleryUseCase.DeleteItem(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrGalleryItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Gallery item not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
