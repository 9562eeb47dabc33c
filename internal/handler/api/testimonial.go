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

type TestimonialHandler struct {
	testimonialUseCase usecase.TestimonialUseCase
}

func NewTestimonialHandler(testimonialUseCase usecase.TestimonialUseCase) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialUseCase: testimonialUseCase,
	}
}

// @Summary List testimonials
// @Description List testimonials, newest first, with an optional limit
// @Tags testimonials
// @Produce json
// @Param limit query int false "Max items (1-100)"
// @Success 200 {array} resdto.TestimonialResponse
// @Failure 400 {object} httperr.Response
// @Router /testimonials [get]
func (h *TestimonialHandler) List(c *gin.Context) {
	limit, err := parseLimitQuery(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
		return
	}

	rms, err := h.testimonialUseCase.ListTestimonials(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTestimonialList(rms))
}

// @Summary List testimonials (admin)
// @Description List all testimonials, newest first
// @Tags testimonials
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TestimonialResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/testimonials [get]
func (h *TestimonialHandler) ListAdmin(c *gin.Context) {
	rms, err := h.testimonialUseCase.ListTestimonials(c.Request.Context(), nil)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTestimonialList(rms))
}

// @Summary Create testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTestimonialRequest true "Create testimonial request"
// @Success 201 {object} resdto.TestimonialResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/testimonials [post]
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req reqdto.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.testimonialUseCase.CreateTestimonial(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTestimonialRM(created))
}

// @Summary Update testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Param request body reqdto.UpdateTestimonialRequest true "Update testimonial request"
// @Success 200 {object} resdto.TestimonialResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/testimonials/{id} [patch]
func (h *TestimonialHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateTestimonialRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	rm, err := h.testimonialUseCase.UpdateTestimonial(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTestimonialNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Testimonial not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTestimonialRM(rm))
}

// @Summary Delete testimonial
// @Tags testimonials
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.testimonialUseCase.DeleteTestimonial(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrTestimonialNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Testimonial not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
