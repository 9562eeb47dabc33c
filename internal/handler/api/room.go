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

type RoomHandler struct {
	roomUseCase usecase.RoomUseCase
}

func NewRoomHandler(roomUseCase usecase.RoomUseCase) *RoomHandler {
	return &RoomHandler{
		roomUseCase: roomUseCase,
	}
}

// @Summary List rooms
// @Description List all rooms ordered by nightly rate
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rms, err := h.roomUseCase.ListRooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomList(rms))
}

// @Summary Get room by slug
// @Description Get a room by its URL slug
// @Tags rooms
// @Produce json
// @Param slug path string true "Room slug"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{slug} [get]
func (h *RoomHandler) GetBySlug(c *gin.Context) {
	rm, err := h.roomUseCase.GetRoomBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRM(rm))
}

// @Summary List rooms (admin)
// @Description List all rooms ordered by creation time
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/rooms [get]
func (h *RoomHandler) ListAdmin(c *gin.Context) {
	rms, err := h.roomUseCase.ListRoomsAdmin(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomList(rms))
}

// @Summary Get room
// @Description Get a room by ID
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rm, err := h.roomUseCase.GetRoom(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRM(rm))
}

// @Summary Create room
// @Description Create a room; the slug is derived from the name
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Create room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.roomUseCase.CreateRoom(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomRM(created))
}

// @Summary Update room
// @Description Partially update a room; renaming re-derives the slug
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Update room request"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/rooms/{id} [patch]
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	rm, err := h.roomUseCase.UpdateRoom(c.Request.Context(), id, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, usecase.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRM(rm))
}

// @Summary Delete room
// @Description Delete a room by ID
// @Tags rooms
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.roomUseCase.DeleteRoom(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
