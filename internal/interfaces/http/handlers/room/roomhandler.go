package room

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsportal/opsportal/internal/application/room/usecases"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/utils"
)

type RoomHandler struct {
	roomUC usecases.RoomExecutor
	logger logger.Interface
}

func NewRoomHandler(roomUC usecases.RoomExecutor, logger logger.Interface) *RoomHandler {
	return &RoomHandler{
		roomUC: roomUC,
		logger: logger,
	}
}

// CreateRoom handles POST /rooms
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := utils.BindBody(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create room", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.roomUC.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Room created successfully")
}

// ListRooms handles GET /rooms
func (h *RoomHandler) ListRooms(c *gin.Context) {
	result, err := h.roomUC.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetRoom handles GET /rooms/:id
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, err := utils.ParseUintParam(c, "id", "room")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.roomUC.Get(c.Request.Context(), roomID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateRoom handles PUT /rooms/:id
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	roomID, err := utils.ParseUintParam(c, "id", "room")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRoomRequest
	if err := utils.BindBody(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.roomUC.Update(c.Request.Context(), req.ToCommand(roomID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Room updated successfully", result)
}

// DeleteRoom handles DELETE /rooms/:id
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	roomID, err := utils.ParseUintParam(c, "id", "room")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.roomUC.Delete(c.Request.Context(), roomID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
