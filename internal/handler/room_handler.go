package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arkagme/meeting-room-api/internal/application"
	"github.com/arkagme/meeting-room-api/internal/platform/response"
)

// RoomHandler handles HTTP requests for room browsing and availability.
type RoomHandler struct {
	service *application.RoomService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(service *application.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// RegisterRoutes registers the room routes on the given router group.
func (h *RoomHandler) RegisterRoutes(r *gin.RouterGroup) {
	rooms := r.Group("/api/rooms")
	{
		rooms.GET("", h.ListRooms)
		rooms.GET("/:roomId/availability", h.GetAvailability)
	}
}

// ListRooms handles GET /api/rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	result, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetAvailability handles GET /api/rooms/:roomId/availability?date=YYYY-MM-DD.
func (h *RoomHandler) GetAvailability(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("roomId"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	dateParam := c.Query("date")
	if dateParam == "" {
		response.BadRequest(c, "date parameter is required")
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
	if err != nil {
		response.BadRequest(c, "date must be in YYYY-MM-DD format")
		return
	}

	result, err := h.service.GetRoomAvailability(c.Request.Context(), roomID, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
