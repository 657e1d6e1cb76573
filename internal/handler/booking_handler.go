package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arkagme/meeting-room-api/internal/application"
	"github.com/arkagme/meeting-room-api/internal/platform/response"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/bookings/today", h.GetTodayBookings)
	r.DELETE("/api/bookings/:bookingId", h.CancelBooking)
	r.GET("/api/users/:userId/bookings", h.GetUserBookings)
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// CancelBooking handles DELETE /api/bookings/:bookingId. The requesting user
// is carried in the body; only the owner may cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	var body struct {
		UserID uuid.UUID `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.CancelBooking(c.Request.Context(), bookingID, body.UserID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "booking cancelled successfully"})
}

// GetUserBookings handles GET /api/users/:userId/bookings. An unknown user
// gets an empty list, not an error.
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "invalid user ID")
		return
	}

	result, err := h.service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetTodayBookings handles GET /api/bookings/today.
func (h *BookingHandler) GetTodayBookings(c *gin.Context) {
	result, err := h.service.GetTodayBookings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
