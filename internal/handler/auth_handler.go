package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arkagme/meeting-room-api/internal/application"
	"github.com/arkagme/meeting-room-api/internal/platform/response"
)

// AuthHandler handles HTTP requests for login.
type AuthHandler struct {
	service *application.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *application.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRoutes registers the auth routes on the given router group.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/auth/login", h.Login)
}

// Login handles POST /api/auth/login. Upserts the user by email.
func (h *AuthHandler) Login(c *gin.Context) {
	var req application.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
