package handler

import (
	"log/slog"
	"net/http"

	"todo_tracker/internal/model"
	"todo_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the caller's own account
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{service: s, logger: logger}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	user, err := h.service.GetSelf(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	var req model.PasswordChangeRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), caller, req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterUserRoutes registers account routes
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	userRoutes := rg.Group("/users")
	userRoutes.Use(authMW)
	{
		userRoutes.GET("/user", h.GetUser)
		userRoutes.PUT("/password", h.ChangePassword)
	}
}
