package handler

import (
	"log/slog"
	"net/http"

	"todo_tracker/internal/model"
	"todo_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and token requests
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: s, logger: logger}
}

// Register creates a user. 201 with no body.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.service.Register(c.Request.Context(), req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusCreated)
}

type tokenForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Login exchanges form credentials for a bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var form tokenForm
	if err := c.ShouldBind(&form); err != nil {
		respondValidation(c, "body", err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/", h.Register)
		authGroup.POST("/token", h.Login)
	}
}
