package handler

import (
	"log/slog"
	"net/http"

	"todo_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the role-gated routes. The role check itself lives in
// service.AdminService.
type AdminHandler struct {
	service service.AdminService
	logger  *slog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(s service.AdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{service: s, logger: logger}
}

func (h *AdminHandler) ReadAll(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	todos, err := h.service.ListAll(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

func (h *AdminHandler) DeleteTodo(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteAny(c.Request.Context(), caller, todoID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterAdminRoutes registers admin routes
func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	adminRoutes := rg.Group("/admin")
	adminRoutes.Use(authMW)
	{
		adminRoutes.GET("/todo", h.ReadAll)
		adminRoutes.DELETE("/todo/:id", h.DeleteTodo)
	}
}
