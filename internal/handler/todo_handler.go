package handler

import (
	"log/slog"
	"net/http"

	"todo_tracker/internal/model"
	"todo_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// TodoHandler serves the caller's own todos
type TodoHandler struct {
	service service.TodoService
	logger  *slog.Logger
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(s service.TodoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{service: s, logger: logger}
}

func (h *TodoHandler) ReadAll(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	todos, err := h.service.ListOwned(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

func (h *TodoHandler) ReadTodo(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	todo, err := h.service.GetOwned(c.Request.Context(), caller, todoID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	var req model.TodoRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.service.Create(c.Request.Context(), caller, req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.TodoRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), caller, todoID, req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), caller, todoID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterTodoRoutes registers the owner-scoped routes behind authMW
func (h *TodoHandler) RegisterTodoRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	todoRoutes := rg.Group("")
	todoRoutes.Use(authMW)
	{
		todoRoutes.GET("/todos", h.ReadAll)
		todoRoutes.GET("/todo/:id", h.ReadTodo)
		todoRoutes.POST("/todo", h.CreateTodo)
		todoRoutes.PUT("/todo/:id", h.UpdateTodo)
		todoRoutes.DELETE("/todo/:id", h.DeleteTodo)
	}
}
