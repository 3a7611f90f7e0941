package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"todo_tracker/internal/middleware"
	"todo_tracker/internal/service"
	"todo_tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

// Services bundles what the router needs
type Services struct {
	Auth  service.AuthService
	Todos service.TodoService
	Admin service.AdminService
	Users service.UserService
}

// NewRouter builds the gin engine with every route registered
func NewRouter(svc Services, jwtUtil *utils.JWTUtil, logger *slog.Logger) *gin.Engine {
	useTagNames()

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			logger.Error("panic recovered",
				"path", c.Request.URL.Path,
				"request_id", c.GetString(middleware.RequestIDKey),
				"panic", recovered)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"detail": fmt.Sprintf("An exception of type %T occurred. Details: %v", recovered, recovered),
			})
		}),
		middleware.CORS(),
	)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome To My Api!"})
	})
	router.GET("/healthy", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Healthy"})
	})

	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	root := router.Group("")

	NewAuthHandler(svc.Auth, logger).RegisterAuthRoutes(root)
	NewTodoHandler(svc.Todos, logger).RegisterTodoRoutes(root, jwtAuthMW)
	NewAdminHandler(svc.Admin, logger).RegisterAdminRoutes(root, jwtAuthMW)
	NewUserHandler(svc.Users, logger).RegisterUserRoutes(root, jwtAuthMW)

	return router
}
