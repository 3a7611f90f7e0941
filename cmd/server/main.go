package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo_tracker/internal/config"
	"todo_tracker/internal/handler"
	"todo_tracker/internal/repository"
	"todo_tracker/internal/service"
	"todo_tracker/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, cfg.DB, cfg.ConnectRetries, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}
	logger.Info("schema migrated")

	// --- Wiring ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := repository.NewUserRepository(dbPool)
	todoRepo := repository.NewTodoRepository(dbPool)

	authService := service.NewAuthService(userRepo, jwtUtil, logger)
	if err := authService.SeedFromFile(ctx, cfg.SeedUsersPath); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	router := handler.NewRouter(handler.Services{
		Auth:  authService,
		Todos: service.NewTodoService(todoRepo),
		Admin: service.NewAdminService(todoRepo),
		Users: service.NewUserService(userRepo),
	}, jwtUtil, logger)

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.ServerPort, "token_ttl", cfg.TokenTTL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exiting")
}
