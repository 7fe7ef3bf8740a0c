package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"

	"github.com/david-morgenstern/thundervarg/internal/config"
	"github.com/david-morgenstern/thundervarg/internal/db"
	"github.com/david-morgenstern/thundervarg/internal/handler"
	"github.com/david-morgenstern/thundervarg/internal/service"
)

// @title Todo API
// @version 1.0
// @description CRUD backend for users and todo items with bearer-token auth.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	dsn, err := db.BuildPostgresURL(cfg.Postgres)
	if err != nil {
		slog.Error("postgres config invalid", "error", err)
		os.Exit(1)
	}

	if err := runMigrations(cfg.Server.MigrationsPath, dsn); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		slog.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := &db.Postgres{Pool: pool}

	tokens, err := service.NewTokenService(cfg.Auth)
	if err != nil {
		slog.Error("token config invalid", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(store, tokens)
	userService := service.NewUserService(store)
	todoService := service.NewTodoService(store)

	router := buildRouter(cfg, authService, userService, todoService)

	httpServer := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Server.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownCh

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}

func buildRouter(cfg config.Config, auth *service.AuthService, users *service.UserService, todos *service.TodoService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(handler.RequestIDMiddleware())
	if len(cfg.CORS.AllowedOrigins) > 0 {
		router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins))
	}

	authHandler := handler.NewAuthHandler(auth)
	userHandler := handler.NewUserHandler(users)
	todoHandler := handler.NewTodoHandler(todos)

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	router.POST("/token", authHandler.Token)

	private := router.Group("/private")
	private.Use(handler.AuthMiddleware(auth))
	private.GET("/", authHandler.Private)

	userRoutes := router.Group("/users")
	userRoutes.GET("/", userHandler.List)
	userRoutes.GET("/me", handler.AuthMiddleware(auth), authHandler.Me)
	userRoutes.GET("/:id", userHandler.Get)
	userRoutes.POST("/", userHandler.Create)
	userRoutes.DELETE("/:id", userHandler.Delete)

	todoRoutes := router.Group("/todos")
	todoRoutes.GET("/", todoHandler.List)
	todoRoutes.GET("/:id", todoHandler.Get)
	todoRoutes.POST("/", todoHandler.Create)
	todoRoutes.PATCH("/:id", todoHandler.Update)
	todoRoutes.DELETE("/:id", todoHandler.Delete)

	router.GET("/user-todos/:user_id", todoHandler.ListByOwner)

	return router
}

func runMigrations(path, dsn string) error {
	m, err := migrate.New("file://"+path, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	slog.Info("migrations applied")
	return nil
}
