package http

import (
	"taskdeck/internal/config"
	"taskdeck/internal/http/handlers"
	"taskdeck/internal/http/middleware"
	"taskdeck/internal/repository"
	"taskdeck/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires repositories, services and handlers onto the
// engine. Everything hangs off the one Config built at startup; no
// package holds ambient state.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	hasher := service.NewPasswordHasher()
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(userRepo, taskRepo, hasher, tokens)
	taskSvc := service.NewTaskService(taskRepo)

	h := handlers.NewHandler(authSvc, taskSvc)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	auth := middleware.Auth(tokens)

	// Account
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/user", auth, h.Me)
	r.DELETE("/user", auth, h.DeleteAccount)

	// Tasks, all gated behind the bearer token
	tasks := r.Group("/tasks")
	tasks.Use(auth)
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.PATCH("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}
