package httptransport

import (
	"log/slog"

	"github.com/akulov/taskboard/internal/transport/http/handler"
	"github.com/akulov/taskboard/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	resetHandler *handler.ResetHandler,
	projectHandler *handler.ProjectHandler,
	taskHandler *handler.TaskHandler,
	jwtKey []byte,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	// Public auth routes
	auth := r.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/forgot-password", resetHandler.ForgotPassword)
	auth.GET("/validate-reset-token/:token", resetHandler.ValidateToken)
	auth.POST("/reset-password/:token", resetHandler.ResetPassword)

	authMW := middleware.Auth(jwtKey)

	// Protected project routes
	projects := r.Group("/projects", authMW)
	projects.GET("", projectHandler.List)
	projects.POST("", projectHandler.Create)
	projects.GET("/:id", projectHandler.GetByID)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)
	projects.GET("/:id/tasks", taskHandler.List)
	projects.POST("/:id/tasks", taskHandler.Create)

	// Protected task routes; ownership is resolved through the parent project
	tasks := r.Group("/tasks", authMW)
	tasks.GET("/:id", taskHandler.GetByID)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	return r
}
