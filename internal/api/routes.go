package api

import (
	"ahmadaybb/exercise-tracker/internal/service"
	"ahmadaybb/exercise-tracker/web"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthCheck reports whether the backing store is reachable.
type HealthCheck func(ctx context.Context) error

// Services bundles the dependencies the HTTP surface needs.
// ExportService and Health may be nil.
type Services struct {
	UserService     service.UserService
	ExerciseService service.ExerciseService
	LogService      service.LogService
	ExportService   service.ExportService
	Health          HealthCheck
}

func SetupRoutes(router *gin.Engine, services Services) {
	userHandler := NewUserHandler(services.UserService)
	exerciseHandler := NewExerciseHandler(services.ExerciseService)
	logHandler := NewLogHandler(services.LogService, services.ExportService)

	router.Use(RequestIDMiddleware(), RequestLoggerMiddleware(), MetricsMiddleware(), CORSMiddleware())

	indexPage := web.IndexHTML()
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
	})
	router.StaticFS("/public", http.FS(web.Static()))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/healthz", healthHandler(services.Health))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		usersGroup := apiGroup.Group("/users")
		{
			// GET /api/users
			usersGroup.GET("", userHandler.ListUsers)
			// POST /api/users
			usersGroup.POST("", userHandler.CreateUser)
			// POST /api/users/{_id}/exercises
			usersGroup.POST("/:_id/exercises", exerciseHandler.RecordExercise)
			// GET /api/users/{_id}/logs
			usersGroup.GET("/:_id/logs", logHandler.GetLogs)
			// POST /api/users/{_id}/logs/export
			usersGroup.POST("/:_id/logs/export", logHandler.ExportLogs)
		}
	}
}

func healthHandler(check HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
