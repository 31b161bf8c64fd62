package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"polymath-backend/internal/shared/middleware"
	"polymath-backend/internal/shared/response"
	"polymath-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	router.GET("/health", healthCheckHandler(c))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupSubjectRoutes(v1, c)
		setupNoteRoutes(v1, c)
	}

	return router
}

func setupSubjectRoutes(v1 *gin.RouterGroup, c *container.Container) {
	subjects := v1.Group("/subjects")
	{
		subjects.GET("", c.SubjectHandler.GetAll)
		subjects.POST("", c.SubjectHandler.Create)
		subjects.GET("/count", c.SubjectHandler.Count)
		subjects.GET("/:id", c.SubjectHandler.GetByID)
		subjects.PUT("/:id", c.SubjectHandler.Update)
		subjects.DELETE("/:id", c.SubjectHandler.Delete)

		// Notes nested under their subject
		subjects.GET("/:id/notes", c.NoteHandler.ListBySubject)
		subjects.POST("/:id/notes", c.NoteHandler.Create)
	}
}

func setupNoteRoutes(v1 *gin.RouterGroup, c *container.Container) {
	notes := v1.Group("/notes")
	{
		notes.GET("/count", c.NoteHandler.Count)
		notes.GET("/:id", c.NoteHandler.GetByID)
		notes.PUT("/:id", c.NoteHandler.Update)
		notes.DELETE("/:id", c.NoteHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", err.Error())
			return
		}

		response.Success(ctx, http.StatusOK, "Success", gin.H{
			"status":   "healthy",
			"app_name": c.Config.App.Name,
			"version":  c.Config.App.Version,
		})
	}
}
