package app

import (
	"cogscreen_backend/docs"
	"cogscreen_backend/internal/config"
	"cogscreen_backend/internal/middleware"
	"cogscreen_backend/internal/model"
	"cogscreen_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/catalog/questions", c.catalog.Questions)
	}

	// Authenticated staff routes.
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		api.GET("/me", c.auth.Me)

		api.POST("/patients", c.patient.Register)
		api.GET("/patients", c.patient.List)
		api.GET("/patients/:id", c.patient.Get)

		api.POST("/assessments", c.assessment.Submit)
		api.GET("/assessments", c.assessment.List)
		api.POST("/assessments/drafts", c.assessment.CreateDraft)
		api.GET("/assessments/:id", c.assessment.Get)
		api.GET("/assessments/number/:number", c.assessment.GetByNumber)
		api.POST("/assessments/:id/responses", c.assessment.RecordResponse)
		api.GET("/assessments/:id/responses", c.assessment.ListResponses)
		api.POST("/assessments/:id/submit", c.assessment.SubmitDraft)
		api.GET("/assessments/:id/scores", c.assessment.GetScores)

		// Clinical review is reviewer territory; archival is administrative.
		api.PUT("/assessments/:id/review",
			middleware.RoleMiddleware(model.Reviewer), c.review.Save)
		api.POST("/assessments/:id/archive",
			middleware.RoleMiddleware(model.Admin), c.review.Archive)
	}
}
