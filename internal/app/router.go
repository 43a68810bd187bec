package app

import (
	"sync/atomic"
	"time"

	"dsa_roadmap_backend/docs"
	"dsa_roadmap_backend/internal/config"
	"dsa_roadmap_backend/internal/middleware"
	"dsa_roadmap_backend/pkg/monitoring"
	"dsa_roadmap_backend/pkg/security"
	"dsa_roadmap_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	// The limiter is swapped wholesale on config reload.
	var limiter atomic.Value
	limiter.Store(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))
	router.Use(func(c *gin.Context) {
		limiter.Load().(gin.HandlerFunc)(c)
	})
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		limiter.Store(security.RateLimiter(newCfg.RateLimit.MaxRequests, time.Duration(newCfg.RateLimit.WindowMinutes)*time.Minute))
	})

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/pages/*path", c.page.Render)

		api.GET("/profile", c.profile.Get)
		api.DELETE("/profile", c.profile.Clear)
		api.PUT("/profile/theme", c.profile.SetTheme)

		assessment := api.Group("/assessment")
		{
			assessment.POST("/start", c.assessment.Start)
			assessment.GET("/questions", c.assessment.Questions)
			assessment.POST("/submit", c.assessment.Submit)
			assessment.GET("/results", c.assessment.Results)
		}

		roadmap := api.Group("/roadmap")
		{
			roadmap.GET("", c.roadmap.Get)
			roadmap.PATCH("/days", c.roadmap.ToggleDay)
			roadmap.PATCH("/resources", c.roadmap.ToggleResource)
			roadmap.GET("/progress", c.roadmap.Progress)
		}

		api.GET("/resources", c.catalog.ListResources)
		api.POST("/resources/:slug/bookmark", c.catalog.ToggleResourceBookmark)
		api.POST("/resources/:slug/complete", c.catalog.ToggleResourceCompleted)

		api.GET("/blogs", c.catalog.ListBlogs)
		api.POST("/blogs/:slug/bookmark", c.catalog.ToggleBlogBookmark)

		api.GET("/books", c.catalog.ListBooks)
		api.POST("/books/:slug/bookmark", c.catalog.ToggleBookBookmark)

		api.GET("/projects", c.catalog.ListProjects)
		api.PUT("/projects/:slug/progress", c.catalog.SetProjectProgress)

		api.GET("/algorithms", c.catalog.ListAlgorithms)
		api.PUT("/algorithms/:slug/notes", c.catalog.SetAlgorithmNotes)
	}
}
