package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinicsuite-server/internal/cache"
	"clinicsuite-server/internal/config"
	"clinicsuite-server/internal/enrichment"
	"clinicsuite-server/internal/handlers"
	"clinicsuite-server/internal/middleware"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, companyCache *cache.CompanyCache, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	patientHandler := handlers.NewPatientHandler(db)
	resolver := enrichment.NewResolver(db, companyCache)
	audiometryHandler := handlers.NewAudiometryHandler(db, resolver)

	// Public routes (no session required)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Session-gated pages
	pages := router.Group("/")
	pages.Use(middleware.RequireSession(cfg))
	{
		pages.GET("/patients", patientHandler.List)

		audiometry := pages.Group("/audiometry")
		{
			audiometry.GET("", audiometryHandler.TabPage)
			audiometry.GET("/test", audiometryHandler.TestView)
			audiometry.GET("/summary", audiometryHandler.SummaryView)
			audiometry.GET("/report", audiometryHandler.ReportView)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
