package routes

import (
	"github.com/KanannSharmaa25/ai-life-analytics/config"
	"github.com/KanannSharmaa25/ai-life-analytics/controllers"
	"github.com/KanannSharmaa25/ai-life-analytics/middlewares"
	"github.com/KanannSharmaa25/ai-life-analytics/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Dashboard client origin
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", controllers.Home)

	// Entry CRUD
	r.POST("/add-entry", controllers.AddEntry)
	r.GET("/entries", controllers.GetEntries)
	r.GET("/entries/by-date/:date", controllers.GetEntriesByDate)
	r.DELETE("/entries/:id", controllers.DeleteEntry)
	r.DELETE("/entries", controllers.DeleteAllEntries)

	// Analytics
	analytics := controllers.NewAnalyticsController(services.NewAnalyticsService(config.DB))
	r.GET("/ai/insights", analytics.GetInsights)

	analysis := r.Group("/analysis")
	{
		analysis.GET("/sleep-productivity-heatmap", analytics.GetHeatmap)
		analysis.GET("/best-sleep-range", analytics.GetBestSleepRange)
		analysis.GET("/burnout", analytics.GetBurnout)
		analysis.GET("/burnout-score", analytics.GetBurnoutScore)
		analysis.GET("/burnout-trend", analytics.GetBurnoutTrend)
		analysis.GET("/mood-productivity-correlation", analytics.GetMoodProductivityCorrelation)
		analysis.GET("/recommendations", analytics.GetRecommendations)
	}

	// ML
	ml := r.Group("/ml")
	{
		ml.GET("/predict", controllers.Predict)
		ml.GET("/clusters", controllers.Clusters)
	}

	// Export
	export := r.Group("/export")
	{
		export.GET("/csv", controllers.ExportCSV)
		export.GET("/json", controllers.ExportJSON)
	}

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
	}

	return r
}
