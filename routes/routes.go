package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"campusspots/handlers"
	"campusspots/middleware"
)

// RegisterClassroomRoutes registers classroom browse and search endpoints.
func RegisterClassroomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/classrooms")
	{
		api.GET("", hb.Classroom.ListClassroomsHandler)
		api.POST("/search", hb.Classroom.SearchClassroomsHandler)
	}
}

// RegisterStudySpotRoutes registers study spot endpoints, including the
// per-spot occupancy view fed by check-ins.
func RegisterStudySpotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/studyspots")
	{
		api.GET("", hb.StudySpot.ListStudySpotsHandler)
		api.GET("/random", hb.StudySpot.RandomStudySpotHandler)
		api.POST("/search", hb.StudySpot.SearchStudySpotsHandler)
		api.GET("/:id/occupancy", hb.CheckIn.SpotOccupancyHandler)
	}
}

// RegisterSearchRoutes registers the cached-result hand-off endpoint used by
// the loading page.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.GET("/results/:resultId", hb.SearchResult.GetSearchResultHandler)
	}
}

// RegisterCheckInRoutes registers the crowd-sourced check-in endpoint.
func RegisterCheckInRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/checkins", hb.CheckIn.SubmitCheckInHandler)
}

// RegisterCampusRoutes registers the weather, events, and sensor endpoints.
func RegisterCampusRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/weather/recommendations", hb.Weather.RecommendationsHandler)
	r.GET("/api/events", hb.Calendar.UpcomingEventsHandler)

	sensors := r.Group("/api/sensors")
	{
		sensors.GET("", hb.Sensor.LiveReadingsHandler)
		sensors.POST("/:unitId", hb.Sensor.IngestReadingHandler)
	}
}

// RegisterAdminRoutes sets up the dataset import endpoints behind the admin
// key check.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.POST("/classrooms/import", hb.Admin.ImportClassroomsHandler)
		adminGroup.POST("/studyspots/import", hb.Admin.ImportStudySpotsHandler)
	}
}

// RegisterHealthRoute registers the dependency health endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Admin-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterClassroomRoutes(r, hb)
	RegisterStudySpotRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterCheckInRoutes(r, hb)
	RegisterCampusRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
