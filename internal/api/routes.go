package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles what the handlers need.
type Services struct {
	Workouts        service.WorkoutService
	Profiles        service.ProfileService
	PlannedWorkouts service.PlannedWorkoutService
	Insights        service.InsightsService
	Exports         service.ExportService
}

func SetupRoutes(
	router *gin.Engine,
	allowedOrigins []string,
	resolver UserResolver,
	services Services,
) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	workoutHandler := NewWorkoutHandler(services.Workouts)
	profileHandler := NewProfileHandler(services.Profiles)
	plannedHandler := NewPlannedWorkoutHandler(services.PlannedWorkouts)
	insightsHandler := NewInsightsHandler(services.Insights)
	exportHandler := NewExportHandler(services.Exports)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello from Fitness Tracker API!"})
	})
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	protected := router.Group("/api/v1")
	protected.Use(AuthMiddleware(resolver))
	{
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.LogWorkout)
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
		}

		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.SaveProfile)

		plannedGroup := protected.Group("/planned-workouts")
		{
			plannedGroup.POST("", plannedHandler.CreatePlannedWorkout)
			plannedGroup.GET("", plannedHandler.ListPlannedWorkouts)
			plannedGroup.PUT("/:id", plannedHandler.UpdatePlannedWorkout)
			plannedGroup.DELETE("/:id", plannedHandler.DeletePlannedWorkout)
			plannedGroup.POST("/:id/complete", plannedHandler.CompletePlannedWorkout)
		}

		insightsGroup := protected.Group("/insights")
		{
			insightsGroup.GET("", insightsHandler.GetInsights)
			insightsGroup.GET("/summary", insightsHandler.GetSummary)
		}

		protected.POST("/export", exportHandler.ExportWorkouts)
	}
}
