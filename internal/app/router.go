package app

import (
	"habit_tracker_backend/docs"
	"habit_tracker_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	habits := router.Group("/habits")
	{
		habits.GET("", c.habit.GetHabits)
		habits.POST("", c.habit.CreateHabit)
		habits.GET("/:id", c.habit.GetHabit)
		habits.PUT("/:id", c.habit.UpdateHabit)
		habits.DELETE("/:id", c.habit.DeleteHabit)
		habits.POST("/:id/complete", c.habit.CompleteHabit)
		habits.GET("/:id/entries", c.habit.GetHabitEntries)
	}
}
