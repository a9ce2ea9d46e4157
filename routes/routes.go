package routes

import (
	"time"

	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services and handlers over the given database handle
// and day-boundary zone. Tests pass their own in-memory handle here.
func SetupRouter(db *gorm.DB, loc *time.Location) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	hub := services.NewRealtimeHub()
	summarySvc := services.NewSummaryService(db)
	goalSvc := services.NewGoalService(db)

	authCtl := controllers.NewAuthController(services.NewAuthService(db))
	mealCtl := controllers.NewMealController(services.NewMealService(db), summarySvc, hub, loc)
	waterCtl := controllers.NewWaterController(services.NewWaterService(db), summarySvc, hub, loc)
	summaryCtl := controllers.NewSummaryController(summarySvc, goalSvc, loc)
	goalCtl := controllers.NewGoalController(goalSvc)
	profileCtl := controllers.NewProfileController(services.NewProfileService(db))
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/dashboard/today", summaryCtl.GetToday)
		api.GET("/insights/week", summaryCtl.GetWeekInsights)

		api.POST("/meals", mealCtl.LogMeal)
		api.GET("/meals", mealCtl.ListMeals)
		api.GET("/meals/:id", mealCtl.GetMeal)
		api.DELETE("/meals/:id", mealCtl.DeleteMeal)

		api.POST("/water", waterCtl.AddWater)
		api.GET("/water", waterCtl.ListWater)

		api.GET("/goals", goalCtl.GetGoals)
		api.PUT("/goals", goalCtl.UpdateGoals)

		api.GET("/profile", profileCtl.GetProfile)
		api.PUT("/profile", profileCtl.UpdateProfile)

		api.GET("/ws", realtimeCtl.SummariesWS)
	}

	return r
}
