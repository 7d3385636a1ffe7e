package routes

import (
	"glucomate/internal/controllers"
	"glucomate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMealRoutes(router *gin.Engine, mealController *controllers.MealController) {
	mealRoutes := router.Group("/meals")
	mealRoutes.Use(middleware.AuthMiddleware())
	{
		mealRoutes.POST("/add", mealController.AddMeal)
		mealRoutes.GET("/", mealController.GetMeals)
		mealRoutes.GET("/summary", mealController.GetMealSummary)
	}
}
