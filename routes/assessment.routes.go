package routes

import (
	"glucomate/internal/controllers"
	"glucomate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAssessmentRoutes(router *gin.Engine, assessmentController *controllers.AssessmentController) {
	assessmentRoutes := router.Group("/assessment")
	assessmentRoutes.Use(middleware.AuthMiddleware())
	{
		assessmentRoutes.POST("/submit", assessmentController.SubmitAssessment)
		assessmentRoutes.POST("/predict", assessmentController.Predict)
		assessmentRoutes.GET("/latest", assessmentController.GetLatestAssessment)
		assessmentRoutes.GET("/history", assessmentController.GetAssessmentHistory)
	}
}
