package routes

import (
	"glucomate/internal/controllers"
	"glucomate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController) {
	authRoutesPublic := router.Group("/auth")
	{
		authRoutesPublic.POST("/signup", authController.Signup)
		authRoutesPublic.POST("/login", authController.Login)
	}
	authRoutesPrivate := router.Group("/auth")
	authRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		authRoutesPrivate.GET("/me", authController.GetCurrentUser)
	}
}
