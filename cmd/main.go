package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"glucomate/database"
	"glucomate/docs"
	"glucomate/internal/cache"
	"glucomate/internal/controllers"
	"glucomate/internal/gemini"
	"glucomate/internal/repository"
	"glucomate/internal/services"
	"glucomate/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	err := godotenv.Load("../.env")
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "GlucoMate API"
	docs.SwaggerInfo.Description = "Diabetes risk and AI nutrition assistant API."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to database and run migrations
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	assessmentRepo := repository.NewAssessmentRepository(database.DB)
	mealRepo := repository.NewMealRepository(database.DB)
	chatRepo := repository.NewChatRepository(database.DB)

	// Initialize the completion client
	geminiClient, err := gemini.NewClient()
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}

	aiService := services.NewAIService(geminiClient)
	contextBuilder := services.NewContextBuilder(assessmentRepo, mealRepo, chatRepo)

	// Redis is optional: without it meal summaries always hit the database
	redisCache, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, summary caching disabled: %v", err)
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	// Initialize controllers
	authController := controllers.NewAuthController(userRepo)
	assessmentController := controllers.NewAssessmentController(assessmentRepo, aiService)
	mealController := controllers.NewMealController(mealRepo, aiService, redisCache)
	chatController := controllers.NewChatController(chatRepo, contextBuilder, aiService)

	gin.SetMode(gin.ReleaseMode)
	// Setup Gin router
	router := gin.Default()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "GlucoMate API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Server is running",
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterAssessmentRoutes(router, assessmentController)
	routes.RegisterMealRoutes(router, mealController)
	routes.RegisterChatRoutes(router, chatController)
	routes.RegisterSwaggerRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	// No WriteTimeout: completion calls carry no deadline and may
	// outlive any fixed response window.
	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 16 << 20,
	}

	log.Printf("GlucoMate API Server started successfully on port %s", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
