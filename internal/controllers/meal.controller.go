package controllers

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"glucomate/internal/cache"
	"glucomate/internal/models"
	"glucomate/internal/repository"
	"glucomate/internal/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	repo  repository.MealRepository
	ai    *services.AIService
	cache *cache.RedisClient
}

// NewMealController accepts a nil cache; meal summaries then always
// hit the database.
func NewMealController(repo repository.MealRepository, ai *services.AIService, redisCache *cache.RedisClient) *MealController {
	return &MealController{repo: repo, ai: ai, cache: redisCache}
}

// AddMeal godoc
// @Summary Log a meal
// @Description Analyze the meal with the AI service and store it with estimated nutrition
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param meal body models.AddMealRequest true "Meal data"
// @Success 201 {object} map[string]interface{} "Meal added successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Analysis or persistence failed"
// @Router /meals/add [post]
func (mc *MealController) AddMeal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	var req models.AddMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	nutrition, err := mc.ai.AnalyzeMeal(c.Request.Context(), req.MealType, req.MealText, req.ImageBase64)
	if err != nil {
		// Nothing is persisted when the analysis fails.
		respondAIError(c, err)
		return
	}

	meal := models.Meal{
		UserID:   userID.(uint),
		MealType: req.MealType,
		MealText: req.MealText,
		Calories: nutrition.Calories,
		Carbs:    nutrition.Carbs,
		Protein:  nutrition.Protein,
		Fat:      nutrition.Fat,
		Sugar:    nutrition.Sugar,
		Fiber:    nutrition.Fiber,
		Impact:   nutrition.Impact,
		Notes:    nutrition.Notes,
	}

	if err := mc.repo.Create(&meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save meal",
			"error":   err.Error(),
		})
		return
	}

	mc.invalidateSummary(userID.(uint))

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal added successfully",
		"data":    meal,
	})
}

// GetMeals godoc
// @Summary List logged meals
// @Description Retrieve the user's meals newest first, with optional type and day-window filters
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Param mealType query string false "Filter by meal type"
// @Param days query int false "Only meals from the last N days"
// @Success 200 {object} map[string]interface{} "Meals retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve meals"
// @Router /meals [get]
func (mc *MealController) GetMeals(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	page, limit := paginationParams(c)
	mealType := c.Query("mealType")

	var since *time.Time
	if days, err := strconv.Atoi(c.Query("days")); err == nil && days > 0 {
		cutoff := time.Now().AddDate(0, 0, -days)
		since = &cutoff
	}

	meals, err := mc.repo.FindByUserID(userID.(uint), mealType, since, (page-1)*limit, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve meals",
			"error":   err.Error(),
		})
		return
	}

	total, err := mc.repo.CountByUserID(userID.(uint), mealType, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve meals",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meals retrieved successfully",
		"data": gin.H{
			"meals":      meals,
			"pagination": paginationEnvelope(page, limit, total),
		},
	})
}

// GetMealSummary godoc
// @Summary Get a day's nutrition totals
// @Description Sum calories and macros over one local calendar day (today by default)
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day in YYYY-MM-DD format"
// @Success 200 {object} map[string]interface{} "Summary retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Failed to compute summary"
// @Router /meals/summary [get]
func (mc *MealController) GetMealSummary(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	day := time.Now()
	if dateParam := c.Query("date"); dateParam != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid date",
				"error":   "Use YYYY-MM-DD format",
			})
			return
		}
		day = parsed
	}

	dayKey := day.Format("2006-01-02")
	isToday := dayKey == time.Now().Format("2006-01-02")

	if mc.cache != nil && isToday {
		if cached, err := mc.cache.GetDailySummary(userID.(uint), dayKey); err != nil {
			log.Printf("Summary cache read failed for user %d: %v", userID.(uint), err)
		} else if cached != nil {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Summary retrieved successfully",
				"data": gin.H{
					"date":    dayKey,
					"summary": cached,
				},
			})
			return
		}
	}

	start, end := services.DayBounds(day)
	summary, err := mc.repo.SummarizeByDateRange(userID.(uint), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute summary",
			"error":   err.Error(),
		})
		return
	}

	if mc.cache != nil && isToday {
		if err := mc.cache.StoreDailySummary(userID.(uint), dayKey, summary); err != nil {
			log.Printf("Summary cache write failed for user %d: %v", userID.(uint), err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summary retrieved successfully",
		"data": gin.H{
			"date":    dayKey,
			"summary": summary,
		},
	})
}

func (mc *MealController) invalidateSummary(userID uint) {
	if mc.cache == nil {
		return
	}
	day := time.Now().Format("2006-01-02")
	if err := mc.cache.InvalidateDailySummary(userID, day); err != nil {
		log.Printf("Summary cache invalidation failed for user %d: %v", userID, err)
	}
}

func paginationParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}
	return page, limit
}

func paginationEnvelope(page, limit int, total int64) gin.H {
	return gin.H{
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": int(math.Ceil(float64(total) / float64(limit))),
	}
}
