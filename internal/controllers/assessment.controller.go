package controllers

import (
	"fmt"
	"net/http"

	"glucomate/internal/models"
	"glucomate/internal/repository"
	"glucomate/internal/services"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	repo repository.AssessmentRepository
	ai   *services.AIService
}

func NewAssessmentController(repo repository.AssessmentRepository, ai *services.AIService) *AssessmentController {
	return &AssessmentController{repo: repo, ai: ai}
}

// SubmitAssessment godoc
// @Summary Submit a health questionnaire
// @Description Store a new health assessment with risk level pending prediction
// @Tags assessment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assessment body models.SubmitAssessmentRequest true "Questionnaire data"
// @Success 201 {object} map[string]interface{} "Assessment submitted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to save assessment"
// @Router /assessment/submit [post]
func (ac *AssessmentController) SubmitAssessment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	var req models.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	assessment := models.HealthAssessment{
		UserID:        userID.(uint),
		Age:           req.Age,
		Gender:        req.Gender,
		Height:        req.Height,
		Weight:        req.Weight,
		FamilyHistory: *req.FamilyHistory,
		Activity:      req.Activity,
		Smoking:       *req.Smoking,
		Alcohol:       req.Alcohol,
		Diet:          req.Diet,
		Sleep:         req.Sleep,
		RiskLevel:     models.RiskPending,
	}
	assessment.SetSymptoms(req.Symptoms)

	if err := ac.repo.Create(&assessment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save assessment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Assessment submitted successfully",
		"data":    assessment.ToResponse(),
	})
}

// Predict godoc
// @Summary Run the AI risk prediction for an assessment
// @Description Send the assessment to the AI service and store the estimated risk level
// @Tags assessment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param predict body models.PredictRequest true "Assessment ID"
// @Success 200 {object} map[string]interface{} "Prediction completed"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Assessment not found"
// @Failure 500 {object} map[string]interface{} "Prediction failed"
// @Router /assessment/predict [post]
func (ac *AssessmentController) Predict(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	assessment, err := ac.repo.FindByIDAndUserID(req.AssessmentID, userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Assessment not found",
			"error":   "No assessment exists with the provided ID for this user",
		})
		return
	}

	result, err := ac.ai.PredictRisk(c.Request.Context(), assessment)
	if err != nil {
		// The assessment stays Pending; the caller may retry.
		respondAIError(c, err)
		return
	}

	aiReason := fmt.Sprintf("%s\n\nLifestyle Tips: %s", result.Explanation, result.Tips)
	if err := ac.repo.UpdateRisk(assessment.ID, result.Risk, aiReason); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update assessment",
			"error":   err.Error(),
		})
		return
	}

	assessment.RiskLevel = result.Risk
	assessment.AIReason = aiReason

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Prediction completed",
		"data": gin.H{
			"assessment":  assessment.ToResponse(),
			"risk":        result.Risk,
			"explanation": result.Explanation,
			"tips":        result.Tips,
		},
	})
}

// GetLatestAssessment godoc
// @Summary Get the most recent assessment
// @Description Retrieve the newest assessment for the authenticated user
// @Tags assessment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Assessment retrieved successfully"
// @Failure 404 {object} map[string]interface{} "No assessment found"
// @Router /assessment/latest [get]
func (ac *AssessmentController) GetLatestAssessment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	assessment, err := ac.repo.FindLatestByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No assessment found",
			"error":   "Complete the questionnaire first",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Assessment retrieved successfully",
		"data":    assessment.ToResponse(),
	})
}

// GetAssessmentHistory godoc
// @Summary List all assessments
// @Description Retrieve every assessment for the authenticated user, newest first
// @Tags assessment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Assessments retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve assessments"
// @Router /assessment/history [get]
func (ac *AssessmentController) GetAssessmentHistory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	assessments, err := ac.repo.FindAllByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve assessments",
			"error":   err.Error(),
		})
		return
	}

	responses := make([]models.AssessmentResponse, 0, len(assessments))
	for i := range assessments {
		responses = append(responses, assessments[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Assessments retrieved successfully",
		"data":    responses,
	})
}
