package controllers

import (
	"log"
	"net/http"
	"time"

	"glucomate/internal/models"
	"glucomate/internal/repository"
	"glucomate/internal/services"

	"github.com/gin-gonic/gin"
)

// Chat turns older than this are purged before any read or write of a
// user's conversation.
const chatRetention = 6 * time.Hour

type ChatController struct {
	repo           repository.ChatRepository
	contextBuilder *services.ContextBuilder
	ai             *services.AIService
}

func NewChatController(repo repository.ChatRepository, contextBuilder *services.ContextBuilder, ai *services.AIService) *ChatController {
	return &ChatController{repo: repo, contextBuilder: contextBuilder, ai: ai}
}

// sweepExpired enforces the retention window for one user. A sweep
// failure must not block the request it guards, so it is only logged.
func (cc *ChatController) sweepExpired(userID uint) {
	cutoff := time.Now().Add(-chatRetention)
	if err := cc.repo.DeleteOlderThan(userID, cutoff); err != nil {
		log.Printf("Chat retention sweep failed for user %d: %v", userID, err)
	}
}

// SendMessage godoc
// @Summary Ask the AI assistant a question
// @Description Build the user's health context, get an AI answer, and store the conversation turn
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chat body models.ChatRequest true "Question"
// @Success 200 {object} map[string]interface{} "Chat response received"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Context assembly or AI call failed"
// @Router /chat [post]
func (cc *ChatController) SendMessage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	cc.sweepExpired(userID.(uint))

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	userContext, err := cc.contextBuilder.Build(c.Request.Context(), userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load user context",
			"error":   err.Error(),
		})
		return
	}

	answer, err := cc.ai.Chat(c.Request.Context(), req.Question, userContext)
	if err != nil {
		respondAIError(c, err)
		return
	}

	chat := models.Chat{
		UserID:   userID.(uint),
		Question: req.Question,
		Answer:   answer,
	}

	// The answer was already produced; a failed write loses the turn
	// rather than rolling anything back.
	if err := cc.repo.Create(&chat); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save chat",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Chat response received",
		"data":    chat,
	})
}

// GetHistory godoc
// @Summary Get conversation history
// @Description Retrieve the user's chat turns newest first, after the retention sweep
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} map[string]interface{} "Chat history retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve chat history"
// @Router /chat [get]
func (cc *ChatController) GetHistory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	cc.sweepExpired(userID.(uint))

	page, limit := paginationParams(c)

	chats, err := cc.repo.FindByUserID(userID.(uint), (page-1)*limit, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve chat history",
			"error":   err.Error(),
		})
		return
	}

	total, err := cc.repo.CountByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve chat history",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Chat history retrieved successfully",
		"data": gin.H{
			"chats":      chats,
			"pagination": paginationEnvelope(page, limit, total),
		},
	})
}
