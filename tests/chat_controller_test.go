package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"glucomate/internal/controllers"
	"glucomate/internal/models"
	"glucomate/internal/services"
	"glucomate/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupChatTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

type chatTestDeps struct {
	chatRepo       *mocks.MockChatRepository
	assessmentRepo *mocks.MockAssessmentRepository
	mealRepo       *mocks.MockMealRepository
	client         *mocks.MockGeminiClient
}

func setupChatControllerWithMocks() (*controllers.ChatController, *chatTestDeps) {
	deps := &chatTestDeps{
		chatRepo:       new(mocks.MockChatRepository),
		assessmentRepo: new(mocks.MockAssessmentRepository),
		mealRepo:       new(mocks.MockMealRepository),
		client:         new(mocks.MockGeminiClient),
	}
	builder := services.NewContextBuilder(deps.assessmentRepo, deps.mealRepo, deps.chatRepo)
	controller := controllers.NewChatController(deps.chatRepo, builder, services.NewAIService(deps.client))
	return controller, deps
}

// expectEmptyContext wires the four context fetches to return a user
// with no assessment, no meals and no prior chats.
func expectEmptyContext(deps *chatTestDeps) {
	deps.assessmentRepo.On("FindLatestByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)
	deps.mealRepo.On("FindRecentByUserID", uint(1), 10).Return([]models.Meal{}, nil)
	deps.mealRepo.On("SummarizeByDateRange", uint(1), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(&models.NutritionSummary{}, nil)
	deps.chatRepo.On("FindRecentByUserID", uint(1), 5).Return([]models.Chat{}, nil)
}

func TestSendMessage(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*chatTestDeps)
		expectedStatus int
		expectedMsg    string
		checkAnswer    func(*testing.T, string)
	}{
		{
			name:        "successful chat turn",
			requestBody: map[string]interface{}{"question": "Can I eat mangoes?"},
			setupMocks: func(deps *chatTestDeps) {
				deps.chatRepo.On("DeleteOlderThan", uint(1), mock.AnythingOfType("time.Time")).Return(nil)
				expectEmptyContext(deps)
				deps.client.On("Complete", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
					Return("**Yes**, in moderation. Mangoes are high in natural sugar.", nil)
				deps.chatRepo.On("Create", mock.AnythingOfType("*models.Chat")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Chat response received",
			checkAnswer: func(t *testing.T, answer string) {
				assert.NotContains(t, answer, "**")
				assert.Contains(t, answer, "Yes, in moderation.")
			},
		},
		{
			name:        "long answers are truncated to 200 words",
			requestBody: map[string]interface{}{"question": "Tell me everything about diabetes"},
			setupMocks: func(deps *chatTestDeps) {
				deps.chatRepo.On("DeleteOlderThan", uint(1), mock.AnythingOfType("time.Time")).Return(nil)
				expectEmptyContext(deps)
				deps.client.On("Complete", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
					Return(strings.Repeat("word ", 250), nil)
				deps.chatRepo.On("Create", mock.AnythingOfType("*models.Chat")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Chat response received",
			checkAnswer: func(t *testing.T, answer string) {
				assert.True(t, strings.HasSuffix(answer, "..."))
				assert.Len(t, strings.Fields(answer), 200)
			},
		},
		{
			name:        "missing question",
			requestBody: map[string]interface{}{},
			setupMocks: func(deps *chatTestDeps) {
				deps.chatRepo.On("DeleteOlderThan", uint(1), mock.AnythingOfType("time.Time")).Return(nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:        "context fetch failure",
			requestBody: map[string]interface{}{"question": "Can I eat mangoes?"},
			setupMocks: func(deps *chatTestDeps) {
				deps.chatRepo.On("DeleteOlderThan", uint(1), mock.AnythingOfType("time.Time")).Return(nil)
				deps.assessmentRepo.On("FindLatestByUserID", uint(1)).Return(nil, errors.New("connection refused"))
				deps.mealRepo.On("FindRecentByUserID", uint(1), 10).Return([]models.Meal{}, nil)
				deps.mealRepo.On("SummarizeByDateRange", uint(1), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
					Return(&models.NutritionSummary{}, nil)
				deps.chatRepo.On("FindRecentByUserID", uint(1), 5).Return([]models.Chat{}, nil)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to load user context",
		},
		{
			name:        "completion failure",
			requestBody: map[string]interface{}{"question": "Can I eat mangoes?"},
			setupMocks: func(deps *chatTestDeps) {
				deps.chatRepo.On("DeleteOlderThan", uint(1), mock.AnythingOfType("time.Time")).Return(nil)
				expectEmptyContext(deps)
				deps.client.On("Complete", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
					Return("", errors.New("upstream unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "AI service request failed",
		},
		{
			name:        "sweep failure does not block the request",
			requestBody: map[string]interface{}{"question": "Can I eat mangoes?"},
			setupMocks: func(deps *chatTestDeps) {
				deps.chatRepo.On("DeleteOlderThan", uint(1), mock.AnythingOfType("time.Time")).Return(errors.New("lock timeout"))
				expectEmptyContext(deps)
				deps.client.On("Complete", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
					Return("Plain answer.", nil)
				deps.chatRepo.On("Create", mock.AnythingOfType("*models.Chat")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Chat response received",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupChatTestRouter()
			controller, deps := setupChatControllerWithMocks()
			tt.setupMocks(deps)

			router.POST("/chat", addAuthMiddleware(1), controller.SendMessage)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, response["message"])

			if tt.checkAnswer != nil {
				data := response["data"].(map[string]interface{})
				tt.checkAnswer(t, data["answer"].(string))
			}

			deps.chatRepo.AssertExpectations(t)
			deps.client.AssertExpectations(t)
		})
	}
}

func TestSendMessageSweepsBeforeAnswering(t *testing.T) {
	router := setupChatTestRouter()
	controller, deps := setupChatControllerWithMocks()

	var sweepCutoff time.Time
	deps.chatRepo.On("DeleteOlderThan", uint(1), mock.AnythingOfType("time.Time")).
		Return(nil).
		Run(func(args mock.Arguments) {
			sweepCutoff = args.Get(1).(time.Time)
		})
	expectEmptyContext(deps)
	deps.client.On("Complete", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return("Plain answer.", nil)
	deps.chatRepo.On("Create", mock.AnythingOfType("*models.Chat")).Return(nil)

	router.POST("/chat", addAuthMiddleware(1), controller.SendMessage)

	body, _ := json.Marshal(map[string]interface{}{"question": "Hello"})
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// The cutoff sits six hours back: a turn from seven hours ago falls
	// before it and a turn from five hours ago falls after it.
	assert.True(t, time.Now().Add(-7*time.Hour).Before(sweepCutoff))
	assert.True(t, time.Now().Add(-5*time.Hour).After(sweepCutoff))
}

func TestGetChatHistory(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*mocks.MockChatRepository)
		expectedStatus int
		expectedMsg    string
		expectedCount  int
	}{
		{
			name:  "history within retention",
			query: "",
			setupMocks: func(repo *mocks.MockChatRepository) {
				repo.On("DeleteOlderThan", uint(1), mock.AnythingOfType("time.Time")).Return(nil)
				chats := []models.Chat{
					{ID: 2, UserID: 1, Question: "Q2", Answer: "A2"},
					{ID: 1, UserID: 1, Question: "Q1", Answer: "A1"},
				}
				repo.On("FindByUserID", uint(1), 0, 50).Return(chats, nil)
				repo.On("CountByUserID", uint(1)).Return(int64(2), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Chat history retrieved successfully",
			expectedCount:  2,
		},
		{
			name:  "empty after sweep",
			query: "",
			setupMocks: func(repo *mocks.MockChatRepository) {
				repo.On("DeleteOlderThan", uint(1), mock.AnythingOfType("time.Time")).Return(nil)
				repo.On("FindByUserID", uint(1), 0, 50).Return([]models.Chat{}, nil)
				repo.On("CountByUserID", uint(1)).Return(int64(0), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Chat history retrieved successfully",
			expectedCount:  0,
		},
		{
			name:  "database failure",
			query: "",
			setupMocks: func(repo *mocks.MockChatRepository) {
				repo.On("DeleteOlderThan", uint(1), mock.AnythingOfType("time.Time")).Return(nil)
				repo.On("FindByUserID", uint(1), 0, 50).Return([]models.Chat{}, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to retrieve chat history",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupChatTestRouter()
			controller, deps := setupChatControllerWithMocks()
			tt.setupMocks(deps.chatRepo)

			router.GET("/chat", addAuthMiddleware(1), controller.GetHistory)

			req := httptest.NewRequest(http.MethodGet, "/chat"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, response["message"])

			if tt.expectedStatus == http.StatusOK {
				data := response["data"].(map[string]interface{})
				chats := data["chats"].([]interface{})
				assert.Len(t, chats, tt.expectedCount)
			}

			deps.chatRepo.AssertExpectations(t)
		})
	}
}
