package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glucomate/internal/controllers"
	"glucomate/internal/models"
	"glucomate/internal/services"
	"glucomate/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupMealTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func setupMealControllerWithMocks() (*controllers.MealController, *mocks.MockMealRepository, *mocks.MockGeminiClient) {
	mockRepo := new(mocks.MockMealRepository)
	mockClient := new(mocks.MockGeminiClient)
	controller := controllers.NewMealController(mockRepo, services.NewAIService(mockClient), nil)
	return controller, mockRepo, mockClient
}

func TestAddMeal(t *testing.T) {
	nutritionReply := `{"calories": 320, "carbs": 58.5, "protein": 9.2, "fat": 6.1, "sugar": 4.8, "fiber": 5.3, "impact": "Low", "notes": "Steamed, low glycemic load."}`

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockMealRepository, *mocks.MockGeminiClient)
		expectedStatus int
		expectedMsg    string
		checkMeal      func(*testing.T, map[string]interface{})
	}{
		{
			name: "successful meal analysis",
			requestBody: map[string]interface{}{
				"mealType": "Lunch",
				"mealText": "two idlis and sambar",
			},
			setupMocks: func(repo *mocks.MockMealRepository, client *mocks.MockGeminiClient) {
				client.On("Complete", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
					Return(nutritionReply, nil)
				repo.On("Create", mock.AnythingOfType("*models.Meal")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Meal added successfully",
			checkMeal: func(t *testing.T, data map[string]interface{}) {
				assert.Equal(t, float64(320), data["calories"])
				assert.Equal(t, "Low", data["impact"])
			},
		},
		{
			name: "negative values are clamped and impact normalized",
			requestBody: map[string]interface{}{
				"mealType": "Snack",
				"mealText": "black coffee",
			},
			setupMocks: func(repo *mocks.MockMealRepository, client *mocks.MockGeminiClient) {
				client.On("Complete", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
					Return(`{"calories": 5, "carbs": -1, "protein": 0, "fat": 0, "sugar": -2, "fiber": 0, "impact": "Minimal", "notes": ""}`, nil)
				repo.On("Create", mock.AnythingOfType("*models.Meal")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Meal added successfully",
			checkMeal: func(t *testing.T, data map[string]interface{}) {
				assert.Equal(t, float64(0), data["carbs"])
				assert.Equal(t, float64(0), data["sugar"])
				assert.Equal(t, models.ImpactModerate, data["impact"])
			},
		},
		{
			name: "invalid meal type",
			requestBody: map[string]interface{}{
				"mealType": "Brunch",
				"mealText": "pancakes",
			},
			setupMocks: func(repo *mocks.MockMealRepository, client *mocks.MockGeminiClient) {
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "missing meal text",
			requestBody: map[string]interface{}{
				"mealType": "Dinner",
			},
			setupMocks: func(repo *mocks.MockMealRepository, client *mocks.MockGeminiClient) {
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "analysis failure persists nothing",
			requestBody: map[string]interface{}{
				"mealType": "Dinner",
				"mealText": "rice and curry",
			},
			setupMocks: func(repo *mocks.MockMealRepository, client *mocks.MockGeminiClient) {
				client.On("Complete", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
					Return("", errors.New("upstream unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "AI service request failed",
		},
		{
			name: "malformed model reply persists nothing",
			requestBody: map[string]interface{}{
				"mealType": "Dinner",
				"mealText": "rice and curry",
			},
			setupMocks: func(repo *mocks.MockMealRepository, client *mocks.MockGeminiClient) {
				client.On("Complete", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
					Return("I could not estimate that meal.", nil)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Invalid response from AI service",
		},
		{
			name: "database failure after analysis",
			requestBody: map[string]interface{}{
				"mealType": "Lunch",
				"mealText": "two idlis and sambar",
			},
			setupMocks: func(repo *mocks.MockMealRepository, client *mocks.MockGeminiClient) {
				client.On("Complete", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
					Return(nutritionReply, nil)
				repo.On("Create", mock.AnythingOfType("*models.Meal")).Return(errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to save meal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupMealTestRouter()
			controller, mockRepo, mockClient := setupMealControllerWithMocks()
			tt.setupMocks(mockRepo, mockClient)

			router.POST("/meals/add", addAuthMiddleware(1), controller.AddMeal)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/meals/add", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, response["message"])

			if tt.checkMeal != nil {
				tt.checkMeal(t, response["data"].(map[string]interface{}))
			}

			mockRepo.AssertExpectations(t)
			mockClient.AssertExpectations(t)
		})
	}
}

func TestGetMeals(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*mocks.MockMealRepository)
		expectedStatus int
		expectedTotal  float64
	}{
		{
			name:  "default pagination",
			query: "",
			setupMocks: func(repo *mocks.MockMealRepository) {
				meals := []models.Meal{{ID: 2, UserID: 1, MealType: "Lunch"}, {ID: 1, UserID: 1, MealType: "Breakfast"}}
				repo.On("FindByUserID", uint(1), "", (*time.Time)(nil), 0, 50).Return(meals, nil)
				repo.On("CountByUserID", uint(1), "", (*time.Time)(nil)).Return(int64(2), nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  2,
		},
		{
			name:  "meal type filter",
			query: "?mealType=Breakfast",
			setupMocks: func(repo *mocks.MockMealRepository) {
				meals := []models.Meal{{ID: 1, UserID: 1, MealType: "Breakfast"}}
				repo.On("FindByUserID", uint(1), "Breakfast", (*time.Time)(nil), 0, 50).Return(meals, nil)
				repo.On("CountByUserID", uint(1), "Breakfast", (*time.Time)(nil)).Return(int64(1), nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  1,
		},
		{
			name:  "day window filter",
			query: "?days=7",
			setupMocks: func(repo *mocks.MockMealRepository) {
				repo.On("FindByUserID", uint(1), "", mock.AnythingOfType("*time.Time"), 0, 50).Return([]models.Meal{}, nil)
				repo.On("CountByUserID", uint(1), "", mock.AnythingOfType("*time.Time")).Return(int64(0), nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  0,
		},
		{
			name:  "second page",
			query: "?page=2&limit=10",
			setupMocks: func(repo *mocks.MockMealRepository) {
				repo.On("FindByUserID", uint(1), "", (*time.Time)(nil), 10, 10).Return([]models.Meal{}, nil)
				repo.On("CountByUserID", uint(1), "", (*time.Time)(nil)).Return(int64(12), nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupMealTestRouter()
			controller, mockRepo, _ := setupMealControllerWithMocks()
			tt.setupMocks(mockRepo)

			router.GET("/meals", addAuthMiddleware(1), controller.GetMeals)

			req := httptest.NewRequest(http.MethodGet, "/meals"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)

			data := response["data"].(map[string]interface{})
			pagination := data["pagination"].(map[string]interface{})
			assert.Equal(t, tt.expectedTotal, pagination["total"])

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetMealSummary(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*mocks.MockMealRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:  "past date summary",
			query: "?date=2026-08-01",
			setupMocks: func(repo *mocks.MockMealRepository) {
				summary := &models.NutritionSummary{Calories: 1850, Carbs: 220, Protein: 80, Fat: 60, Sugar: 45, Fiber: 25, MealCount: 4}
				repo.On("SummarizeByDateRange", uint(1),
					mock.MatchedBy(func(start time.Time) bool {
						return start.Hour() == 0 && start.Minute() == 0 && start.Format("2006-01-02") == "2026-08-01"
					}),
					mock.MatchedBy(func(end time.Time) bool {
						return end.Hour() == 23 && end.Minute() == 59 && end.Format("2006-01-02") == "2026-08-01"
					})).Return(summary, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Summary retrieved successfully",
		},
		{
			name:  "empty day returns zeroed totals",
			query: "?date=2026-08-02",
			setupMocks: func(repo *mocks.MockMealRepository) {
				summary := &models.NutritionSummary{}
				repo.On("SummarizeByDateRange", uint(1), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
					Return(summary, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Summary retrieved successfully",
		},
		{
			name:  "malformed date",
			query: "?date=08-01-2026",
			setupMocks: func(repo *mocks.MockMealRepository) {
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupMealTestRouter()
			controller, mockRepo, _ := setupMealControllerWithMocks()
			tt.setupMocks(mockRepo)

			router.GET("/meals/summary", addAuthMiddleware(1), controller.GetMealSummary)

			req := httptest.NewRequest(http.MethodGet, "/meals/summary"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, response["message"])

			if tt.expectedStatus == http.StatusOK {
				data := response["data"].(map[string]interface{})
				assert.NotNil(t, data["summary"])
				assert.NotEmpty(t, data["date"])
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
