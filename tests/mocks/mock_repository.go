package mocks

import (
	"context"
	"time"

	"glucomate/internal/gemini"
	"glucomate/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Shared MockAssessmentRepository
type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) Create(assessment *models.HealthAssessment) error {
	args := m.Called(assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) FindByIDAndUserID(id, userID uint) (*models.HealthAssessment, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthAssessment), args.Error(1)
}

func (m *MockAssessmentRepository) FindLatestByUserID(userID uint) (*models.HealthAssessment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthAssessment), args.Error(1)
}

func (m *MockAssessmentRepository) FindAllByUserID(userID uint) ([]models.HealthAssessment, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.HealthAssessment), args.Error(1)
}

func (m *MockAssessmentRepository) UpdateRisk(id uint, riskLevel, aiReason string) error {
	args := m.Called(id, riskLevel, aiReason)
	return args.Error(0)
}

// Shared MockMealRepository
type MockMealRepository struct {
	mock.Mock
}

func (m *MockMealRepository) Create(meal *models.Meal) error {
	args := m.Called(meal)
	return args.Error(0)
}

func (m *MockMealRepository) FindByUserID(userID uint, mealType string, since *time.Time, offset, limit int) ([]models.Meal, error) {
	args := m.Called(userID, mealType, since, offset, limit)
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealRepository) CountByUserID(userID uint, mealType string, since *time.Time) (int64, error) {
	args := m.Called(userID, mealType, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMealRepository) FindRecentByUserID(userID uint, limit int) ([]models.Meal, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealRepository) SummarizeByDateRange(userID uint, start, end time.Time) (*models.NutritionSummary, error) {
	args := m.Called(userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionSummary), args.Error(1)
}

// Shared MockChatRepository
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) Create(chat *models.Chat) error {
	args := m.Called(chat)
	return args.Error(0)
}

func (m *MockChatRepository) FindByUserID(userID uint, offset, limit int) ([]models.Chat, error) {
	args := m.Called(userID, offset, limit)
	return args.Get(0).([]models.Chat), args.Error(1)
}

func (m *MockChatRepository) CountByUserID(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChatRepository) FindRecentByUserID(userID uint, limit int) ([]models.Chat, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.Chat), args.Error(1)
}

func (m *MockChatRepository) DeleteOlderThan(userID uint, cutoff time.Time) error {
	args := m.Called(userID, cutoff)
	return args.Error(0)
}

// MockGeminiClient stands in for the completion backend.
type MockGeminiClient struct {
	mock.Mock
}

func (m *MockGeminiClient) Complete(ctx context.Context, prompt string, attachments ...gemini.InlineData) (string, error) {
	args := m.Called(ctx, prompt, attachments)
	return args.String(0), args.Error(1)
}
