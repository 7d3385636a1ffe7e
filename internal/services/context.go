package services

import (
	"context"
	"errors"
	"time"

	"glucomate/internal/models"
	"glucomate/internal/repository"
	"glucomate/internal/utils"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	recentMealWindow = 10
	chatHistoryDepth = 5
)

// HealthProfile is the assessment slice of a user context, with BMI
// derived from the stored height (cm) and weight (kg).
type HealthProfile struct {
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	Height        float64  `json:"height"`
	Weight        float64  `json:"weight"`
	BMI           string   `json:"bmi"`
	RiskLevel     string   `json:"risk_level"`
	Activity      string   `json:"activity"`
	Diet          string   `json:"diet"`
	FamilyHistory bool     `json:"family_history"`
	Symptoms      []string `json:"symptoms"`
}

type MealSummary struct {
	MealType string  `json:"meal_type"`
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Sugar    float64 `json:"sugar"`
	Impact   string  `json:"impact"`
	Date     string  `json:"date"`
}

type ChatTurn struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Date     string `json:"date"`
}

// UserContext is the snapshot handed to the chat prompt builder.
// HealthProfile is nil when the user has no assessment; the other
// sections are zero-filled or empty rather than absent.
type UserContext struct {
	HealthProfile  *HealthProfile          `json:"health_profile"`
	TodayNutrition models.NutritionSummary `json:"today_nutrition"`
	RecentMeals    []MealSummary           `json:"recent_meals"`
	ChatHistory    []ChatTurn              `json:"chat_history"`
}

// ContextBuilder gathers a user's health, nutrition and conversation
// state into one snapshot. Read-only; the caller has already
// authorized the user id.
type ContextBuilder struct {
	assessmentRepo repository.AssessmentRepository
	mealRepo       repository.MealRepository
	chatRepo       repository.ChatRepository
}

func NewContextBuilder(
	assessmentRepo repository.AssessmentRepository,
	mealRepo repository.MealRepository,
	chatRepo repository.ChatRepository,
) *ContextBuilder {
	return &ContextBuilder{
		assessmentRepo: assessmentRepo,
		mealRepo:       mealRepo,
		chatRepo:       chatRepo,
	}
}

// DayBounds returns the local calendar day containing t as an
// inclusive [00:00:00.000, 23:59:59.999] range.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// Build runs the four context fetches concurrently: none depends on
// another's result, and any store error fails the whole snapshot.
func (b *ContextBuilder) Build(ctx context.Context, userID uint) (*UserContext, error) {
	var (
		latest  *models.HealthAssessment
		recent  []models.Meal
		today   *models.NutritionSummary
		history []models.Chat
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		assessment, err := b.assessmentRepo.FindLatestByUserID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		latest = assessment
		return nil
	})

	g.Go(func() error {
		meals, err := b.mealRepo.FindRecentByUserID(userID, recentMealWindow)
		if err != nil {
			return err
		}
		recent = meals
		return nil
	})

	g.Go(func() error {
		start, end := DayBounds(time.Now())
		summary, err := b.mealRepo.SummarizeByDateRange(userID, start, end)
		if err != nil {
			return err
		}
		today = summary
		return nil
	})

	g.Go(func() error {
		chats, err := b.chatRepo.FindRecentByUserID(userID, chatHistoryDepth)
		if err != nil {
			return err
		}
		history = chats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	userContext := &UserContext{
		RecentMeals: make([]MealSummary, 0, len(recent)),
		ChatHistory: make([]ChatTurn, 0, len(history)),
	}

	if latest != nil {
		userContext.HealthProfile = &HealthProfile{
			Age:           latest.Age,
			Gender:        latest.Gender,
			Height:        latest.Height,
			Weight:        latest.Weight,
			BMI:           utils.FormatBMI(utils.CalculateBMI(latest.Height, latest.Weight)),
			RiskLevel:     latest.RiskLevel,
			Activity:      latest.Activity,
			Diet:          latest.Diet,
			FamilyHistory: latest.FamilyHistory,
			Symptoms:      latest.SymptomList(),
		}
	}

	if today != nil {
		userContext.TodayNutrition = *today
	}

	for _, meal := range recent {
		userContext.RecentMeals = append(userContext.RecentMeals, MealSummary{
			MealType: meal.MealType,
			Calories: meal.Calories,
			Carbs:    meal.Carbs,
			Sugar:    meal.Sugar,
			Impact:   meal.Impact,
			Date:     meal.CreatedAt.Format("2006-01-02"),
		})
	}

	// Fetched newest-first; reversed so the prompt reads the
	// conversation in chronological order.
	for i := len(history) - 1; i >= 0; i-- {
		userContext.ChatHistory = append(userContext.ChatHistory, ChatTurn{
			Question: history[i].Question,
			Answer:   history[i].Answer,
			Date:     history[i].CreatedAt.Format("2006-01-02"),
		})
	}

	return userContext, nil
}
