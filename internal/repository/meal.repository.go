package repository

import (
	"time"

	"glucomate/internal/models"

	"gorm.io/gorm"
)

type MealRepository interface {
	Create(meal *models.Meal) error
	FindByUserID(userID uint, mealType string, since *time.Time, offset, limit int) ([]models.Meal, error)
	CountByUserID(userID uint, mealType string, since *time.Time) (int64, error)
	FindRecentByUserID(userID uint, limit int) ([]models.Meal, error)
	SummarizeByDateRange(userID uint, start, end time.Time) (*models.NutritionSummary, error)
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db}
}

func (r *mealRepository) Create(meal *models.Meal) error {
	return r.db.Create(meal).Error
}

func (r *mealRepository) filtered(userID uint, mealType string, since *time.Time) *gorm.DB {
	query := r.db.Model(&models.Meal{}).Where("user_id = ?", userID)
	if mealType != "" {
		query = query.Where("meal_type = ?", mealType)
	}
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	return query
}

func (r *mealRepository) FindByUserID(userID uint, mealType string, since *time.Time, offset, limit int) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.filtered(userID, mealType, since).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

func (r *mealRepository) CountByUserID(userID uint, mealType string, since *time.Time) (int64, error) {
	var count int64
	err := r.filtered(userID, mealType, since).Count(&count).Error
	return count, err
}

func (r *mealRepository) FindRecentByUserID(userID uint, limit int) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

func (r *mealRepository) SummarizeByDateRange(userID uint, start, end time.Time) (*models.NutritionSummary, error) {
	var summary models.NutritionSummary
	err := r.db.Model(&models.Meal{}).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end).
		Select("COALESCE(SUM(calories), 0) AS calories, " +
			"COALESCE(SUM(carbs), 0) AS carbs, " +
			"COALESCE(SUM(protein), 0) AS protein, " +
			"COALESCE(SUM(fat), 0) AS fat, " +
			"COALESCE(SUM(sugar), 0) AS sugar, " +
			"COALESCE(SUM(fiber), 0) AS fiber, " +
			"COUNT(id) AS meal_count").
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
