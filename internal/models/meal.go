package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ImpactLow      = "Low"
	ImpactModerate = "Moderate"
	ImpactHigh     = "High"
)

type Meal struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	MealType  string         `json:"meal_type" example:"Lunch"`
	MealText  string         `gorm:"type:text" json:"meal_text" example:"two idlis and sambar"`
	Calories  float64        `json:"calories" example:"320"`
	Carbs     float64        `json:"carbs" example:"58.5"`
	Protein   float64        `json:"protein" example:"9.2"`
	Fat       float64        `json:"fat" example:"6.1"`
	Sugar     float64        `json:"sugar" example:"4.8"`
	Fiber     float64        `json:"fiber" example:"5.3"`
	Impact    string         `json:"impact" example:"Low"`
	Notes     string         `gorm:"type:text" json:"notes"`
}

type AddMealRequest struct {
	MealType    string `json:"mealType" binding:"required,oneof=Breakfast Lunch Dinner Snack"`
	MealText    string `json:"mealText" binding:"required"`
	ImageBase64 string `json:"imageBase64"`
}

// NutritionSummary aggregates a single day's logged meals.
type NutritionSummary struct {
	Calories  float64 `json:"calories"`
	Carbs     float64 `json:"carbs"`
	Protein   float64 `json:"protein"`
	Fat       float64 `json:"fat"`
	Sugar     float64 `json:"sugar"`
	Fiber     float64 `json:"fiber"`
	MealCount int64   `json:"mealCount"`
}
