package utils

import (
	"fmt"
	"log"
	mathrand "math/rand"
	"time"

	"glucomate/internal/models"

	"gorm.io/gorm"
)

const DefaultNumUsers = 50

var (
	seedActivities = []string{"Sedentary", "Light", "Moderate", "Active"}
	seedDiets      = []string{"Balanced", "Vegetarian", "High-carb", "Low-carb"}
	seedAlcohol    = []string{"None", "Occasional", "Regular"}
	seedMealTypes  = []string{"Breakfast", "Lunch", "Dinner", "Snack"}
	seedMealTexts  = []string{
		"oatmeal with banana",
		"grilled chicken salad",
		"rice with dal and vegetables",
		"two slices of whole wheat toast with peanut butter",
		"fruit smoothie",
	}
)

// SeedDemoUsers creates test accounts with one assessment and a few
// meals each, so the dashboard and chat context have data to work with.
func SeedDemoUsers(db *gorm.DB, numUsers int) error {
	password, err := HashPassword("TestPassword123!")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %v", err)
	}

	for i := 1; i <= numUsers; i++ {
		user := models.User{
			Name:     fmt.Sprintf("Test User %d", i),
			Email:    fmt.Sprintf("testuser%d@example.com", i),
			Password: password,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %d: %v", i, err)
		}

		assessment := models.HealthAssessment{
			UserID:        user.ID,
			Age:           25 + mathrand.Intn(40),
			Gender:        []string{"Male", "Female"}[mathrand.Intn(2)],
			Height:        150 + float64(mathrand.Intn(40)),
			Weight:        50 + float64(mathrand.Intn(50)),
			FamilyHistory: mathrand.Intn(2) == 0,
			Activity:      seedActivities[mathrand.Intn(len(seedActivities))],
			Smoking:       mathrand.Intn(4) == 0,
			Alcohol:       seedAlcohol[mathrand.Intn(len(seedAlcohol))],
			Diet:          seedDiets[mathrand.Intn(len(seedDiets))],
			Sleep:         5 + mathrand.Intn(5),
			RiskLevel:     models.RiskPending,
		}
		assessment.SetSymptoms([]string{})
		if err := db.Create(&assessment).Error; err != nil {
			return fmt.Errorf("failed to create assessment for user %d: %v", i, err)
		}

		for m := 0; m < 3; m++ {
			meal := models.Meal{
				UserID:    user.ID,
				MealType:  seedMealTypes[mathrand.Intn(len(seedMealTypes))],
				MealText:  seedMealTexts[mathrand.Intn(len(seedMealTexts))],
				Calories:  150 + float64(mathrand.Intn(500)),
				Carbs:     10 + float64(mathrand.Intn(80)),
				Protein:   5 + float64(mathrand.Intn(30)),
				Fat:       2 + float64(mathrand.Intn(25)),
				Sugar:     float64(mathrand.Intn(30)),
				Fiber:     float64(mathrand.Intn(10)),
				Impact:    []string{models.ImpactLow, models.ImpactModerate, models.ImpactHigh}[mathrand.Intn(3)],
				Notes:     "Seeded meal for testing",
				CreatedAt: time.Now().Add(-time.Duration(mathrand.Intn(72)) * time.Hour),
			}
			if err := db.Create(&meal).Error; err != nil {
				return fmt.Errorf("failed to create meal for user %d: %v", i, err)
			}
		}

		if i%100 == 0 {
			log.Printf("Seeded %d/%d users", i, numUsers)
		}
	}

	log.Printf("Seeded %d users with assessments and meals", numUsers)
	return nil
}

// DeleteDemoUsers removes seeded accounts and everything they own.
func DeleteDemoUsers(db *gorm.DB) error {
	var users []models.User
	if err := db.Where("email LIKE ?", "testuser%@example.com").Find(&users).Error; err != nil {
		return fmt.Errorf("failed to list test users: %v", err)
	}

	for _, user := range users {
		if err := db.Unscoped().Where("user_id = ?", user.ID).Delete(&models.HealthAssessment{}).Error; err != nil {
			return err
		}
		if err := db.Unscoped().Where("user_id = ?", user.ID).Delete(&models.Meal{}).Error; err != nil {
			return err
		}
		if err := db.Unscoped().Where("user_id = ?", user.ID).Delete(&models.Chat{}).Error; err != nil {
			return err
		}
		if err := db.Unscoped().Delete(&user).Error; err != nil {
			return err
		}
	}

	log.Printf("Deleted %d test users", len(users))
	return nil
}

func GetUserCount(db *gorm.DB) (int64, error) {
	var count int64
	result := db.Model(&models.User{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count users: %v", result.Error)
	}
	return count, nil
}
