package repository

import (
	"glucomate/internal/models"

	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(assessment *models.HealthAssessment) error
	FindByIDAndUserID(id, userID uint) (*models.HealthAssessment, error)
	FindLatestByUserID(userID uint) (*models.HealthAssessment, error)
	FindAllByUserID(userID uint) ([]models.HealthAssessment, error)
	UpdateRisk(id uint, riskLevel, aiReason string) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db}
}

func (r *assessmentRepository) Create(assessment *models.HealthAssessment) error {
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) FindByIDAndUserID(id, userID uint) (*models.HealthAssessment, error) {
	var assessment models.HealthAssessment
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&assessment).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindLatestByUserID(userID uint) (*models.HealthAssessment, error) {
	var assessment models.HealthAssessment
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&assessment).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindAllByUserID(userID uint) ([]models.HealthAssessment, error) {
	var assessments []models.HealthAssessment
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) UpdateRisk(id uint, riskLevel, aiReason string) error {
	return r.db.Model(&models.HealthAssessment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"risk_level": riskLevel,
			"ai_reason":  aiReason,
		}).Error
}
