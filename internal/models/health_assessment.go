package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

const (
	RiskPending  = "Pending"
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
)

type HealthAssessment struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID        uint           `gorm:"index" json:"user_id" example:"1"`
	User          User           `gorm:"foreignKey:UserID" json:"-"`
	Age           int            `json:"age" example:"45"`
	Gender        string         `json:"gender" example:"Female"`
	Height        float64        `json:"height" example:"175"`
	Weight        float64        `json:"weight" example:"70"`
	FamilyHistory bool           `json:"family_history" example:"true"`
	Activity      string         `json:"activity" example:"Moderate"`
	Smoking       bool           `json:"smoking" example:"false"`
	Alcohol       string         `json:"alcohol" example:"Occasional"`
	Diet          string         `json:"diet" example:"Vegetarian"`
	Sleep         int            `json:"sleep" example:"7"`
	Symptoms      string         `gorm:"type:text" json:"-"`
	RiskLevel     string         `gorm:"default:Pending" json:"risk_level" example:"Pending"`
	AIReason      string         `gorm:"type:text" json:"ai_reason"`
}

// SymptomList decodes the stored JSON symptom array. Height and weight
// are stored as entered (centimeters and kilograms); symptoms are kept
// as a JSON-encoded text column so the questionnaire stays schema-free.
func (a *HealthAssessment) SymptomList() []string {
	if a.Symptoms == "" {
		return []string{}
	}
	var symptoms []string
	if err := json.Unmarshal([]byte(a.Symptoms), &symptoms); err != nil {
		return []string{}
	}
	return symptoms
}

func (a *HealthAssessment) SetSymptoms(symptoms []string) {
	if symptoms == nil {
		symptoms = []string{}
	}
	encoded, _ := json.Marshal(symptoms)
	a.Symptoms = string(encoded)
}

// AssessmentResponse is the API shape of an assessment: the stored row
// with the symptom JSON decoded back into an array.
type AssessmentResponse struct {
	HealthAssessment
	Symptoms []string `json:"symptoms"`
}

func (a *HealthAssessment) ToResponse() AssessmentResponse {
	return AssessmentResponse{
		HealthAssessment: *a,
		Symptoms:         a.SymptomList(),
	}
}

type SubmitAssessmentRequest struct {
	Age           int      `json:"age" binding:"required,min=1,max=150"`
	Gender        string   `json:"gender" binding:"required"`
	Height        float64  `json:"height" binding:"required,gt=0"`
	Weight        float64  `json:"weight" binding:"required,gt=0"`
	FamilyHistory *bool    `json:"familyHistory" binding:"required"`
	Activity      string   `json:"activity" binding:"required"`
	Smoking       *bool    `json:"smoking" binding:"required"`
	Alcohol       string   `json:"alcohol" binding:"required"`
	Diet          string   `json:"diet" binding:"required"`
	Sleep         int      `json:"sleep" binding:"required,min=1,max=24"`
	Symptoms      []string `json:"symptoms"`
}

type PredictRequest struct {
	AssessmentID uint `json:"assessmentId" binding:"required"`
}
