package models

import (
	"time"

	"gorm.io/gorm"
)

type Chat struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id" example:"1"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Question  string         `gorm:"type:text" json:"question" example:"Is rice bad for me?"`
	Answer    string         `gorm:"type:text" json:"answer"`
}

type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}
