package repository

import (
	"time"

	"glucomate/internal/models"

	"gorm.io/gorm"
)

type ChatRepository interface {
	Create(chat *models.Chat) error
	FindByUserID(userID uint, offset, limit int) ([]models.Chat, error)
	CountByUserID(userID uint) (int64, error)
	FindRecentByUserID(userID uint, limit int) ([]models.Chat, error)
	DeleteOlderThan(userID uint, cutoff time.Time) error
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db}
}

func (r *chatRepository) Create(chat *models.Chat) error {
	return r.db.Create(chat).Error
}

func (r *chatRepository) FindByUserID(userID uint, offset, limit int) ([]models.Chat, error) {
	var chats []models.Chat
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&chats).Error
	return chats, err
}

func (r *chatRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Chat{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *chatRepository) FindRecentByUserID(userID uint, limit int) ([]models.Chat, error) {
	var chats []models.Chat
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&chats).Error
	return chats, err
}

// DeleteOlderThan removes expired turns for one user. Unscoped: the
// retention window is a hard delete, purged rows must not linger as
// soft-deleted history.
func (r *chatRepository) DeleteOlderThan(userID uint, cutoff time.Time) error {
	return r.db.Unscoped().
		Where("user_id = ? AND created_at < ?", userID, cutoff).
		Delete(&models.Chat{}).Error
}
