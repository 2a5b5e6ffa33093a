package repositories

import (
	"errors"
	"time"

	"volunhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	FindBoard(db *gorm.DB) ([]models.Message, error)
	FindByRecipient(db *gorm.DB, recipientID string) ([]models.Message, error)
	CountUnread(db *gorm.DB, recipientID string) (int64, error)
	// MarkRead and Delete scope the query by recipient: a message that does
	// not belong to the caller is indistinguishable from a missing one.
	MarkRead(db *gorm.DB, id, recipientID string) error
	Delete(db *gorm.DB, id, recipientID string) error
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindBoard(db *gorm.DB) ([]models.Message, error) {
	var messages []models.Message
	err := db.Where("recipient_id IS NULL").
		Preload("Sender").
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepositoryImpl) FindByRecipient(db *gorm.DB, recipientID string) ([]models.Message, error) {
	var messages []models.Message
	err := db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepositoryImpl) CountUnread(db *gorm.DB, recipientID string) (int64, error) {
	var count int64
	err := db.Model(&models.Message{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

func (r *MessageRepositoryImpl) MarkRead(db *gorm.DB, id, recipientID string) error {
	now := time.Now()
	result := db.Model(&models.Message{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepositoryImpl) Delete(db *gorm.DB, id, recipientID string) error {
	result := db.Delete(&models.Message{}, "id = ? AND recipient_id = ?", id, recipientID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
