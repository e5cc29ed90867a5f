package dao

import (
	"context"
	"luvisa/luvisa/sources/psql/models"
	"time"

	"gorm.io/gorm"
)

type ChatMessageDAO struct {
	DB *gorm.DB
}

func NewChatMessageDAO(db *gorm.DB) *ChatMessageDAO {
	return &ChatMessageDAO{DB: db}
}

func (dao *ChatMessageDAO) SaveMessage(ctx context.Context, userID int, sender, message string, ts time.Time) (*models.ChatMessage, error) {
	msg := models.ChatMessage{
		UserID:    userID,
		Sender:    sender,
		Message:   message,
		Timestamp: ts,
	}
	err := dao.DB.WithContext(ctx).Create(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetHistory returns the user's full transcript in chronological order,
// id as tie-break so equal timestamps keep insertion order.
func (dao *ChatMessageDAO) GetHistory(ctx context.Context, userID int) ([]models.ChatMessage, error) {
	var history []models.ChatMessage
	err := dao.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC, id ASC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (dao *ChatMessageDAO) DeleteHistory(ctx context.Context, userID int) error {
	return dao.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.ChatMessage{}).Error
}
