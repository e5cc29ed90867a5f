package models

import (
	"time"
)

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ChatMessage is one immutable conversation turn. The auto-increment ID also
// serves as the tie-break for turns sharing a timestamp, so reads ordered by
// (timestamp, id) reproduce insertion order.
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int       `json:"user_id" gorm:"not null;index:idx_chat_user_time,priority:1"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Sender    string    `json:"sender" gorm:"type:varchar(50);not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index:idx_chat_user_time,priority:2"`
}
