package models

import "time"

type User struct {
	ID                int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Email             string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash      string    `json:"-" gorm:"type:varchar(255);not null"`
	DisplayName       *string   `json:"display_name,omitempty" gorm:"type:varchar(255)"`
	StatusMessage     *string   `json:"status_message,omitempty" gorm:"type:varchar(512)"`
	AvatarKey         *string   `json:"-" gorm:"type:varchar(512)"`
	AvatarContentType *string   `json:"-" gorm:"type:varchar(128)"`
	CreatedAt         time.Time `json:"created_at"`
}
