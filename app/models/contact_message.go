package models

import (
	"time"
)

// ContactMessage represents a contact form submission
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Email     string    `gorm:"type:varchar(200);not null;index" json:"email" validate:"required,email,max=200"`
	Message   string    `gorm:"type:text;not null" json:"message" validate:"required,min=10"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the ContactMessage model
func (ContactMessage) TableName() string {
	return "contacts"
}
