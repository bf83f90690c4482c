package models

import (
	"time"
)

// Appointment represents a scheduled strategy call request
type Appointment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Email         string    `gorm:"type:varchar(200);not null;index" json:"email" validate:"required,email,max=200"`
	Website       string    `gorm:"type:varchar(255);default:null" json:"website,omitempty"`
	PreferredDate string    `gorm:"type:varchar(32);not null" json:"preferred_date" validate:"required"`
	PreferredTime string    `gorm:"type:varchar(32);not null" json:"preferred_time" validate:"required"`
	Notes         string    `gorm:"type:text;default:null" json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
