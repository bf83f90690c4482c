package models

import (
	"errors"
	"time"
)

const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"

	// PendingCustomerEmail is the placeholder stored until the payment
	// processor confirms the payer address.
	PendingCustomerEmail = "pending"
)

// ErrPurchaseAlreadyCompleted is returned when a completed purchase would be
// moved back to pending.
var ErrPurchaseAlreadyCompleted = errors.New("purchase already completed")

// Purchase represents one checkout attempt against the payment processor.
// Status only ever moves pending -> completed, driven by the verified
// processor webhook.
type Purchase struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	StripeSessionID string    `gorm:"uniqueIndex;type:varchar(191);not null" json:"stripe_session_id"`
	CustomerEmail   string    `gorm:"type:varchar(200);not null" json:"customer_email"`
	Amount          int64     `gorm:"not null" json:"amount"` // currency minor units
	PlanName        string    `gorm:"type:varchar(100);not null" json:"plan_name"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status" validate:"oneof=pending completed"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// MarkCompleted transitions the purchase to completed and records the
// confirmed payer email. Completing twice is a no-op error so callers can
// treat duplicate webhook deliveries as already handled.
func (p *Purchase) MarkCompleted(customerEmail string) error {
	if p.Status == PurchaseStatusCompleted {
		return ErrPurchaseAlreadyCompleted
	}
	p.Status = PurchaseStatusCompleted
	if customerEmail != "" {
		p.CustomerEmail = customerEmail
	}
	return nil
}
