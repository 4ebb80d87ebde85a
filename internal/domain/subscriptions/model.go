package subscriptions

import (
	"time"

	"gym-frontdesk/internal/domain/plans"
)

const (
	PaymentPaid     = "paid"
	PaymentImported = "imported"
)

// Subscription rows are never extended in place by a renewal; a renewal appends
// a new row and the latest end date wins.
type Subscription struct {
	ID       uint `gorm:"primaryKey"`
	ClientID uint `gorm:"not null;index"`
	PlanID   uint `gorm:"not null"`
	Plan     *plans.Plan

	StartDate     time.Time `gorm:"type:date;not null"`
	EndDate       time.Time `gorm:"type:date;not null;index"`
	PaymentStatus string    `gorm:"type:varchar(20);not null;default:'paid'"`
	PricePaid     float64   `gorm:"type:decimal(10,2);not null"`

	CreatedAt time.Time
}
