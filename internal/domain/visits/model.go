package visits

import (
	"time"

	"gym-frontdesk/internal/domain/clients"
)

// Visit is append-only: one row per authorized check-in.
type Visit struct {
	ID        uint `gorm:"primaryKey"`
	ClientID  uint `gorm:"not null;index"`
	Client    clients.Client
	VisitedAt time.Time `gorm:"not null;index"`
}
