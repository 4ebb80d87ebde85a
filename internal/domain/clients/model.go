package clients

import (
	"time"

	"gym-frontdesk/internal/domain/subscriptions"
)

type Client struct {
	ID                uint   `gorm:"primaryKey"`
	FirstName         string `gorm:"type:varchar(100);not null"`
	LastName          string `gorm:"type:varchar(100);not null"`
	Email             string `gorm:"type:varchar(150)"`
	Phone             string `gorm:"type:varchar(20)"`
	DNI               string `gorm:"column:dni;type:varchar(20);index"`
	MedicalConditions string `gorm:"type:text"`

	Subscriptions []subscriptions.Subscription `gorm:"foreignKey:ClientID"`

	CreatedAt time.Time
}
