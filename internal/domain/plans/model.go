package plans

type Plan struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"type:varchar(100);not null" json:"name"`
	Price        float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationDays int     `gorm:"not null" json:"duration_days"`
	IsActive     bool    `gorm:"not null;default:true" json:"is_active"`
}
