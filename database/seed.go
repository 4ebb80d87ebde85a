package database

import (
	"fmt"

	"gym-frontdesk/internal/domain/plans"

	"gorm.io/gorm"
)

// DefaultPlans is the catalogue a new gym starts with.
var DefaultPlans = []plans.Plan{
	{Name: "Pase Diario", Price: 10.00, DurationDays: 1, IsActive: true},
	{Name: "Mensual General", Price: 45.00, DurationDays: 30, IsActive: true},
	{Name: "Trimestral Ahorro", Price: 120.00, DurationDays: 90, IsActive: true},
	{Name: "Anual VIP", Price: 450.00, DurationDays: 365, IsActive: true},
}

// SeedPlans inserts DefaultPlans when the plans table is empty and reports
// how many rows were created.
func SeedPlans(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&plans.Plan{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("database: count plans: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	rows := make([]plans.Plan, len(DefaultPlans))
	copy(rows, DefaultPlans)
	if err := db.Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("database: seed plans: %w", err)
	}
	return len(rows), nil
}
