package database

import (
	"fmt"

	"gym-frontdesk/internal/domain/clients"
	"gym-frontdesk/internal/domain/plans"
	"gym-frontdesk/internal/domain/subscriptions"
	"gym-frontdesk/internal/domain/visits"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Open connects to the membership store. The returned handle is passed
// explicitly to the services; there is no package-level connection.
func Open(driver, dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database: empty DSN")
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres, "":
		dialector = postgres.Open(dsn)
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("database: unsupported driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the four membership tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&plans.Plan{},
		&clients.Client{},
		&subscriptions.Subscription{},
		&visits.Visit{},
	); err != nil {
		return fmt.Errorf("database: migrate: %w", err)
	}
	return nil
}
