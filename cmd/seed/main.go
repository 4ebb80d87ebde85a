// Command seed creates the schema and the default plan catalogue.
package main

import (
	"gym-frontdesk/config"
	"gym-frontdesk/database"
	"gym-frontdesk/internal/logger"
)

func main() {
	config.LoadEnv()
	logger.Init(config.APP_ENV)

	db, err := database.Open(config.DB_DRIVER, config.DB_URL)
	if err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	created, err := database.SeedPlans(db)
	if err != nil {
		logger.Fatal("seeding plans failed", "error", err)
	}
	if created == 0 {
		logger.Info("plans already present, nothing to seed")
		return
	}
	logger.Info("✅ plans seeded", "count", created)
}
