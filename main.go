package main

import (
	"context"
	"strings"
	"time"

	"gym-frontdesk/config"
	"gym-frontdesk/database"
	routes "gym-frontdesk/internal/app/http"
	"gym-frontdesk/internal/app/http/middleware"
	"gym-frontdesk/internal/cache"
	"gym-frontdesk/internal/domain/plans"
	"gym-frontdesk/internal/logger"
	"gym-frontdesk/internal/membership"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()
	logger.Init(config.APP_ENV)

	if config.APP_ENV != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(config.DB_DRIVER, config.DB_URL)
	if err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migration failed", "error", err)
	}
	logger.Info("✅ Connected and migrated", "driver", config.DB_DRIVER)

	opts := []membership.Option{
		membership.WithLocation(config.APP_LOCATION),
		membership.WithImportResolver(plans.ByNameThenKeyword(config.IMPORT_DEFAULT_PLAN_KEYWORD)),
	}
	if config.CACHE_HOST != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		rc, err := cache.NewRedis(ctx, config.CACHE_HOST, config.CACHE_PORT, config.CACHE_PASSWORD)
		cancel()
		if err != nil {
			logger.Warn("stats cache disabled", "error", err)
		} else {
			defer rc.Close()
			opts = append(opts, membership.WithStatsCache(rc, config.STATS_CACHE_TTL))
			logger.Info("stats cache enabled", "host", config.CACHE_HOST, "ttl", config.STATS_CACHE_TTL)
		}
	}

	svc := membership.NewService(membership.NewRepository(db), opts...)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog())

	// CORS goes before the routes
	r.Use(cors.New(corsConfig(config.CORS_ORIGIN)))

	routes.RegisterRoutes(r, svc)

	logger.Info("front desk API listening", "port", config.PORT)
	if err := r.Run(":" + config.PORT); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}

func corsConfig(origins string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}
	cfg.AllowCredentials = true
	return cfg
}
