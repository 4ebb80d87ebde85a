package routes

import (
	"net/http"

	checkinapi "gym-frontdesk/internal/api/checkin"
	clientsapi "gym-frontdesk/internal/api/clients"
	plansapi "gym-frontdesk/internal/api/plans"
	reportsapi "gym-frontdesk/internal/api/reports"
	subscriptionsapi "gym-frontdesk/internal/api/subscriptions"
	"gym-frontdesk/internal/app/http/middleware"
	"gym-frontdesk/internal/membership"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, svc *membership.Service) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.SanitizeAndCleanInputMiddleware())

	clientsapi.NewHandler(svc).RegisterRoutes(api)
	plansapi.NewHandler(svc).RegisterRoutes(api)
	subscriptionsapi.NewHandler(svc).RegisterRoutes(api)
	checkinapi.NewHandler(svc).RegisterRoutes(api)
	reportsapi.NewHandler(svc).RegisterRoutes(api)
}
