package reports

import (
	"net/http"

	"gym-frontdesk/internal/apperr"
	"gym-frontdesk/internal/membership"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *membership.Service
}

func NewHandler(svc *membership.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/stats", h.Stats)
	r.GET("/visits", h.RecentVisits)
}

// GET /api/stats
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.GetStats(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/visits
func (h *Handler) RecentVisits(c *gin.Context) {
	list, err := h.svc.RecentVisits(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
