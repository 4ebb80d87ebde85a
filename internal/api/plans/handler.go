package plans

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
	r.GET("/plans", h.ListPlans)
}

// ListPlans returns the plans staff can sell, cheapest first.
func (h *Handler) ListPlans(c *gin.Context) {
	list, err := h.svc.GetPlans(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
