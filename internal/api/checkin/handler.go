package checkin

import (
	"net/http"

	"gym-frontdesk/internal/api/common"
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
	r.POST("/checkin", h.CheckIn)
}

type checkInRequest struct {
	ClientID uint `json:"client_id"`
}

// CheckIn answers 200 {success, message} when the client may enter and
// 403 {error} when their quota is expired.
func (h *Handler) CheckIn(c *gin.Context) {
	var req checkInRequest
	if err := common.BindJSON(c, &req); err != nil {
		apperr.Respond(c, err)
		return
	}

	res, err := h.svc.CheckIn(c.Request.Context(), req.ClientID)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	if !res.Authorized {
		c.JSON(http.StatusForbidden, gin.H{"error": res.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": res.Message})
}
