package subscriptions

import (
	"net/http"

	"gym-frontdesk/internal/api/common"
	"gym-frontdesk/internal/apperr"
	"gym-frontdesk/internal/domain/access"
	"gym-frontdesk/internal/domain/subscriptions"
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
	r.POST("/subscriptions", h.Create)
}

type createRequest struct {
	ClientID uint `json:"client_id"`
	PlanID   uint `json:"plan_id"`
}

type subscriptionDTO struct {
	ID            uint    `json:"id"`
	ClientID      uint    `json:"client_id"`
	PlanID        uint    `json:"plan_id"`
	PlanName      string  `json:"plan_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	PaymentStatus string  `json:"payment_status"`
	PricePaid     float64 `json:"price_paid"`
}

func toDTO(s *subscriptions.Subscription) subscriptionDTO {
	out := subscriptionDTO{
		ID:            s.ID,
		ClientID:      s.ClientID,
		PlanID:        s.PlanID,
		StartDate:     access.FormatDate(s.StartDate),
		EndDate:       access.FormatDate(s.EndDate),
		PaymentStatus: s.PaymentStatus,
		PricePaid:     s.PricePaid,
	}
	if s.Plan != nil {
		out.PlanName = s.Plan.Name
	}
	return out
}

// Create renews a client: POST /api/subscriptions {client_id, plan_id}
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := common.BindJSON(c, &req); err != nil {
		apperr.Respond(c, err)
		return
	}

	sub, err := h.svc.Renew(c.Request.Context(), req.ClientID, req.PlanID)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDTO(sub))
}
