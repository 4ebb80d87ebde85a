package clients

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
	r.GET("/search", h.Search)
	r.GET("/clients-all", h.ListAll)
	r.POST("/clients", h.Create)
	r.PUT("/clients/:id", h.Update)
	r.DELETE("/clients/:id", h.Delete)
}

// GET /api/search?q=
func (h *Handler) Search(c *gin.Context) {
	rows, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/clients-all
func (h *Handler) ListAll(c *gin.Context) {
	rows, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /api/clients
func (h *Handler) Create(c *gin.Context) {
	var req clientRequest
	if err := common.BindJSON(c, &req); err != nil {
		apperr.Respond(c, err)
		return
	}

	exp, err := common.OptionalDate("expiration_date", req.ExpirationDate)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	var opts *membership.ImportOptions
	if exp != nil {
		opts = &membership.ImportOptions{ExpirationDate: exp, PlanName: req.PlanName}
	}

	row, err := h.svc.CreateClient(c.Request.Context(), req.fields(), opts)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// PUT /api/clients/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	var req clientRequest
	if err := common.BindJSON(c, &req); err != nil {
		apperr.Respond(c, err)
		return
	}

	exp, err := common.OptionalDate("expiration_date", req.ExpirationDate)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	if err := h.svc.UpdateClient(c.Request.Context(), id, req.fields(), exp); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Datos actualizados"})
}

// DELETE /api/clients/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := common.ParamID(c, "id")
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	if err := h.svc.DeleteClient(c.Request.Context(), id); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cliente eliminado correctamente"})
}
