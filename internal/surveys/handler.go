package surveys

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitcheck-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches public survey routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/survey/questions", h.questions)
	rg.POST("/surveys", h.submit)
}

// RegisterAdminRoutes attaches the result export.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/surveys", h.list)
}

func (h *Handler) questions(c *gin.Context) {
	respond.OK(c, gin.H{"questions": Questions})
}

func (h *Handler) submit(c *gin.Context) {
	var a Answers
	if err := c.ShouldBindJSON(&a); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resp, err := h.Svc.Submit(c.Request.Context(), a)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			respond.Error(c, http.StatusBadRequest, "validation_error", verr.Message, gin.H{"field": verr.Field})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save survey", nil)
		}
		return
	}

	respond.Created(c, gin.H{"success": true, "id": resp.ID})
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list surveys", nil)
		return
	}
	respond.OK(c, gin.H{"items": items, "limit": limit, "offset": offset})
}
