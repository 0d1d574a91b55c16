package waitlist

import (
	"errors"
	"net/http"

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

// RegisterRoutes attaches the public signup route.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/waitlist", h.join)
}

// RegisterAdminRoutes attaches the signup count.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/waitlist/count", h.count)
}

type joinRequest struct {
	Email  string `json:"email" form:"email"`
	Source string `json:"source" form:"source"`
}

func (h *Handler) join(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBind(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if _, err := h.Svc.Join(c.Request.Context(), req.Email, req.Source); err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Please enter a valid email address.", nil)
		case errors.Is(err, ErrAlreadyJoined):
			respond.Error(c, http.StatusConflict, "already_joined", "This email is already on the waitlist.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Something went wrong. Please try again.", nil)
		}
		return
	}

	respond.Created(c, gin.H{"success": true})
}

func (h *Handler) count(c *gin.Context) {
	n, err := h.Svc.Count(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to count waitlist", nil)
		return
	}
	respond.OK(c, gin.H{"count": n})
}
