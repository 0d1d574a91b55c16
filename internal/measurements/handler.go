package measurements

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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

// RegisterRoutes attaches public measurement routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/measurements", h.create)
	rg.GET("/mannequins/:id", h.view)
}

// RegisterAdminRoutes attaches operator routes; the group carries admin auth.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/measurements", h.list)
}

type measurementResponse struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Gender          *string    `json:"gender"`
	HeightCM        float64    `json:"heightCm"`
	ChestCM         *float64   `json:"chestCm"`
	WaistCM         *float64   `json:"waistCm"`
	HipsCM          *float64   `json:"hipsCm"`
	ArmCM           *float64   `json:"armCm"`
	LegCM           *float64   `json:"legCm"`
	BicepCM         *float64   `json:"bicepCm"`
	ThighCM         *float64   `json:"thighCm"`
	MannequinStatus string     `json:"mannequinStatus"`
	MannequinURL    *string    `json:"mannequinUrl"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastGeneratedAt *time.Time `json:"lastGeneratedAt,omitempty"`
}

type viewResponse struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	Gender          *string `json:"gender"`
	HeightCM        float64 `json:"heightCm"`
	MannequinStatus string  `json:"mannequinStatus"`
	MannequinURL    *string `json:"mannequinUrl"`
	Ready           bool    `json:"ready"`
}

type adminRow struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Gender          *string   `json:"gender"`
	HeightCM        float64   `json:"heightCm"`
	MannequinStatus string    `json:"mannequinStatus"`
	MannequinURL    *string   `json:"mannequinUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (h *Handler) create(c *gin.Context) {
	var form IntakeForm
	if err := c.ShouldBind(&form); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	m, err := h.Svc.Create(c.Request.Context(), form)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			respond.Error(c, http.StatusBadRequest, "validation_error", verr.Message, gin.H{"field": verr.Field})
		default:
			msg := err.Error()
			if msg == "" {
				msg = "Failed to save measurements."
			}
			respond.Error(c, http.StatusInternalServerError, "internal_error", msg, nil)
		}
		return
	}

	c.Set("measurementId", m.ID)
	respond.Created(c, toResponse(m))
}

func (h *Handler) view(c *gin.Context) {
	id := c.Param("id")
	c.Set("measurementId", id)

	m, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Measurement not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to load measurement", nil)
		}
		return
	}

	respond.OK(c, viewResponse{
		ID:              m.ID,
		Email:           m.Email,
		Gender:          m.Gender,
		HeightCM:        m.HeightCM,
		MannequinStatus: string(m.MannequinStatus),
		MannequinURL:    m.MannequinURL,
		Ready:           m.Ready(),
	})
}

func (h *Handler) list(c *gin.Context) {
	limit := 100
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			if parsed > 500 {
				parsed = 500
			}
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list measurements", nil)
		return
	}

	rows := make([]adminRow, 0, len(items))
	for _, m := range items {
		rows = append(rows, adminRow{
			ID:              m.ID,
			Email:           m.Email,
			Gender:          m.Gender,
			HeightCM:        m.HeightCM,
			MannequinStatus: string(m.MannequinStatus),
			MannequinURL:    m.MannequinURL,
			CreatedAt:       m.CreatedAt,
		})
	}
	respond.OK(c, gin.H{"items": rows, "limit": limit, "offset": offset})
}

func toResponse(m Measurement) measurementResponse {
	return measurementResponse{
		ID:              m.ID,
		Email:           m.Email,
		Gender:          m.Gender,
		HeightCM:        m.HeightCM,
		ChestCM:         m.ChestCM,
		WaistCM:         m.WaistCM,
		HipsCM:          m.HipsCM,
		ArmCM:           m.ArmCM,
		LegCM:           m.LegCM,
		BicepCM:         m.BicepCM,
		ThighCM:         m.ThighCM,
		MannequinStatus: string(m.MannequinStatus),
		MannequinURL:    m.MannequinURL,
		CreatedAt:       m.CreatedAt,
		LastGeneratedAt: m.LastGeneratedAt,
	}
}
