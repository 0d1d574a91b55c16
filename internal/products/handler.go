package products

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcheck-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the service. Responses keep the extractor's
// {success, product, error, warnings} shape.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches versioned product routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/products/extract", h.extract)
	rg.GET("/products/demo", h.demo)
	rg.GET("/products/:asin", h.byASIN)
}

// RegisterLegacyRoutes mirrors the extraction service's own paths under /api.
func (h *Handler) RegisterLegacyRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract", h.extract)
	rg.GET("/product/:asin", h.byASIN)
	rg.GET("/demo/product", h.demo)
}

func (h *Handler) extract(c *gin.Context) {
	req := ExtractionRequest{IncludeSizeChart: true, IncludeAllImages: true}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failure("Invalid JSON in request body"))
		return
	}

	resp, err := h.Svc.Extract(c.Request.Context(), req)
	if err != nil {
		telemetry.Error("products.extract_failed", map[string]any{"url": req.URL, "error": err})
		c.JSON(http.StatusBadGateway, failure("Product service unavailable"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) byASIN(c *gin.Context) {
	resp, err := h.Svc.ByASIN(c.Request.Context(), c.Param("asin"))
	if err != nil {
		telemetry.Error("products.lookup_failed", map[string]any{"asin": c.Param("asin"), "error": err})
		c.JSON(http.StatusBadGateway, failure("Product service unavailable"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) demo(c *gin.Context) {
	c.JSON(http.StatusOK, DemoProduct())
}
