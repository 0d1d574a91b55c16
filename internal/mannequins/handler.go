package mannequins

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	maxGenerateBody = 64 << 10
	maxUploadSize   = 100 << 20
)

// Handler wires the pipeline to HTTP. Responses keep the {success, mannequinUrl, error}
// shape the front end expects instead of the standard error envelope.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the versioned generate route.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/mannequins/generate", h.generate)
}

// RegisterLegacyRoutes attaches /generate-mannequin under the unversioned api group.
func (h *Handler) RegisterLegacyRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-mannequin", h.generate)
}

// RegisterAdminRoutes attaches the manual upload route.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/measurements/:id/mannequin", h.upload)
}

type generateRequest struct {
	MeasurementID any `json:"measurementId"`
}

type generateResponse struct {
	Success      bool   `json:"success"`
	MannequinURL string `json:"mannequinUrl,omitempty"`
	Error        string `json:"error,omitempty"`
}

func (h *Handler) generate(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxGenerateBody))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	var req generateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			fail(c, http.StatusBadRequest, ErrInvalidInput.Error())
			return
		}
		fail(c, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	id, ok := req.MeasurementID.(string)
	if !ok || id == "" {
		fail(c, http.StatusBadRequest, ErrInvalidInput.Error())
		return
	}
	c.Set("measurementId", id)

	url, err := h.Svc.Generate(c.Request.Context(), id)
	if err != nil {
		status, msg := statusFor(err)
		fail(c, status, msg)
		return
	}

	c.Set("outcome", "generated")
	c.JSON(http.StatusOK, generateResponse{Success: true, MannequinURL: url})
}

func (h *Handler) upload(c *gin.Context) {
	id := c.Param("id")
	c.Set("measurementId", id)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "Please select a .glb file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "unable to read file")
		return
	}
	defer file.Close()

	url, err := h.Svc.Upload(c.Request.Context(), id, fileHeader.Filename, file)
	if err != nil {
		status, msg := statusFor(err)
		fail(c, status, msg)
		return
	}

	c.Set("outcome", "uploaded")
	c.JSON(http.StatusOK, generateResponse{Success: true, MannequinURL: url})
}

// statusFor maps pipeline errors to the status and message clients see.
// Causes are logged by the service and never returned.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, "measurementId is required"
	case errors.Is(err, ErrInvalidAsset):
		return http.StatusBadRequest, "Please select a .glb file"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Measurement not found"
	case errors.Is(err, ErrLoadFailed):
		return http.StatusInternalServerError, "Failed to load measurement"
	case errors.Is(err, ErrGenerationFailed):
		return http.StatusInternalServerError, "Mannequin service failed"
	case errors.Is(err, ErrStorageFailed):
		return http.StatusInternalServerError, "Upload to storage failed"
	case errors.Is(err, ErrPublicURLFailed):
		return http.StatusInternalServerError, "Failed to get public URL"
	case errors.Is(err, ErrPersistFailed):
		return http.StatusInternalServerError, "Failed to update mannequin"
	default:
		return http.StatusInternalServerError, "An unexpected error occurred"
	}
}

func fail(c *gin.Context, status int, msg string) {
	c.Set("outcome", "failed")
	c.AbortWithStatusJSON(status, generateResponse{Success: false, Error: msg})
}
