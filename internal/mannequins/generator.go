package mannequins

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fitcheck-backend/internal/measurements"
)

const (
	defaultGender = "neutral"
	formatGLB     = "glb"

	// maxAssetBytes caps how much of a generator response is buffered.
	maxAssetBytes = 100 << 20
)

// GenerateRequest is the body sent to the generation service. Absent
// measurements are encoded as null.
type GenerateRequest struct {
	Gender   string   `json:"gender"`
	HeightCM float64  `json:"height_cm"`
	WaistCM  *float64 `json:"waist_cm"`
	HipsCM   *float64 `json:"hips_cm"`
	ChestCM  *float64 `json:"chest_cm"`
	ArmCM    *float64 `json:"arm_cm"`
	LegCM    *float64 `json:"leg_cm"`
	BicepCM  *float64 `json:"bicep_cm"`
	ThighCM  *float64 `json:"thigh_cm"`
	Format   string   `json:"format"`
}

// RequestFor builds the generator payload for a measurement record.
func RequestFor(m measurements.Measurement) GenerateRequest {
	gender := defaultGender
	if m.Gender != nil && strings.TrimSpace(*m.Gender) != "" {
		gender = *m.Gender
	}
	return GenerateRequest{
		Gender:   gender,
		HeightCM: m.HeightCM,
		WaistCM:  m.WaistCM,
		HipsCM:   m.HipsCM,
		ChestCM:  m.ChestCM,
		ArmCM:    m.ArmCM,
		LegCM:    m.LegCM,
		BicepCM:  m.BicepCM,
		ThighCM:  m.ThighCM,
		Format:   formatGLB,
	}
}

// Generator produces a GLB asset from measurements.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (io.ReadCloser, error)
}

// StatusError reports a non-2xx answer from the generation service.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mannequin service returned %s", e.Status)
}

// HTTPGenerator calls the external generation service over HTTP.
type HTTPGenerator struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPGenerator constructs a generator for baseURL with a request timeout.
func NewHTTPGenerator(baseURL string, timeout time.Duration) *HTTPGenerator {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &HTTPGenerator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate posts req to {baseURL}/generate-mannequin and returns the asset
// bytes. The body is buffered so a broken stream surfaces here rather than
// during the storage write.
func (g *HTTPGenerator) Generate(ctx context.Context, req GenerateRequest) (io.ReadCloser, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/generate-mannequin", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return nil, fmt.Errorf("mannequin service timeout: %w", err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read mannequin body: %w", err)
	}
	if len(body) > maxAssetBytes {
		return nil, fmt.Errorf("mannequin body exceeds %d bytes", maxAssetBytes)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("mannequin service returned an empty body")
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}
