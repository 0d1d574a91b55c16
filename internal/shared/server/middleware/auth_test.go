package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fitcheck-backend/internal/shared/auth"
)

func adminRouter(secret string, allowOpen bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AdminAuth(secret, allowOpen))
	router.GET("/api/v1/admin/measurements", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": AdminSubjectFromContext(c)})
	})
	return router
}

func TestAdminAuthRejectsMissingToken(t *testing.T) {
	router := adminRouter("s3cret", false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/measurements", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAdminAuthAcceptsSignedToken(t *testing.T) {
	router := adminRouter("s3cret", false)
	token, err := auth.SignAdminToken("s3cret", "ops", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/measurements", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestAdminAuthOpenInDevWithoutSecret(t *testing.T) {
	router := adminRouter("", true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/measurements", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestAdminAuthClosedWithoutSecretOutsideDev(t *testing.T) {
	router := adminRouter("", false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/measurements", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}
