package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitcheck-backend/internal/mannequins"
	"fitcheck-backend/internal/measurements"
	"fitcheck-backend/internal/products"
	"fitcheck-backend/internal/services/health"
	"fitcheck-backend/internal/shared/config"
	"fitcheck-backend/internal/shared/metrics"
	"fitcheck-backend/internal/shared/server/middleware"
	"fitcheck-backend/internal/shared/server/respond"
	"fitcheck-backend/internal/shared/storage/object"
	"fitcheck-backend/internal/surveys"
	"fitcheck-backend/internal/waitlist"
)

// FilesPath is where locally stored objects are served.
const FilesPath = "/files"

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config              config.Config
	Health              *health.Service
	MeasurementsHandler *measurements.Handler
	MannequinHandler    *mannequins.Handler
	SurveyHandler       *surveys.Handler
	WaitlistHandler     *waitlist.Handler
	ProductHandler      *products.Handler
	// Files is served under FilesPath when set (local object store).
	Files object.Store
	// Now overrides the rate limiter clock in tests.
	Now func() time.Time
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	now := deps.Now
	if now == nil {
		now = time.Now
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: middleware.RateGroupForRoute,
			Limiter:  middleware.NewRateLimiter(now),
			Rules:    middleware.DefaultRateLimitRules(),
		}),
	)

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	healthHandler := healthHandler(deps.Health)
	r.GET("/health", healthHandler)
	r.GET("/metrics", metrics.Handler())
	if deps.Files != nil {
		files := filesHandler(deps.Files)
		r.GET(FilesPath+"/*key", files)
		r.HEAD(FilesPath+"/*key", files)
	}

	legacy := r.Group("/api")
	if deps.MannequinHandler != nil {
		deps.MannequinHandler.RegisterLegacyRoutes(legacy)
	}
	if deps.ProductHandler != nil {
		deps.ProductHandler.RegisterLegacyRoutes(legacy)
	}

	api := r.Group("/api/v1")
	api.GET("/health", healthHandler)
	if deps.MeasurementsHandler != nil {
		deps.MeasurementsHandler.RegisterRoutes(api)
	}
	if deps.MannequinHandler != nil {
		deps.MannequinHandler.RegisterRoutes(api)
	}
	if deps.SurveyHandler != nil {
		deps.SurveyHandler.RegisterRoutes(api)
	}
	if deps.WaitlistHandler != nil {
		deps.WaitlistHandler.RegisterRoutes(api)
	}
	if deps.ProductHandler != nil {
		deps.ProductHandler.RegisterRoutes(api)
	}

	admin := api.Group("/admin", middleware.AdminAuth(deps.Config.AdminJWTSecret, deps.Config.IsDevLike()))
	registerMeRoutes(admin)
	if deps.MeasurementsHandler != nil {
		deps.MeasurementsHandler.RegisterAdminRoutes(admin)
	}
	if deps.MannequinHandler != nil {
		deps.MannequinHandler.RegisterAdminRoutes(admin)
	}
	if deps.SurveyHandler != nil {
		deps.SurveyHandler.RegisterAdminRoutes(admin)
	}
	if deps.WaitlistHandler != nil {
		deps.WaitlistHandler.RegisterAdminRoutes(admin)
	}

	return r
}

func healthHandler(svc *health.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		ok, deps := svc.Status(c.Request.Context())
		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, gin.H{"ok": ok, "dependencies": deps})
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
