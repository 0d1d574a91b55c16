package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"fitcheck-backend/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port                string
	CORSAllowOrigin     []string
	Env                 string
	LogLevel            string
	DatabaseURL         string
	ObjectStoreType     string
	LocalStoreDir       string
	PublicBaseURL       string
	AWSRegion           string
	S3Bucket            string
	S3Prefix            string
	S3PublicBaseURL     string
	MannequinServiceURL string
	MannequinTimeout    time.Duration
	ProductServiceURL   string
	ProductTimeout      time.Duration
	RedisURL            string
	ProductCacheTTL     time.Duration
	AdminJWTSecret      string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		telemetry.Error("config.database_url_missing", map[string]any{"env": env})
	}

	return Config{
		Port:                getEnv("PORT", "8080"),
		CORSAllowOrigin:     splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		Env:                 env,
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		DatabaseURL:         dbURL,
		ObjectStoreType:     normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:       getEnv("LOCAL_STORE_DIR", "./data"),
		PublicBaseURL:       strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		AWSRegion:           getEnv("AWS_REGION", ""),
		S3Bucket:            getEnv("S3_BUCKET", ""),
		S3Prefix:            getEnv("S3_PREFIX", ""),
		S3PublicBaseURL:     getEnv("S3_PUBLIC_BASE_URL", ""),
		MannequinServiceURL: strings.TrimRight(getEnv("MANNEQUIN_SERVICE_URL", "http://127.0.0.1:8000"), "/"),
		MannequinTimeout:    getSeconds("MANNEQUIN_TIMEOUT_SECONDS", 120*time.Second),
		ProductServiceURL:   strings.TrimRight(getEnv("PRODUCT_SERVICE_URL", "http://127.0.0.1:8000"), "/"),
		ProductTimeout:      getSeconds("PRODUCT_TIMEOUT_SECONDS", 60*time.Second),
		RedisURL:            getEnv("REDIS_URL", ""),
		ProductCacheTTL:     getDuration("PRODUCT_CACHE_TTL", 6*time.Hour),
		AdminJWTSecret:      getEnv("ADMIN_JWT_SECRET", ""),
	}
}

// IsDevLike reports whether env allows in-memory fallbacks and open admin routes.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		telemetry.Warn("config.invalid_seconds", map[string]any{"key": key, "value": raw})
		return def
	}
	return time.Duration(parsed) * time.Second
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		telemetry.Warn("config.invalid_duration", map[string]any{"key": key, "value": raw})
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
