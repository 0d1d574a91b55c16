package products

import (
	"context"
	"strings"
	"time"

	"fitcheck-backend/internal/shared/telemetry"
)

// Service validates product requests and forwards them to the extractor.
type Service struct {
	Extractor Extractor
	Cache     Cache
	TTL       time.Duration
}

// NewService constructs a Service. cache may be nil.
func NewService(extractor Extractor, cache Cache, ttl time.Duration) *Service {
	return &Service{Extractor: extractor, Cache: cache, TTL: ttl}
}

// IsAmazonURL reports whether raw points at an Amazon page.
func IsAmazonURL(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.Contains(lower, "amazon.com") || strings.Contains(lower, "amzn.")
}

// ValidASIN reports whether asin is 10 ASCII letters or digits.
func ValidASIN(asin string) bool {
	if len(asin) != 10 {
		return false
	}
	for _, r := range asin {
		isDigit := r >= '0' && r <= '9'
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isDigit && !isLetter {
			return false
		}
	}
	return true
}

// Extract validates the URL then forwards it. Successful results are cached.
func (s *Service) Extract(ctx context.Context, req ExtractionRequest) (ExtractionResponse, error) {
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return failure("URL is required"), nil
	}
	if !IsAmazonURL(req.URL) {
		return failure("Please provide a valid Amazon URL"), nil
	}

	key := CacheKey(req.URL)
	if cached, ok := s.cached(ctx, key); ok {
		return cached, nil
	}

	resp, err := s.Extractor.Extract(ctx, req)
	if err != nil {
		return ExtractionResponse{}, err
	}
	s.store(ctx, key, resp)
	return resp, nil
}

// ByASIN validates asin then fetches the product.
func (s *Service) ByASIN(ctx context.Context, asin string) (ExtractionResponse, error) {
	asin = strings.TrimSpace(asin)
	if !ValidASIN(asin) {
		return failure("Invalid ASIN format. ASIN should be 10 alphanumeric characters."), nil
	}

	key := CacheKey("https://www.amazon.com/dp/" + asin)
	if cached, ok := s.cached(ctx, key); ok {
		return cached, nil
	}

	resp, err := s.Extractor.ByASIN(ctx, asin)
	if err != nil {
		return ExtractionResponse{}, err
	}
	s.store(ctx, key, resp)
	return resp, nil
}

// Cache errors never fail a request.
func (s *Service) cached(ctx context.Context, key string) (ExtractionResponse, bool) {
	if s.Cache == nil {
		return ExtractionResponse{}, false
	}
	resp, ok, err := s.Cache.Get(ctx, key)
	if err != nil {
		telemetry.Warn("products.cache_get_failed", map[string]any{"key": key, "error": err})
		return ExtractionResponse{}, false
	}
	return resp, ok
}

func (s *Service) store(ctx context.Context, key string, resp ExtractionResponse) {
	if s.Cache == nil || !resp.Success || resp.Product == nil || s.TTL <= 0 {
		return
	}
	if err := s.Cache.Set(ctx, key, resp, s.TTL); err != nil {
		telemetry.Warn("products.cache_set_failed", map[string]any{"key": key, "error": err})
	}
}
