package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"pathwise/pkg/metrics"
	"pathwise/pkg/utils"
)

// UnknownLocation is shown when the caller's city cannot be determined.
const UnknownLocation = "Unknown"

type LocationServiceInterface interface {
	// Lookup reports the detected city or why it could not be found.
	Lookup(ctx context.Context) (string, error)
	// ResolveLocation never fails; any lookup error becomes UnknownLocation.
	ResolveLocation(ctx context.Context) string
}

type IPLocationService struct {
	HTTP      *http.Client
	LookupURL string

	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewIPLocationService(lookupURL string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *IPLocationService {
	return &IPLocationService{
		HTTP:      &http.Client{Timeout: timeout},
		LookupURL: lookupURL,
		logger:    logger,
		metrics:   m,
	}
}

func (s *IPLocationService) Lookup(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.LookupURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", utils.ErrLocationLookup, err)
	}

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: http error: %w", utils.ErrLocationLookup, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("%w: bad status: %s", utils.ErrLocationLookup, resp.Status)
	}

	var payload struct {
		City string `json:"city"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decode: %w", utils.ErrLocationLookup, err)
	}

	city := strings.TrimSpace(payload.City)
	if city == "" {
		return "", fmt.Errorf("%w: response has no city", utils.ErrLocationLookup)
	}
	return city, nil
}

func (s *IPLocationService) ResolveLocation(ctx context.Context) string {
	city, err := s.Lookup(ctx)
	s.metrics.ObserveLocationLookup(err)
	if err != nil {
		s.logger.Warn("location lookup failed", zap.Error(err))
		return UnknownLocation
	}
	return city
}
