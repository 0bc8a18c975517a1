package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/textwatch/textwatch/internal/client/api"
	"github.com/textwatch/textwatch/internal/client/models"
)

// DetectionService runs text analyses and fetches past results.
type DetectionService interface {
	// Analyze classifies text. Text that is empty after trimming is rejected
	// locally with a validation error, before any network call. apiKey, when
	// non-empty, is forwarded as the request-level X-API-KEY credential; it
	// coexists with (and is independent of) the session bearer token.
	Analyze(ctx context.Context, text, apiKey string) (*models.DetectionResult, error)

	// History returns past analyses in the order the backend sent them.
	History(ctx context.Context) ([]models.HistoryItem, error)
}

type detectionService struct {
	api api.Caller
}

func NewDetectionService(c api.Caller) DetectionService {
	return &detectionService{api: c}
}

func (s *detectionService) Analyze(ctx context.Context, text, apiKey string) (*models.DetectionResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, api.NewValidationError("text must not be empty")
	}

	var opts *api.CallOptions
	if apiKey != "" {
		opts = &api.CallOptions{APIKey: apiKey}
	}

	raw, err := s.api.Call(ctx, http.MethodPost, "/api/detect/", map[string]string{"text": text}, opts)
	if err != nil {
		return nil, err
	}

	var result models.DetectionResult
	if err := api.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *detectionService) History(ctx context.Context) ([]models.HistoryItem, error) {
	raw, err := s.api.Call(ctx, http.MethodGet, "/api/detect/history/", nil, nil)
	if err != nil {
		return nil, err
	}

	var items []models.HistoryItem
	if err := api.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
