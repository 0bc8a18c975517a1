package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/textwatch/textwatch/internal/client/api"
	"github.com/textwatch/textwatch/internal/client/models"
)

// MaxAPIKeys mirrors the backend's per-account limit. The local check is a
// UX shortcut only; the backend stays authoritative and its rejection
// arrives through the same validation category.
const MaxAPIKeys = 2

// KeyService manages the user's API keys. It keeps a local cache of the
// last known key set so the create guard and views have something to work
// with; the cache is updated only from confirmed backend responses.
type KeyService interface {
	// List fetches the key set and refreshes the cache.
	List(ctx context.Context) ([]models.APIKey, error)

	// Create requests a new key. When the cache already holds MaxAPIKeys
	// entries it refuses locally with a validation error and no network
	// call. The returned key carries the full secret; it is shown in full
	// only this once.
	Create(ctx context.Context) (*models.APIKey, error)

	// Delete removes a key by id. The cache drops the entry only after the
	// backend confirms.
	Delete(ctx context.Context, id int64) error

	// Cached returns a copy of the locally cached key set.
	Cached() []models.APIKey
}

type keyService struct {
	api api.Caller

	mu   sync.Mutex
	keys []models.APIKey
}

func NewKeyService(c api.Caller) KeyService {
	return &keyService{api: c}
}

func (s *keyService) List(ctx context.Context) ([]models.APIKey, error) {
	raw, err := s.api.Call(ctx, http.MethodGet, "/api/auth/api-keys/", nil, nil)
	if err != nil {
		return nil, err
	}

	var keys []models.APIKey
	if err := api.Unmarshal(raw, &keys); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.keys = keys
	s.mu.Unlock()

	return s.Cached(), nil
}

func (s *keyService) Create(ctx context.Context) (*models.APIKey, error) {
	s.mu.Lock()
	atCap := len(s.keys) >= MaxAPIKeys
	s.mu.Unlock()
	if atCap {
		return nil, api.NewValidationError(fmt.Sprintf("maximum %d API keys allowed, delete one first", MaxAPIKeys))
	}

	raw, err := s.api.Call(ctx, http.MethodPost, "/api/auth/api-keys/create/", nil, nil)
	if err != nil {
		return nil, err
	}

	var key models.APIKey
	if err := api.Unmarshal(raw, &key); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.keys = append(s.keys, key)
	s.mu.Unlock()

	return &key, nil
}

func (s *keyService) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/auth/api-keys/delete/%d/", id)
	if _, err := s.api.Call(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.keys[:0]
	for _, k := range s.keys {
		if k.ID != id {
			kept = append(kept, k)
		}
	}
	s.keys = kept
	return nil
}

func (s *keyService) Cached() []models.APIKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.APIKey, len(s.keys))
	copy(out, s.keys)
	return out
}
