package services

import (
	"context"
	"net/http"

	"github.com/textwatch/textwatch/internal/client/api"
	"github.com/textwatch/textwatch/internal/client/models"
)

// ProfileService reads and updates the authenticated user's account data.
type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)

	// Update changes name and email. password is included in the payload
	// only when non-empty; omitting the field leaves the stored credential
	// untouched server-side. Sending an empty string would not.
	Update(ctx context.Context, name, email, password string) (*models.Profile, error)
}

type profileService struct {
	api api.Caller
}

func NewProfileService(c api.Caller) ProfileService {
	return &profileService{api: c}
}

const profilePath = "/api/auth/user/profile/"

func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	raw, err := s.api.Call(ctx, http.MethodGet, profilePath, nil, nil)
	if err != nil {
		return nil, err
	}

	var p models.Profile
	if err := api.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

type profileUpdate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

func (s *profileService) Update(ctx context.Context, name, email, password string) (*models.Profile, error) {
	body := profileUpdate{Name: name, Email: email, Password: password}

	raw, err := s.api.Call(ctx, http.MethodPut, profilePath, body, nil)
	if err != nil {
		return nil, err
	}

	var p models.Profile
	if err := api.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
