package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/textwatch/textwatch/internal/client/api"
)

// AuthService talks to the public authentication endpoints. None of its
// calls require a session credential.
//
// Contract:
//   - Login: exchange email/password for a bearer token. The caller decides
//     what to do with the token (normally session.Manager.Login).
//   - Signup: create an account; the backend sends a verification email.
//   - VerifyEmail: confirm an account by emailed token.
//   - ResendVerification: re-send the verification email.
//
// Signup, VerifyEmail and ResendVerification return the backend's
// human-readable message.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, name, email, password string) (string, error)
	VerifyEmail(ctx context.Context, token string) (string, error)
	ResendVerification(ctx context.Context, email string) (string, error)
}

type authService struct {
	api api.Caller
}

// NewAuthService constructs an AuthService bound to the given gateway.
func NewAuthService(c api.Caller) AuthService {
	return &authService{api: c}
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login keeps the access token from the pair the backend issues. The
// refresh token is ignored: there is no silent refresh, expiry is
// discovered through a rejected request.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	raw, err := s.api.Call(ctx, http.MethodPost, "/api/auth/login/", body, nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		Access string `json:"access"`
	}
	if err := api.Unmarshal(raw, &resp); err != nil {
		return "", err
	}
	if resp.Access == "" {
		return "", &api.Error{Category: api.CategoryUnknown, Message: "login response carried no token"}
	}
	return resp.Access, nil
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{
		"name":             name,
		"email":            email,
		"password":         password,
		"confirm_password": password,
	}

	raw, err := s.api.Call(ctx, http.MethodPost, "/api/auth/signup/", body, nil)
	if err != nil {
		return "", err
	}

	var resp messageResponse
	if err := api.Unmarshal(raw, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (s *authService) VerifyEmail(ctx context.Context, token string) (string, error) {
	path := "/api/auth/verify-email/" + url.PathEscape(token) + "/"

	raw, err := s.api.Call(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return "", err
	}

	var resp messageResponse
	if err := api.Unmarshal(raw, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (s *authService) ResendVerification(ctx context.Context, email string) (string, error) {
	raw, err := s.api.Call(ctx, http.MethodPost, "/api/auth/resend-verification/", map[string]string{"email": email}, nil)
	if err != nil {
		return "", err
	}

	var resp messageResponse
	if err := api.Unmarshal(raw, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
