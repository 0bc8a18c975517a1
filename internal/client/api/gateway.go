package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/textwatch/textwatch/internal/client/credstore"
	"github.com/textwatch/textwatch/internal/logging"
)

// Caller is the API surface domain services depend on. Gateway is the real
// implementation; tests substitute fakes.
type Caller interface {
	Call(ctx context.Context, method, path string, body any, opts *CallOptions) (json.RawMessage, error)
}

// CallOptions carries per-request settings.
type CallOptions struct {
	// APIKey, when set, is sent in the X-API-KEY header. It authorizes the
	// detection request itself and is independent of the session bearer
	// token that authorizes the dashboard.
	APIKey string
}

// Gateway performs every outbound HTTP call. No other component does
// network I/O.
type Gateway struct {
	baseURL string
	http    *http.Client
	creds   credstore.Store
	log     logging.Logger

	mu          sync.Mutex
	invalidated []func()
}

// NewGateway builds a Gateway for the backend at baseURL (no trailing
// slash). The credential store is only ever read here; clearing on
// invalidation is the job of whoever subscribes via OnSessionInvalidated.
func NewGateway(baseURL string, timeout time.Duration, creds credstore.Store, log logging.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log,
	}
}

// OnSessionInvalidated registers fn to run synchronously whenever a call
// comes back unauthorized, before the error reaches the caller. The session
// manager subscribes its Invalidate method at wiring time; the gateway
// itself never mutates the credential store.
func (g *Gateway) OnSessionInvalidated(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.invalidated = append(g.invalidated, fn)
}

func (g *Gateway) notifyInvalidated() {
	g.mu.Lock()
	fns := make([]func(), len(g.invalidated))
	copy(fns, g.invalidated)
	g.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// publicPrefixes lists the auth endpoints that must stay reachable without
// a session token.
var publicPrefixes = []string{
	"/api/auth/login",
	"/api/auth/signup",
	"/api/auth/verify-email/",
	"/api/auth/resend-verification",
}

func isPublic(path string) bool {
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Call sends one request and returns the raw JSON body on success. body,
// when non-nil, is marshalled as JSON. Every failure comes back as *Error;
// the call is attempted exactly once.
func (g *Gateway) Call(ctx context.Context, method, path string, body any, opts *CallOptions) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Category: CategoryUnknown, Message: "cannot encode request body"}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, &Error{Category: CategoryUnknown, Message: "cannot build request"}
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts != nil && opts.APIKey != "" {
		req.Header.Set("X-API-KEY", opts.APIKey)
	}
	if !isPublic(path) {
		if token, ok := g.creds.Read(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := g.http.Do(req)
	if err != nil {
		// No response at all. The user-facing message stays generic; the
		// transport detail goes to the log only.
		g.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, &Error{Category: CategoryNetwork, Message: genericMessage(CategoryNetwork)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		g.log.Warn(ctx, "response read failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, &Error{Category: CategoryNetwork, Message: genericMessage(CategoryNetwork)}
	}

	g.log.Debug(ctx, "request done", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(data) == 0 {
			return nil, nil
		}
		return json.RawMessage(data), nil
	}

	cat := CategoryFromStatus(resp.StatusCode)
	msg := extractMessage(data)
	if msg == "" {
		msg = genericMessage(cat)
	}

	if cat == CategoryUnauthorized {
		g.notifyInvalidated()
	}

	return nil, &Error{Category: cat, Status: resp.StatusCode, Message: msg}
}

// Unmarshal decodes a gateway response body into v, mapping decode failures
// into the unknown category so callers see a typed error everywhere.
// Unknown extra fields in the body are ignored for forward compatibility.
func Unmarshal(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return &Error{Category: CategoryUnknown, Message: "empty response from server"}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &Error{Category: CategoryUnknown, Message: "malformed response from server"}
	}
	return nil
}
