package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// Category classifies a failed gateway call.
type Category string

const (
	CategoryUnauthorized Category = "unauthorized"
	CategoryForbidden    Category = "forbidden"
	CategoryNotFound     Category = "not_found"
	CategoryValidation   Category = "validation"
	CategoryServer       Category = "server"
	CategoryNetwork      Category = "network"
	CategoryUnknown      Category = "unknown"
)

// Error is the one error type crossing the gateway boundary.
type Error struct {
	Category Category
	Status   int // HTTP status code, 0 when no response was received
	Message  string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Category, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// NewValidationError builds the local-validation error domain services use
// for checks that must not reach the network (empty text, key cap). Local
// and backend validation failures share the same category so callers handle
// them uniformly.
func NewValidationError(msg string) *Error {
	return &Error{Category: CategoryValidation, Message: msg}
}

// IsCategory reports whether err is a gateway Error of the given category.
func IsCategory(err error, c Category) bool {
	var e *Error
	return errors.As(err, &e) && e.Category == c
}

// CategoryFromStatus maps an HTTP status to an error category: 401 is
// unauthorized, 403 forbidden, 404 not_found, any other 4xx validation,
// 5xx server. Statuses below 400 never become errors, so they map to
// unknown here.
func CategoryFromStatus(status int) Category {
	switch {
	case status == http.StatusUnauthorized:
		return CategoryUnauthorized
	case status == http.StatusForbidden:
		return CategoryForbidden
	case status == http.StatusNotFound:
		return CategoryNotFound
	case status >= 400 && status < 500:
		return CategoryValidation
	case status >= 500:
		return CategoryServer
	default:
		return CategoryUnknown
	}
}

// genericMessage is the user-facing fallback when the backend supplies no
// decodable message. The network message deliberately names no failure
// detail.
func genericMessage(c Category) string {
	switch c {
	case CategoryUnauthorized:
		return "authentication required"
	case CategoryForbidden:
		return "access denied"
	case CategoryNotFound:
		return "not found"
	case CategoryValidation:
		return "invalid request"
	case CategoryServer:
		return "the server reported an error"
	case CategoryNetwork:
		return "cannot reach the server"
	default:
		return "unexpected error"
	}
}

// extractMessage pulls a human-readable message from a backend error body.
// The backend answers with one of {"detail": "..."}, {"error": "..."},
// {"message": "..."}, or a field-error map like {"email": ["msg"]}.
// Returns "" when nothing usable is found.
func extractMessage(body []byte) string {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}

	for _, key := range []string{"detail", "error", "message"} {
		raw, ok := m[key]
		if !ok {
			continue
		}
		var s string
		if json.Unmarshal(raw, &s) == nil && s != "" {
			return s
		}
	}

	// Field-error map: take the first field in name order so the result is
	// deterministic.
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		var list []string
		if json.Unmarshal(m[field], &list) == nil && len(list) > 0 {
			return fmt.Sprintf("%s: %s", field, list[0])
		}
	}
	return ""
}
