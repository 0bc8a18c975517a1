package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Category
	}{
		{401, CategoryUnauthorized},
		{403, CategoryForbidden},
		{404, CategoryNotFound},
		{400, CategoryValidation},
		{409, CategoryValidation},
		{422, CategoryValidation},
		{500, CategoryServer},
		{502, CategoryServer},
		{503, CategoryServer},
		{302, CategoryUnknown},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d", tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, CategoryFromStatus(tc.status))
		})
	}
}

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "detail", body: `{"detail":"token expired"}`, want: "token expired"},
		{name: "error", body: `{"error":"Invalid API key."}`, want: "Invalid API key."},
		{name: "message", body: `{"message":"Email is required."}`, want: "Email is required."},
		{
			name: "detail wins over message",
			body: `{"message":"secondary","detail":"primary"}`,
			want: "primary",
		},
		{
			name: "field error map",
			body: `{"password":["Passwords don't match"]}`,
			want: "password: Passwords don't match",
		},
		{
			name: "field error map is deterministic",
			body: `{"zz":["later"],"aa":["first"]}`,
			want: "aa: first",
		},
		{name: "not json", body: `<html>gateway timeout</html>`, want: ""},
		{name: "empty object", body: `{}`, want: ""},
		{name: "non-string detail", body: `{"detail":{"nested":true}}`, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractMessage([]byte(tc.body)))
		})
	}
}

func TestError_Error(t *testing.T) {
	withStatus := &Error{Category: CategoryUnauthorized, Status: 401, Message: "token expired"}
	assert.Equal(t, "unauthorized (401): token expired", withStatus.Error())

	noStatus := &Error{Category: CategoryNetwork, Message: "cannot reach the server"}
	assert.Equal(t, "network: cannot reach the server", noStatus.Error())
}

func TestIsCategory(t *testing.T) {
	err := fmt.Errorf("analyze: %w", NewValidationError("text must not be empty"))

	assert.True(t, IsCategory(err, CategoryValidation))
	assert.False(t, IsCategory(err, CategoryServer))
	assert.False(t, IsCategory(errors.New("plain"), CategoryValidation))
	assert.False(t, IsCategory(nil, CategoryValidation))
}
