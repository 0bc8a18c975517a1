package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textwatch/textwatch/internal/client/api"
)

const twoKeysJSON = `[
	{"id":1,"key":"aaaaaaaabbbbbbbbccccccccdddddddd","created_at":"2025-01-01T00:00:00Z"},
	{"id":2,"key":"eeeeeeeeffffffffgggggggghhhhhhhh","created_at":"2025-01-02T00:00:00Z"}
]`

func TestKeys_ListRefreshesCache(t *testing.T) {
	fc := &fakeCaller{ret: json.RawMessage(twoKeysJSON)}
	svc := NewKeyService(fc)

	keys, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, int64(1), keys[0].ID)

	assert.Len(t, svc.Cached(), 2)
	require.Len(t, fc.calls, 1)
	assert.Equal(t, http.MethodGet, fc.calls[0].method)
	assert.Equal(t, "/api/auth/api-keys/", fc.calls[0].path)
}

// At the cap the create is refused locally, with no network call. Below the
// cap exactly one call goes out.
func TestKeys_CreateCapGuard(t *testing.T) {
	t.Run("cache at cap refuses locally", func(t *testing.T) {
		fc := &fakeCaller{ret: json.RawMessage(twoKeysJSON)}
		svc := NewKeyService(fc)
		_, err := svc.List(context.Background())
		require.NoError(t, err)
		callsAfterList := len(fc.calls)

		key, err := svc.Create(context.Background())

		assert.Nil(t, key)
		assert.True(t, api.IsCategory(err, api.CategoryValidation))
		assert.Len(t, fc.calls, callsAfterList, "no network call at the cap")
	})

	t.Run("below cap issues one call", func(t *testing.T) {
		fc := &fakeCaller{
			ret: json.RawMessage(`{"id":7,"key":"xxxxxxxxyyyyyyyyzzzzzzzzwwwwwwww","created_at":"2025-02-01T00:00:00Z"}`),
		}
		svc := NewKeyService(fc)

		key, err := svc.Create(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(7), key.ID)

		require.Len(t, fc.calls, 1)
		assert.Equal(t, http.MethodPost, fc.calls[0].method)
		assert.Equal(t, "/api/auth/api-keys/create/", fc.calls[0].path)
		assert.Len(t, svc.Cached(), 1)
	})
}

// Two confirmed creates fill the cache; the third is refused locally even
// though List was never called.
func TestKeys_CreateCountsOwnCreations(t *testing.T) {
	n := 0
	fc := &fakeCaller{}
	fc.handler = func(method, path string, body any, opts *api.CallOptions) (json.RawMessage, error) {
		n++
		return json.RawMessage(fmt.Sprintf(`{"id":%d,"key":"k","created_at":"2025-01-01T00:00:00Z"}`, n)), nil
	}
	svc := NewKeyService(fc)

	_, err := svc.Create(context.Background())
	require.NoError(t, err)
	_, err = svc.Create(context.Background())
	require.NoError(t, err)

	_, err = svc.Create(context.Background())
	assert.True(t, api.IsCategory(err, api.CategoryValidation))
	assert.Len(t, fc.calls, 2)
}

// The backend stays authoritative: its own cap rejection surfaces as the
// same validation category.
func TestKeys_ServerCapRejectionIsAuthoritative(t *testing.T) {
	fc := &fakeCaller{err: &api.Error{Category: api.CategoryValidation, Status: 400, Message: "Maximum 2 API keys allowed."}}
	svc := NewKeyService(fc)

	key, err := svc.Create(context.Background())

	assert.Nil(t, key)
	assert.True(t, api.IsCategory(err, api.CategoryValidation))
	assert.Empty(t, svc.Cached(), "a rejected create must not grow the cache")
}

func TestKeys_DeleteUpdatesCacheOnConfirmation(t *testing.T) {
	fc := &fakeCaller{ret: json.RawMessage(twoKeysJSON)}
	svc := NewKeyService(fc)
	_, err := svc.List(context.Background())
	require.NoError(t, err)

	fc.ret = nil // delete returns 204 with no body
	require.NoError(t, svc.Delete(context.Background(), 1))

	cached := svc.Cached()
	require.Len(t, cached, 1)
	assert.Equal(t, int64(2), cached[0].ID)

	last := fc.calls[len(fc.calls)-1]
	assert.Equal(t, http.MethodDelete, last.method)
	assert.Equal(t, "/api/auth/api-keys/delete/1/", last.path)
}

func TestKeys_DeleteFailureKeepsCache(t *testing.T) {
	fc := &fakeCaller{ret: json.RawMessage(twoKeysJSON)}
	svc := NewKeyService(fc)
	_, err := svc.List(context.Background())
	require.NoError(t, err)

	fc.ret = nil
	fc.err = &api.Error{Category: api.CategoryNotFound, Status: 404, Message: "API key not found."}

	err = svc.Delete(context.Background(), 1)
	assert.True(t, api.IsCategory(err, api.CategoryNotFound))
	assert.Len(t, svc.Cached(), 2, "cache changes only after backend confirmation")
}
