package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textwatch/textwatch/internal/client/api"
)

// Empty and whitespace-only text must be rejected locally, with no network
// attempt.
func TestAnalyze_EmptyTextGuard(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		fc := &fakeCaller{}
		svc := NewDetectionService(fc)

		res, err := svc.Analyze(context.Background(), text, "key-abc")

		assert.Nil(t, res)
		assert.True(t, api.IsCategory(err, api.CategoryValidation), "text %q", text)
		assert.Empty(t, fc.calls, "no network call for text %q", text)
	}
}

func TestAnalyze_MapsResponse(t *testing.T) {
	fc := &fakeCaller{
		// brand_new_field simulates a newer backend; it must be ignored.
		ret: json.RawMessage(`{"classification":"safe","confidence":0.95,"engine":"transformer","latency_ms":145.2,"brand_new_field":true}`),
	}
	svc := NewDetectionService(fc)

	res, err := svc.Analyze(context.Background(), "Hello there", "key-abc")
	require.NoError(t, err)

	assert.Equal(t, "safe", res.Classification)
	assert.Equal(t, 0.95, res.Confidence)
	assert.Equal(t, "transformer", res.Engine)
	assert.Equal(t, 145.2, res.LatencyMS)
	assert.Empty(t, res.Sentiment, "sentiment stays unset when the backend omits it")

	require.Len(t, fc.calls, 1)
	call := fc.calls[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/api/detect/", call.path)
	assert.Equal(t, map[string]string{"text": "Hello there"}, call.body)
	require.NotNil(t, call.opts)
	assert.Equal(t, "key-abc", call.opts.APIKey)
}

// Without a selected key the request still goes out; the backend is the
// authority on keyless detection.
func TestAnalyze_NoAPIKey(t *testing.T) {
	fc := &fakeCaller{ret: json.RawMessage(`{"classification":"safe","confidence":0.5}`)}
	svc := NewDetectionService(fc)

	_, err := svc.Analyze(context.Background(), "hi", "")
	require.NoError(t, err)

	require.Len(t, fc.calls, 1)
	assert.Nil(t, fc.calls[0].opts)
}

func TestAnalyze_PassesBackendErrorUnchanged(t *testing.T) {
	backendErr := &api.Error{Category: api.CategoryForbidden, Status: 403, Message: "Invalid API key."}
	fc := &fakeCaller{err: backendErr}
	svc := NewDetectionService(fc)

	_, err := svc.Analyze(context.Background(), "hi", "bad-key")
	assert.Equal(t, backendErr, err)
}

func TestHistory_PreservesBackendOrder(t *testing.T) {
	fc := &fakeCaller{
		ret: json.RawMessage(`[
			{"id":3,"text":"newest","classification":"toxic","confidence":0.9,"created_at":"2025-03-02T10:00:00Z"},
			{"id":1,"text":"oldest","classification":"safe","confidence":0.8,"created_at":"2025-03-01T10:00:00Z"}
		]`),
	}
	svc := NewDetectionService(fc)

	items, err := svc.History(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, int64(3), items[0].ID, "no client-side re-sorting")
	assert.Equal(t, int64(1), items[1].ID)
	assert.Equal(t, "toxic", items[0].Classification)

	require.Len(t, fc.calls, 1)
	assert.Equal(t, http.MethodGet, fc.calls[0].method)
	assert.Equal(t, "/api/detect/history/", fc.calls[0].path)
}
