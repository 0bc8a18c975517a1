// Package models defines the dashboard-facing data shapes returned by the
// backend. All of them are read-only projections; the client never mutates
// a value after decoding it.
package models

import "time"

// DetectionResult is the outcome of one analysis call. Engine, LatencyMS
// and Sentiment are optional and stay zero when the backend omits them.
type DetectionResult struct {
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
	Engine         string  `json:"engine,omitempty"`
	LatencyMS      float64 `json:"latency_ms,omitempty"`
	Sentiment      string  `json:"sentiment,omitempty"`
}

// HistoryItem is one past analysis, sourced entirely from the backend.
type HistoryItem struct {
	ID             int64     `json:"id"`
	Text           string    `json:"text"`
	Classification string    `json:"classification"`
	Confidence     float64   `json:"confidence"`
	CreatedAt      time.Time `json:"created_at"`
}

// APIKey authorizes programmatic detection calls. The full key value is
// shown once, right after creation; everywhere else use Elided.
type APIKey struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"created_at"`
}

// Elided returns the key in its partially hidden display form.
func (k APIKey) Elided() string {
	if len(k.Key) <= 16 {
		return k.Key
	}
	return k.Key[:8] + "..." + k.Key[len(k.Key)-8:]
}

// Profile is the authenticated user's account data.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
