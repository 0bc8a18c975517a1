// Package services contains the typed domain clients of the dashboard:
// authentication, detection, API-key management, and profile. Each is a thin
// façade that translates one resource operation into one gateway call and
// maps the JSON result onto the model types.
//
// Services may add a local validation error before any network attempt
// (empty text, key-count cap) but never mask a backend error; local and
// remote validation failures share the api.CategoryValidation category.
package services
