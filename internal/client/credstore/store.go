// Package credstore persists the dashboard's single bearer token between
// runs. It is a pure key-value boundary: no validation, decoding, or expiry
// logic lives here, so the rest of the system has one seam to intercept in
// tests.
package credstore

// Store holds at most one bearer token.
//
// Contract:
//   - Save replaces any prior value.
//   - Read reports the current token and whether one is present. No side effects.
//   - Clear removes the token; clearing an empty store is a no-op.
type Store interface {
	Save(token string) error
	Read() (string, bool)
	Clear() error
}
