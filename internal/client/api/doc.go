// Package api contains the client-side gateway to the detection backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (the Caller interface) that domain
//     services depend on, so tests can substitute fakes.
//  2. A concrete HTTP implementation (Gateway) that is the single network
//     choke point of the application: it attaches the session bearer token
//     (except on public auth endpoints), forwards a per-call API key when
//     one is supplied, tags every request with an X-Request-ID, and maps
//     every failure into a typed *Error.
//  3. The error taxonomy itself: unauthorized, forbidden, not_found,
//     validation, server, network, unknown.
//
// # Error Handling
//
// No raw transport error ever crosses the Call boundary. Callers match on
// the category with IsCategory or errors.As. An unauthorized response
// additionally fires the session-invalidated signal (see
// Gateway.OnSessionInvalidated) before the error is returned, so session
// state is already de-authenticated when the caller's error handler runs.
//
// # Retries
//
// Every call is attempted exactly once. Retry policy belongs to callers.
package api
