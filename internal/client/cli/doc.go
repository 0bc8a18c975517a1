// Package cli provides the interactive textwatch command-line dashboard.
//
// It wires the credential store, API gateway, session manager, and domain
// services, then runs a REPL. Public commands (login, signup, verify,
// resend) work in any state; protected commands (detect, history, keys,
// profile) pass through the route guard on every dispatch and are redirected
// to the login entry point while the session is anonymous.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
