// Package guard decides whether a protected view may proceed.
package guard

import "github.com/textwatch/textwatch/internal/client/session"

// LoginEntry is where an anonymous user is redirected: the login command.
const LoginEntry = "login"

// Decision is the guard's verdict. When Allow is false, RedirectTo names
// the entry point the caller should route to.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Check is pure: it inspects the given session state and mutates nothing.
// Callers must re-evaluate it on every navigation rather than cache the
// decision, since the gateway can revoke the session between commands.
func Check(s session.State) Decision {
	if s == session.StateAuthenticated {
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: LoginEntry}
}
