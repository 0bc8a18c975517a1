// Package session derives the dashboard's authentication state from the
// credential store and exposes the login/logout transitions.
//
// A session is a projection, not an entity: State re-reads the store on
// every call, so a credential cleared elsewhere (gateway-triggered
// invalidation) is reflected immediately, with no polling loop. The manager
// tracks only the presence of a credential; profile data belongs to the
// profile service.
package session

import (
	"errors"
	"strings"

	"github.com/textwatch/textwatch/internal/client/credstore"
)

// State is one of the two observable session states.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

var ErrEmptyToken = errors.New("empty token")

// Manager is constructor-injected wherever session state is consulted;
// there is no package-level session.
type Manager struct {
	creds credstore.Store
}

func NewManager(creds credstore.Store) *Manager {
	return &Manager{creds: creds}
}

// State reports authenticated iff a token is present. No network round-trip
// validates the token; validity is discovered lazily on the first protected
// request.
func (m *Manager) State() State {
	if _, ok := m.creds.Read(); ok {
		return StateAuthenticated
	}
	return StateAnonymous
}

func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// Login stores the bearer token, replacing any previous one.
func (m *Manager) Login(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}
	return m.creds.Save(token)
}

// Logout clears the stored credential. Callable from either state.
func (m *Manager) Logout() error {
	return m.creds.Clear()
}

// Invalidate is the subscriber for the gateway's session-invalidated
// signal. It is Logout minus the error: invalidation happens on an error
// path already and must not mask the original failure.
func (m *Manager) Invalidate() {
	_ = m.creds.Clear()
}
