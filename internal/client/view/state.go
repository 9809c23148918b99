// Package view classifies the live authentication state and chooses the
// active screen from it. The Watcher is the only reader of the backend
// session stream; Route is a pure state-to-screen mapping, so navigation
// can never diverge from what the provider says is signed in.
package view

import "signet/internal/client/identity"

// Phase is the three-way classification of the current authentication state.
type Phase int

const (
	// Loading: no session event has arrived yet.
	Loading Phase = iota
	// Authenticated: a session is active.
	Authenticated
	// Unauthenticated: the provider reported no session.
	Unauthenticated
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// State is a snapshot of the authentication state. Exactly one phase is
// active at a time; Session is non-nil exactly when Phase is Authenticated.
// States are produced only by the Watcher from backend events, never
// mutated by the application.
type State struct {
	Phase   Phase
	Session *identity.Session
}

// stateFor classifies a session-stream event.
func stateFor(s *identity.Session) State {
	if s == nil {
		return State{Phase: Unauthenticated}
	}
	return State{Phase: Authenticated, Session: s}
}
