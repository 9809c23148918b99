package identity

import "context"

// Backend is the client's view of the hosted identity provider.
//
// Contract:
//   - CreateAccount / Authenticate: exchange credentials for a Session.
//     Success also makes the new session appear on the subscription stream;
//     callers must not navigate on the returned value, the stream is the
//     single source of truth.
//   - EndSession: revoke the active session and emit nil on the stream.
//     With no active session it is a no-op.
//   - UpdateCredential: change the password of the active session. Fails
//     with ErrNoSession when nothing is signed in, and with
//     ErrRequiresRecentLogin when the provider judges the session stale.
//   - Subscribe: push stream of session-or-nil. The current value is
//     emitted immediately on subscribe, then every sign-in/sign-out, in
//     provider order with no coalescing. The cancel func releases the
//     subscription and closes the channel.
//
// All blocking methods honor context cancellation. No method retries.
type Backend interface {
	CreateAccount(ctx context.Context, email, password string) (*Session, error)
	Authenticate(ctx context.Context, email, password string) (*Session, error)
	EndSession(ctx context.Context) error
	UpdateCredential(ctx context.Context, newPassword string) error
	Subscribe() (<-chan *Session, func())
}
