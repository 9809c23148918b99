package forms

import (
	"context"

	"signet/internal/client/identity"
)

// SignIn authenticates an existing account. A successful submission makes
// the backend emit the new session on its stream; the form itself only
// records Succeeded.
type SignIn struct {
	machine
	backend identity.Backend

	email    string
	password string
}

func NewSignIn(b identity.Backend) *SignIn {
	return &SignIn{backend: b}
}

func (f *SignIn) SetEmail(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = v
	f.resetLocked()
}

func (f *SignIn) SetPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.password = v
	f.resetLocked()
}

// Submit validates locally and, only if valid, authenticates against the
// backend. Invalid input returns the validation error with the form still
// Idle and the backend untouched.
func (f *SignIn) Submit(ctx context.Context) error {
	f.mu.Lock()
	in := Credentials{Email: f.email, Password: f.password}
	f.mu.Unlock()

	if err := in.Validate(); err != nil {
		return err
	}
	if err := f.begin(); err != nil {
		return err
	}
	_, err := f.backend.Authenticate(ctx, in.Email, in.Password)
	f.finish(err)
	return err
}
