package forms

import (
	"context"

	"signet/internal/client/identity"
)

// Register creates a new account. Registration applies the strict email
// shape check and the minimum password length before any request.
type Register struct {
	machine
	backend identity.Backend

	email    string
	password string
}

func NewRegister(b identity.Backend) *Register {
	return &Register{backend: b}
}

func (f *Register) SetEmail(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = v
	f.resetLocked()
}

func (f *Register) SetPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.password = v
	f.resetLocked()
}

func (f *Register) Submit(ctx context.Context) error {
	f.mu.Lock()
	in := Registration{Email: f.email, Password: f.password}
	f.mu.Unlock()

	if err := in.Validate(); err != nil {
		return err
	}
	if err := f.begin(); err != nil {
		return err
	}
	_, err := f.backend.CreateAccount(ctx, in.Email, in.Password)
	f.finish(err)
	return err
}
