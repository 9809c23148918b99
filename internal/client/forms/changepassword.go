package forms

import (
	"context"

	"signet/internal/client/identity"
)

// ChangePassword updates the active session's password. The backend may
// still reject the call with ErrRequiresRecentLogin; that is provider
// policy, not something checked locally.
type ChangePassword struct {
	machine
	backend identity.Backend

	newPassword string
}

func NewChangePassword(b identity.Backend) *ChangePassword {
	return &ChangePassword{backend: b}
}

func (f *ChangePassword) SetNewPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.newPassword = v
	f.resetLocked()
}

func (f *ChangePassword) Submit(ctx context.Context) error {
	f.mu.Lock()
	in := PasswordChange{NewPassword: f.newPassword}
	f.mu.Unlock()

	if err := in.Validate(); err != nil {
		return err
	}
	if err := f.begin(); err != nil {
		return err
	}
	err := f.backend.UpdateCredential(ctx, in.NewPassword)
	f.finish(err)
	return err
}
