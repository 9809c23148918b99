package cli

import (
	"context"
	"os"

	"signet/internal/client/view"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to the interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// reportError logs the underlying failure and prints its user-facing
// translation. Unrecognized errors reach the screen as a generic line, so
// the log record is the only place their detail survives.
func (a *App) reportError(ctx context.Context, op string, err error) {
	a.log.Warn(ctx, op+" failed", "error", err)
	printlnFn(errorMessage(err))
}

// Register prompts for an email and password and submits the registration
// form. Locally-invalid input is rejected before any backend request.
//
// The success message is optimistic: it prints as soon as the provider
// accepts, which may precede the screen switch by one event delivery.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password (6+ characters)", os.Stdout)
	if err != nil {
		return err
	}
	a.register.SetEmail(email)
	a.register.SetPassword(string(password))
	wipeBytes(password)

	if err := a.register.Submit(ctx); err != nil {
		a.reportError(ctx, "registration", err)
		return err
	}
	printlnFn("Account created!")
	return nil
}

// SignIn prompts for credentials and submits the sign-in form. Navigation
// to the home screen happens via the session stream, never here.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	a.signIn.SetEmail(email)
	a.signIn.SetPassword(string(password))
	wipeBytes(password)

	if err := a.signIn.Submit(ctx); err != nil {
		a.reportError(ctx, "sign-in", err)
		return err
	}
	printlnFn("Signed in!")
	return nil
}

// ChangePassword prompts for a new password and submits the change form.
// The provider may demand a recent sign-in; that failure is surfaced like
// any other, without forcing a sign-out.
func (a *App) ChangePassword(ctx context.Context) error {
	password, err := getPassword("Enter new password (6+ characters)", os.Stdout)
	if err != nil {
		return err
	}
	a.changePassword.SetNewPassword(string(password))
	wipeBytes(password)

	if err := a.changePassword.Submit(ctx); err != nil {
		a.reportError(ctx, "credential update", err)
		return err
	}
	printlnFn("Password changed!")
	return nil
}

// SignOut ends the active session. Repeating it when nothing is signed in
// is harmless.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.backend.EndSession(ctx); err != nil {
		a.reportError(ctx, "sign-out", err)
		return err
	}
	return nil
}

// WhoAmI prints the identity of the active session.
func (a *App) WhoAmI() {
	st := a.watcher.Current()
	if st.Phase != view.Authenticated {
		printlnFn("Not signed in.")
		return
	}
	if st.Session.Email != "" {
		printlnFn("Signed in as", st.Session.Email, "("+st.Session.UID+")")
		return
	}
	printlnFn("Signed in as", st.Session.UID)
}
