package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"signet/internal/client/config"
	"signet/internal/client/identity"
	"signet/internal/client/identity/identitytest"
	"signet/internal/client/view"
	"signet/internal/logging"
)

func testLogger() logging.Logger {
	return logging.New(io.Discard, slog.LevelError)
}

func stubInputs(t *testing.T, email string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func captureOutput(t *testing.T) *strings.Builder {
	t.Helper()
	var out strings.Builder
	origLn, origF := printlnFn, printfFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&out, a...) }
	printfFn = func(format string, a ...any) (int, error) { return fmt.Fprintf(&out, format, a...) }
	t.Cleanup(func() {
		printlnFn = origLn
		printfFn = origF
	})
	return &out
}

func newTestApp(t *testing.T, backend identity.Backend) *App {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	a := newApp(cfg, backend, testLogger())
	t.Cleanup(func() { a.watcher.Close() })
	return a
}

// waitForScreen synchronizes with the watcher goroutine that forwards
// backend session events.
func waitForScreen(t *testing.T, a *App, want view.Screen) {
	t.Helper()
	require.Eventually(t, func() bool { return a.Screen() == want },
		time.Second, 5*time.Millisecond)
}

func TestSignIn_CommandSwitchesScreenViaStream(t *testing.T) {
	f := identitytest.New()
	f.Seed("alice@example.org", "secret1")
	a := newTestApp(t, f)
	out := captureOutput(t)
	stubInputs(t, "alice@example.org", []byte("secret1"))

	waitForScreen(t, a, view.ScreenAuth)
	require.NoError(t, a.SignIn(context.Background()))

	require.Contains(t, out.String(), "Signed in!")
	waitForScreen(t, a, view.ScreenHome)
	require.Equal(t, "(alice@example.org)", a.Status())
}

func TestSignIn_WrongPasswordShowsMappedMessage(t *testing.T) {
	f := identitytest.New()
	f.Seed("alice@example.org", "secret1")
	a := newTestApp(t, f)
	out := captureOutput(t)
	stubInputs(t, "alice@example.org", []byte("nope"))

	err := a.SignIn(context.Background())
	require.ErrorIs(t, err, identity.ErrWrongCredential)
	require.Contains(t, out.String(), "Wrong email or password.")
	waitForScreen(t, a, view.ScreenAuth)
}

func TestRegister_Command(t *testing.T) {
	f := identitytest.New()
	a := newTestApp(t, f)
	out := captureOutput(t)
	stubInputs(t, "bob@example.org", []byte("secret1"))

	require.NoError(t, a.Register(context.Background()))
	require.Contains(t, out.String(), "Account created!")
	require.Equal(t, 1, f.CreateCalls)
	waitForScreen(t, a, view.ScreenHome)
}

func TestRegister_InvalidEmailNeverReachesBackend(t *testing.T) {
	f := identitytest.New()
	a := newTestApp(t, f)
	out := captureOutput(t)
	stubInputs(t, "not-an-email", []byte("secret1"))

	require.Error(t, a.Register(context.Background()))
	require.Equal(t, 0, f.CreateCalls)
	require.Contains(t, out.String(), "Invalid input:")
}

func TestSignOut_TwiceIsHarmless(t *testing.T) {
	f := identitytest.New()
	f.Seed("alice@example.org", "secret1")
	a := newTestApp(t, f)
	captureOutput(t)
	stubInputs(t, "alice@example.org", []byte("secret1"))

	require.NoError(t, a.SignIn(context.Background()))
	waitForScreen(t, a, view.ScreenHome)

	require.NoError(t, a.SignOut(context.Background()))
	waitForScreen(t, a, view.ScreenAuth)
	require.NoError(t, a.SignOut(context.Background()))
	waitForScreen(t, a, view.ScreenAuth)
}

func TestChangePassword_StaleSession(t *testing.T) {
	f := identitytest.New()
	f.Seed("alice@example.org", "secret1")
	a := newTestApp(t, f)
	out := captureOutput(t)
	stubInputs(t, "alice@example.org", []byte("secret1"))

	require.NoError(t, a.SignIn(context.Background()))
	waitForScreen(t, a, view.ScreenHome)
	f.MarkStale()

	stubInputs(t, "", []byte("brandnewpw"))
	err := a.ChangePassword(context.Background())
	require.ErrorIs(t, err, identity.ErrRequiresRecentLogin)
	require.Contains(t, out.String(), "Please sign in again")
	// No forced sign-out.
	waitForScreen(t, a, view.ScreenHome)
}

func TestSignIn_UnexpectedErrorIsLoggedNotShown(t *testing.T) {
	f := identitytest.New()
	f.AuthErr = errors.New("parse id token: token contains an invalid number of segments")

	var logBuf bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()
	a := newApp(cfg, f, logging.New(&logBuf, slog.LevelWarn))
	t.Cleanup(func() { a.watcher.Close() })

	out := captureOutput(t)
	stubInputs(t, "alice@example.org", []byte("secret1"))

	require.Error(t, a.SignIn(context.Background()))
	require.Contains(t, out.String(), "Something went wrong. Please try again.")
	require.NotContains(t, out.String(), "invalid number of segments")
	require.Contains(t, logBuf.String(), "sign-in failed")
	require.Contains(t, logBuf.String(), "invalid number of segments")
}

func TestWhoAmI(t *testing.T) {
	f := identitytest.New()
	f.Seed("alice@example.org", "secret1")
	a := newTestApp(t, f)
	out := captureOutput(t)

	a.WhoAmI()
	require.Contains(t, out.String(), "Not signed in.")

	stubInputs(t, "alice@example.org", []byte("secret1"))
	require.NoError(t, a.SignIn(context.Background()))
	waitForScreen(t, a, view.ScreenHome)

	a.WhoAmI()
	require.Contains(t, out.String(), "alice@example.org")
}
