package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signet/internal/client/view"
)

// replStub scripts the screen seen on each loop iteration and records
// which handlers ran.
type replStub struct {
	screens  []view.Screen
	idx      int
	waitOK   bool
	calls    []string
	waitHits int
}

func (s *replStub) Screen() view.Screen {
	if s.idx >= len(s.screens) {
		return s.screens[len(s.screens)-1]
	}
	scr := s.screens[s.idx]
	s.idx++
	return scr
}

func (s *replStub) Status() string { return "(test)" }

func (s *replStub) WaitForState(_ context.Context) bool {
	s.waitHits++
	return s.waitOK
}

func (s *replStub) SignIn(context.Context) error {
	s.calls = append(s.calls, "login")
	return nil
}

func (s *replStub) Register(context.Context) error {
	s.calls = append(s.calls, "register")
	return nil
}

func (s *replStub) SignOut(context.Context) error {
	s.calls = append(s.calls, "logout")
	return nil
}

func (s *replStub) ChangePassword(context.Context) error {
	s.calls = append(s.calls, "password")
	return nil
}

func (s *replStub) WhoAmI() {
	s.calls = append(s.calls, "whoami")
}

func runScripted(t *testing.T, stub *replStub, input string) string {
	t.Helper()
	out := captureOutput(t)
	runREPL(context.Background(), stub, bufio.NewScanner(strings.NewReader(input)))
	return out.String()
}

func TestRunREPL_AuthScreenCommands(t *testing.T) {
	stub := &replStub{screens: []view.Screen{view.ScreenAuth}}
	out := runScripted(t, stub, "help\nregister\nlogin\nbogus\nexit\n")

	assert.Contains(t, out, "Available commands: register, login, exit")
	assert.Contains(t, out, "Unknown command: bogus")
	assert.Contains(t, out, "Bye!")
	assert.Equal(t, []string{"register", "login"}, stub.calls)
}

func TestRunREPL_HomeScreenCommands(t *testing.T) {
	stub := &replStub{screens: []view.Screen{view.ScreenHome}}
	out := runScripted(t, stub, "help\nwhoami\npassword\nlogout\nquit\n")

	assert.Contains(t, out, "Available commands: whoami, password, logout, exit")
	assert.Contains(t, out, "Bye!")
	assert.Equal(t, []string{"whoami", "password", "logout"}, stub.calls)
}

func TestRunREPL_HomeCommandsUnavailableOnAuthScreen(t *testing.T) {
	stub := &replStub{screens: []view.Screen{view.ScreenAuth}}
	out := runScripted(t, stub, "whoami\nexit\n")

	assert.Contains(t, out, "Unknown command: whoami")
	assert.Empty(t, stub.calls)
}

func TestRunREPL_LoadingWaitsForFirstState(t *testing.T) {
	stub := &replStub{
		screens: []view.Screen{view.ScreenLoading, view.ScreenAuth},
		waitOK:  true,
	}
	out := runScripted(t, stub, "exit\n")

	assert.Contains(t, out, "Loading...")
	assert.Equal(t, 1, stub.waitHits)
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_LoadingExitsWhenContextEnds(t *testing.T) {
	stub := &replStub{screens: []view.Screen{view.ScreenLoading}, waitOK: false}
	runScripted(t, stub, "")
	assert.Equal(t, 1, stub.waitHits)
	assert.Empty(t, stub.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	stub := &replStub{screens: []view.Screen{view.ScreenAuth}}
	out := runScripted(t, stub, "")
	assert.NotContains(t, out, "Bye!")
}

func TestRunREPL_BlankLinesIgnored(t *testing.T) {
	stub := &replStub{screens: []view.Screen{view.ScreenHome}}
	out := runScripted(t, stub, "\n   \nexit\n")

	assert.NotContains(t, out, "Unknown command")
	assert.Contains(t, out, "Bye!")
	assert.Empty(t, stub.calls)
}

func TestFirstField(t *testing.T) {
	require.Equal(t, "login", firstField("  login extra args "))
	require.Equal(t, "", firstField("   "))
	require.Equal(t, "", firstField(""))
}
