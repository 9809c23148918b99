package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"signet/internal/client/config"
	"signet/internal/client/forms"
	"signet/internal/client/httpapi"
	"signet/internal/client/identity"
	"signet/internal/client/view"
	"signet/internal/logging"
)

// App owns the pieces of the interactive client: the backend adapter, the
// session watcher and one instance of each auth form.
type App struct {
	config         *config.Config
	backend        identity.Backend
	watcher        *view.Watcher
	signIn         *forms.SignIn
	register       *forms.Register
	changePassword *forms.ChangePassword
	log            logging.Logger
	reader         *bufio.Reader
}

// NewApp builds an App against the provider configured in cfg.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	backend := httpapi.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, log)
	return newApp(cfg, backend, log)
}

// newApp is the seam tests use to substitute a fake backend.
func newApp(cfg *config.Config, backend identity.Backend, log logging.Logger) *App {
	return &App{
		config:         cfg,
		backend:        backend,
		watcher:        view.NewWatcher(backend),
		signIn:         forms.NewSignIn(backend),
		register:       forms.NewRegister(backend),
		changePassword: forms.NewChangePassword(backend),
		log:            log.With("component", "cli"),
		reader:         bufio.NewReader(os.Stdin),
	}
}

// Run blocks in the prompt loop until the user exits or ctx is canceled.
// Closing the watcher on the way out releases the session-stream
// subscription.
func (a *App) Run(ctx context.Context) {
	defer a.watcher.Close()
	printlnFn("Welcome to Signet (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

// Screen drains any pending session events and returns the screen routed
// from the latest state. Draining here keeps the watcher's buffer from
// filling while the loop sits at a prompt.
func (a *App) Screen() view.Screen {
	for {
		select {
		case st, ok := <-a.watcher.States():
			if !ok {
				return view.Route(a.watcher.Current())
			}
			a.log.Info(context.Background(), "session state changed", "state", st.Phase)
		default:
			return view.Route(a.watcher.Current())
		}
	}
}

// WaitForState blocks until the next session event, reporting false when
// the stream is gone or ctx is canceled.
func (a *App) WaitForState(ctx context.Context) bool {
	select {
	case _, ok := <-a.watcher.States():
		return ok
	case <-ctx.Done():
		return false
	}
}

// Status renders the prompt decoration for the current state.
func (a *App) Status() string {
	st := a.watcher.Current()
	if st.Phase == view.Authenticated {
		if st.Session.Email != "" {
			return fmt.Sprintf("(%s)", st.Session.Email)
		}
		return fmt.Sprintf("(%s)", st.Session.UID)
	}
	return ""
}
