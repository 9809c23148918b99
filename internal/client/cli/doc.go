// Package cli is the interactive Signet client.
//
// It wires configuration, the identity provider adapter, the session
// watcher and the auth forms into a prompt loop. Which screen is shown is
// never decided here: every iteration asks view.Route for the screen that
// matches the latest session state, so the UI cannot drift from what the
// provider says is signed in.
//
// Screens and commands:
//
//	Loading:  waits for the first session event
//	Auth:     register, login, help, exit
//	Home:     whoami, password, logout, help, exit
//
// Command handlers print their own transient messages; no failure is fatal
// to the process. The loop is started via App.Run(ctx), which blocks until
// the user exits.
package cli
