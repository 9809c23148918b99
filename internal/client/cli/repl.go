package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"signet/internal/client/view"
)

// printlnFn and printfFn are test seams for user-facing output.
var printlnFn = fmt.Println
var printfFn = fmt.Printf

// execIface is the minimal surface the prompt loop needs. App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	Screen() view.Screen
	Status() string
	WaitForState(ctx context.Context) bool
	SignIn(ctx context.Context) error
	Register(ctx context.Context) error
	SignOut(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	WhoAmI()
}

// runREPL reads a command per iteration and dispatches it against the
// screen routed from the latest session state. Handlers print their own
// messages; their errors are deliberately ignored here so the loop stays
// focused on I/O. Exits on scanner EOF, ctx cancellation or exit/quit.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		switch a.Screen() {
		case view.ScreenLoading:
			printlnFn("Loading...")
			if !a.WaitForState(ctx) {
				return
			}

		case view.ScreenAuth:
			printfFn("signet %s> ", a.Status())
			if !scanner.Scan() {
				return
			}
			switch cmd := firstField(scanner.Text()); cmd {
			case "":
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.SignIn(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}

		case view.ScreenHome:
			printfFn("signet %s> ", a.Status())
			if !scanner.Scan() {
				return
			}
			switch cmd := firstField(scanner.Text()); cmd {
			case "":
			case "help":
				printlnFn("Available commands: whoami, password, logout, exit")
			case "whoami":
				a.WhoAmI()
			case "password":
				_ = a.ChangePassword(ctx)
			case "logout":
				_ = a.SignOut(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}

func firstField(line string) string {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}
