package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can provide
// a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	OpenQuotes(ctx context.Context) error
	SwitchTab(ctx context.Context, name string) error
	Search(ctx context.Context, term string) error
	FilterTag(ctx context.Context, tag string) error
	AddQuote(ctx context.Context) error
	DeleteQuote(ctx context.Context, id string) error
	OpenDashboard(ctx context.Context) error
	ToggleUserRole(ctx context.Context, userID string) error
	DeleteUser(ctx context.Context, userID string) error
}

// runREPL starts a simple read-eval-print loop for the quote journal CLI.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// surface their own errors. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("qj> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: quotes, tab <all|public|private>, search <text>, tag <TAG>, add, del <id>, dashboard, role <user id>, deluser <user id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "quotes", "q":
			_ = a.OpenQuotes(ctx)

		case "tab":
			if len(args) == 0 {
				printlnFn("Usage: tab <all|public|private>")
				continue
			}
			_ = a.SwitchTab(ctx, args[0])

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "tag":
			tag := ""
			if len(args) > 0 {
				tag = args[0]
			}
			_ = a.FilterTag(ctx, tag)

		case "add":
			_ = a.AddQuote(ctx)

		case "del":
			if len(args) == 0 {
				printlnFn("Usage: del <quote id>")
				continue
			}
			_ = a.DeleteQuote(ctx, args[0])

		case "dashboard", "dash":
			_ = a.OpenDashboard(ctx)

		case "role":
			if len(args) == 0 {
				printlnFn("Usage: role <user id>")
				continue
			}
			_ = a.ToggleUserRole(ctx, args[0])

		case "deluser":
			if len(args) == 0 {
				printlnFn("Usage: deluser <user id>")
				continue
			}
			_ = a.DeleteUser(ctx, args[0])

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
