package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Favorites(ctx context.Context) error
	MyStories(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Favorite(ctx context.Context) error
	Unfavorite(ctx context.Context) error
	Show(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the Hack or Snooze CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — authenticate
//	  - list           — show all stories
//	  - show           — show a single story
//	  - exit | quit    — leave the program
//
//	Logged in, additionally:
//	  - add | edit | delete      — manage own stories
//	  - fav | unfav | favorites  — manage favorites
//	  - mystories                — list own stories
//	  - logout                   — log out
//
// Logged-in-only commands entered while logged out are rejected with a
// message instead of being dispatched.
//
// Errors returned by command handlers are ignored here; handlers print their
// own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hs> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		// Commands below the help split require a current user; their
		// handlers dereference it.
		switch cmd {
		case "logout", "favorites", "mystories", "add", "edit", "delete", "fav", "unfav":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, favorites, mystories, add, edit, delete, fav, unfav, show, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, show, signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "favorites":
			_ = a.Favorites(ctx)

		case "mystories":
			_ = a.MyStories(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "fav":
			_ = a.Favorite(ctx)

		case "unfav":
			_ = a.Unfavorite(ctx)

		case "show":
			_ = a.Show(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
