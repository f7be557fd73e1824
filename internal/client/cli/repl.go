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
	Navigate(ctx context.Context, path string)
	Logout(ctx context.Context)
}

// runREPL starts a simple read–eval–print loop for the marketplace CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and maps it onto a storefront route which is then navigated
// through the guard. Unknown commands are reported back to the user. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - home           — landing page
//	  - about          — about page
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - home           — landing page
//	  - browse         — browse other sellers' products
//	  - products       — list your products (delete/update from there)
//	  - insert         — add a product
//	  - update <id>    — edit a product
//	  - view <id>      — product details with similar items
//	  - profile        — view and edit your profile
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Protected routes typed while logged out are still dispatched: the guard
// rejects them and the user lands on the login view with a prompt to log in.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("market> %s > ", statusFn()))
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
				printlnFn("Available commands: home, browse, (p)roducts, insert, update <id>, view <id>, profile, logout, exit")
			} else {
				printlnFn("Available commands: home, about, register, login, exit")
			}

		case "home":
			a.Navigate(ctx, "/")

		case "about":
			a.Navigate(ctx, "/about")

		case "register":
			a.Navigate(ctx, "/register")

		case "login":
			a.Navigate(ctx, "/login")

		case "browse":
			a.Navigate(ctx, "/browse")

		case "p", "products":
			a.Navigate(ctx, "/products")

		case "insert":
			a.Navigate(ctx, "/insert")

		case "update":
			if len(args) == 0 {
				printlnFn("Usage: update <id>")
				continue
			}
			a.Navigate(ctx, "/update-product/"+args[0])

		case "view":
			if len(args) == 0 {
				printlnFn("Usage: view <id>")
				continue
			}
			a.Navigate(ctx, "/view/"+args[0])

		case "profile":
			a.Navigate(ctx, "/profile")

		case "logout":
			a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
