package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real
// App type satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	VerifyEmail(ctx context.Context) error
	ResendVerification(ctx context.Context) error
	Detect(ctx context.Context) error
	History(ctx context.Context) error
	Keys(ctx context.Context) error
	NewKey(ctx context.Context) error
	DeleteKey(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line per iteration, parses the first token as the command,
// and dispatches to methods on a. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Errors from command handlers are ignored here; handlers report their own
// errors. That keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tw> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: detect, history, keys, newkey, delkey, profile, update, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, verify, resend, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "verify":
			_ = a.VerifyEmail(ctx)

		case "resend":
			_ = a.ResendVerification(ctx)

		case "detect":
			_ = a.Detect(ctx)

		case "history":
			_ = a.History(ctx)

		case "keys":
			_ = a.Keys(ctx)

		case "newkey":
			_ = a.NewKey(ctx)

		case "delkey":
			_ = a.DeleteKey(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

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

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to textwatch CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
