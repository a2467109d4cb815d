package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// nowFn is a test seam for the clock the presentation derives statuses with.
var nowFn = time.Now

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Filter(ctx context.Context, args []string) error
	Show(ctx context.Context, id string) error
	Create(ctx context.Context) error
	Attach(ctx context.Context, args []string) error
	Unlock(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Settings(ctx context.Context) error
	Set(ctx context.Context, args []string) error
	Watch(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop over the capsule gallery.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Commands:
//
//	help                      — show available commands
//	list | l                  — show the whole gallery
//	filter [status] [query]   — narrow by status and/or search text
//	show <id>                 — show one capsule in full
//	create                    — create a capsule (interactive)
//	attach <id> <file>        — attach a media file
//	unlock <id>               — unlock a capsule
//	delete <id>               — delete a capsule
//	settings                  — show settings
//	set <name> <value>        — change one setting
//	watch                     — follow external changes until Ctrl-C
//	exit | quit               — leave the program
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mv %s> ", statusFn()))
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
			printlnFn("Available commands: (l)ist, filter, show, create, attach, unlock, delete, settings, set, watch, exit")

		case "l", "list":
			_ = a.List(ctx)

		case "filter":
			_ = a.Filter(ctx, args)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "create":
			_ = a.Create(ctx)

		case "attach":
			if len(args) < 2 {
				printlnFn("Usage: attach <id> <file>")
				continue
			}
			_ = a.Attach(ctx, args)

		case "unlock":
			if len(args) == 0 {
				printlnFn("Usage: unlock <id>")
				continue
			}
			_ = a.Unlock(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "settings":
			_ = a.Settings(ctx)

		case "set":
			if len(args) < 2 {
				printlnFn("Usage: set <name> <value>")
				continue
			}
			_ = a.Set(ctx, args)

		case "watch":
			_ = a.Watch(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
