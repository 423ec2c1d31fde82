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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	New(ctx context.Context) error
	Voice(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Tag(ctx context.Context, args []string) error
	Tags(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Insights(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	Clear(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		fmt.Printf("ejournal %s> ", statusFn())
		if !scanner.Scan() {
			break
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
			printHelp(a.isLoggedIn())
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "new":
			_ = a.New(ctx)
		case "voice":
			_ = a.Voice(ctx, args)
		case "list", "l":
			_ = a.List(ctx)
		case "show":
			_ = a.Show(ctx, args)
		case "edit":
			_ = a.Edit(ctx, args)
		case "delete", "rm":
			_ = a.Delete(ctx, args)
		case "tag":
			_ = a.Tag(ctx, args)
		case "tags":
			_ = a.Tags(ctx)
		case "search":
			_ = a.Search(ctx, args)
		case "insights", "stats":
			_ = a.Insights(ctx)
		case "export":
			_ = a.Export(ctx, args)
		case "clear":
			_ = a.Clear(ctx)
		case "exit", "quit":
			_, _ = printlnFn("Bye!")
			return
		default:
			_, _ = printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(loggedIn bool) {
	if loggedIn {
		_, _ = printlnFn("Available commands: new, voice <file>, (l)ist, show <id>, edit <id>, delete <id>, tag <id> <tags...>, tags, search <query>, insights, export [path], clear, whoami, logout, exit")
	} else {
		_, _ = printlnFn("Available commands: register, login, new, voice <file>, (l)ist, show <id>, tags, search <query>, insights, export [path], exit")
	}
}
