package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error

	List(ctx context.Context) error
	Filter(ctx context.Context, args []string) error
	Reload(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Done(ctx context.Context, id string) error
	Star(ctx context.Context, id string) error
	Stats(ctx context.Context) error

	Balance(ctx context.Context) error
	SetBalance(ctx context.Context, category, hours string) error

	Attach(ctx context.Context, taskID, path string) error
	Attachments(ctx context.Context, taskID string) error
	Download(ctx context.Context, attachmentID, dir string) error
}

const (
	helpLoggedOut = "Available commands: register, login, ping, help, exit"
	helpLoggedIn  = "Available commands: list, filter [status=.. priority=.. category=.. due=YYYY-MM-DD starred], " +
		"reload, add, edit <id>, delete <id>, done <id>, star <id>, stats, balance, setbalance <category> <hours>, " +
		"attach <task id> <path>, attachments <task id>, download <attachment id> [dir], ping, logout, help, exit"
)

// runREPL starts a read-eval-print loop for the taskbalance CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Errors returned by a command are
// printed and the loop continues. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Commands that need task data are only accepted once logged in.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		fmt.Printf("tb %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "ping":
			err = a.Ping(ctx)
		default:
			if !a.isLoggedIn() {
				if isKnownCommand(cmd) {
					printlnFn("Please login first")
				} else {
					printlnFn("Unknown command:", cmd)
				}
				continue
			}
			err = dispatch(ctx, a, cmd, args)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}

var usage = map[string]string{
	"edit":        "Usage: edit <id>",
	"delete":      "Usage: delete <id>",
	"done":        "Usage: done <id>",
	"star":        "Usage: star <id>",
	"setbalance":  "Usage: setbalance <work|personal|health|leisure> <hours>",
	"attach":      "Usage: attach <task id> <path>",
	"attachments": "Usage: attachments <task id>",
	"download":    "Usage: download <attachment id> [dir]",
}

var minArgs = map[string]int{
	"edit":        1,
	"delete":      1,
	"done":        1,
	"star":        1,
	"setbalance":  2,
	"attach":      2,
	"attachments": 1,
	"download":    1,
}

func isKnownCommand(cmd string) bool {
	switch cmd {
	case "logout", "list", "filter", "reload", "add", "stats", "balance":
		return true
	}
	_, ok := minArgs[cmd]
	return ok
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	if n, ok := minArgs[cmd]; ok && len(args) < n {
		printlnFn(usage[cmd])
		return nil
	}

	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "list":
		return a.List(ctx)
	case "filter":
		return a.Filter(ctx, args)
	case "reload":
		return a.Reload(ctx)
	case "add":
		return a.Add(ctx)
	case "edit":
		return a.Edit(ctx, args[0])
	case "delete":
		return a.Delete(ctx, args[0])
	case "done":
		return a.Done(ctx, args[0])
	case "star":
		return a.Star(ctx, args[0])
	case "stats":
		return a.Stats(ctx)
	case "balance":
		return a.Balance(ctx)
	case "setbalance":
		return a.SetBalance(ctx, args[0], args[1])
	case "attach":
		return a.Attach(ctx, args[0], strings.Join(args[1:], " "))
	case "attachments":
		return a.Attachments(ctx, args[0])
	case "download":
		dir := "."
		if len(args) > 1 {
			dir = args[1]
		}
		return a.Download(ctx, args[0], dir)
	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}
