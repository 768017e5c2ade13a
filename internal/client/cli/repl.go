package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Plans(ctx context.Context) error
	Create(ctx context.Context) error
	Drafts(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Resume(ctx context.Context) error
	Logout(ctx context.Context) error
	Settings(ctx context.Context) error
	Discard(ctx context.Context, attemptID string) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Pay(ctx context.Context, id string) error
	Status(ctx context.Context, id string) error
	Share(ctx context.Context, id string) error
	View(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a until EOF
// or "exit"/"quit". Command errors are reported by the handlers themselves.
//
//	Anyone:
//	  help, plans, create, drafts, discard <id>, register, login, view <id>, ping, exit
//	Logged in:
//	  list, show <id>, pay <id>, status <id>, share <id>, resume, settings, logout
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	withID := map[string]func(context.Context, string) error{
		"show":    a.Show,
		"pay":     a.Pay,
		"status":  a.Status,
		"share":   a.Share,
		"view":    a.View,
		"discard": a.Discard,
	}

	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("love %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if fn, ok := withID[cmd]; ok {
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			_ = fn(ctx, args[0])
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: plans, create, drafts, discard <id>, (l)ist, show <id>, pay <id>, status <id>, share <id>, view <id>, resume, settings, logout, ping, exit")
			} else {
				printlnFn("Available commands: plans, create, drafts, discard <id>, register, login, view <id>, ping, exit")
			}
		case "plans":
			_ = a.Plans(ctx)
		case "create":
			_ = a.Create(ctx)
		case "drafts":
			_ = a.Drafts(ctx)
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "resume":
			_ = a.Resume(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "settings":
			_ = a.Settings(ctx)
		case "ping":
			_ = a.Ping(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err == io.EOF {
			return
		}
	}
}
