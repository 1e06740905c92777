package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/growlog/internal/client/client"
)

const (
	helpAnonymous = "Available commands: login, help, exit"
	helpSignedIn  = `Available commands:
  whoami, onboard, logout
  diary [more], diary add
  habits [more], habit add, habit check <id>
  goals [more], goal add
  todos [more], todo add, todo done <id>
  messages [more], message post
  help, exit`
)

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Onboard(ctx context.Context) error
	List(ctx context.Context, feature string, more bool) error
	Add(ctx context.Context, feature string) error
	HabitCheck(ctx context.Context, id string) error
	TodoDone(ctx context.Context, id string) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit".
//
// Anonymous users can only run login, help and exit; anything else is
// answered with a sign-in hint. Errors returned by command handlers are
// printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer, prompt bool) {
	for {
		if prompt {
			fmt.Fprintf(w, "growlog %s> ", statusFn())
		}
		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpSignedIn)
			} else {
				fmt.Fprintln(w, helpAnonymous)
			}
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		case "login":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Already signed in. Type 'logout' first to switch accounts.")
				continue
			}
			report(w, a.Login(ctx))
			continue
		}

		if !a.isLoggedIn() {
			if isKnown(cmd) {
				fmt.Fprintln(w, "Please sign in first: type 'login'.")
			} else {
				fmt.Fprintln(w, "Unknown command:", cmd)
			}
			continue
		}

		report(w, dispatch(ctx, a, w, cmd, args))
	}
}

func dispatch(ctx context.Context, a execIface, w io.Writer, cmd string, args []string) error {
	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}

	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "onboard":
		return a.Onboard(ctx)

	case "diary":
		if sub == "add" {
			return a.Add(ctx, "diary")
		}
		return a.List(ctx, "diary", sub == "more")
	case "habits", "goals", "todos", "messages":
		return a.List(ctx, cmd, sub == "more")

	case "habit":
		switch sub {
		case "add":
			return a.Add(ctx, "habits")
		case "check":
			if len(args) < 2 {
				fmt.Fprintln(w, "Usage: habit check <id>")
				return nil
			}
			return a.HabitCheck(ctx, args[1])
		}
		fmt.Fprintln(w, "Usage: habit add | habit check <id>")
	case "goal":
		if sub == "add" {
			return a.Add(ctx, "goals")
		}
		fmt.Fprintln(w, "Usage: goal add")
	case "todo":
		switch sub {
		case "add":
			return a.Add(ctx, "todos")
		case "done":
			if len(args) < 2 {
				fmt.Fprintln(w, "Usage: todo done <id>")
				return nil
			}
			return a.TodoDone(ctx, args[1])
		}
		fmt.Fprintln(w, "Usage: todo add | todo done <id>")
	case "message":
		if sub == "post" {
			return a.Add(ctx, "messages")
		}
		fmt.Fprintln(w, "Usage: message post")

	default:
		fmt.Fprintln(w, "Unknown command:", cmd)
	}
	return nil
}

func isKnown(cmd string) bool {
	switch cmd {
	case "logout", "whoami", "onboard", "diary", "habits", "habit", "goals", "goal",
		"todos", "todo", "messages", "message":
		return true
	}
	return false
}

func report(w io.Writer, err error) {
	if err != nil {
		fmt.Fprintln(w, "Error:", client.ErrorMessage(err, "something went wrong"))
	}
}
