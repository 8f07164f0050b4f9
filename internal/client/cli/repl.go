package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Priyanshu7318/SHIELD/internal/client/client"
	"github.com/Priyanshu7318/SHIELD/internal/client/models"
)

// printFn and printlnFn are test seams for user-facing output of the REPL.
// In tests, replace them with stubs.
var (
	printFn   = fmt.Print
	printlnFn = fmt.Println
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	CheckFile(ctx context.Context, kind models.MediaType, args []string) error
	CheckText(ctx context.Context) error
	Risk(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Week(ctx context.Context, args []string) error
	Feedback(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: signup, login, help, exit"
	helpLoggedIn  = "Available commands: image <path>, audio <path>, video <path>, text, risk, " +
		"dashboard, week [type], feedback, whoami, passwd, logout, help, exit"
)

// runREPL starts a simple read–eval–print loop for the SHIELD CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on end of input or when the
// user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           - show available commands
//	  - signup         - create an account
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - image <path>   - check an image file
//	  - audio <path>   - check an audio file
//	  - video <path>   - check a video file
//	  - text           - check a piece of text (multi-line input)
//	  - risk           - risk score over this run's checks
//	  - dashboard      - totals, breakdown and request log
//	  - week [type]    - seven-day trend, optionally for one media type
//	  - feedback       - send feedback
//	  - whoami         - show the current user
//	  - passwd         - change password
//	  - logout         - log out
//	  - exit | quit    - leave the program
//
// Errors returned by command handlers are printed and the loop continues;
// nothing a command does ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("shield %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			printlnFn()
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("Error:", client.MessageFor(err))
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return nil
	case "signup", "register":
		return a.Signup(ctx)
	case "login":
		return a.Login(ctx)
	}

	if !a.isLoggedIn() {
		switch cmd {
		case "logout", "whoami", "passwd", "image", "audio", "video", "text", "risk", "dashboard", "week", "feedback":
			printlnFn("Please log in first (type 'login').")
			return nil
		}
	}

	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "passwd":
		return a.ChangePassword(ctx)
	case "image", "audio", "video":
		return a.CheckFile(ctx, models.MediaType(cmd), args)
	case "text":
		return a.CheckText(ctx)
	case "risk":
		return a.Risk(ctx)
	case "dashboard":
		return a.Dashboard(ctx)
	case "week":
		return a.Week(ctx, args)
	case "feedback":
		return a.Feedback(ctx)
	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}
