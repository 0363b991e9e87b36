package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/vital/internal/models"
	"github.com/dmitrijs2005/vital/internal/router"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Screen() router.Screen

	Enter(ctx context.Context) error

	SignIn(ctx context.Context) error
	SignUp(ctx context.Context) error
	Google(ctx context.Context) error
	SetMethod(arg string) error
	SetRole(arg string) error
	Verify(ctx context.Context) error
	Resend(ctx context.Context) error
	Back(ctx context.Context) error

	Post(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Request(ctx context.Context) error
	Apply(ctx context.Context, id string) error
	Map(ctx context.Context, id string) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a according to
// the current screen. Handler errors are printed and the loop continues. The
// loop exits on EOF, on "exit"/"quit" or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("vital %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if cmd == "help" {
			printlnFn(helpText(a.Screen()))
			continue
		}

		var handled bool
		switch s := a.Screen().(type) {
		case router.Landing:
			handled, err = landingCommand(ctx, a, cmd)
		case router.Authenticating:
			handled, err = authCommand(ctx, a, cmd, args)
		case router.Dashboard:
			if s.User.Role == models.RoleReceiver {
				handled, err = receiverCommand(ctx, a, cmd, args)
			} else {
				handled, err = donorCommand(ctx, a, cmd)
			}
		}

		switch {
		case !handled:
			printlnFn("Unknown command:", cmd)
		case err != nil:
			printlnFn("Error:", err)
		}
	}
}

func helpText(s router.Screen) string {
	switch s := s.(type) {
	case router.Landing:
		return "Available commands: enter, exit"
	case router.Authenticating:
		return "Available commands: signin, signup, google, method email|phone, role donor|receiver, verify, resend, back, exit"
	case router.Dashboard:
		if s.User.Role == models.RoleReceiver {
			return "Available commands: list, search <term>, request, apply <id>, map <id>, logout, exit"
		}
		return "Available commands: post, list, logout, exit"
	}
	return ""
}

func landingCommand(ctx context.Context, a execIface, cmd string) (bool, error) {
	if cmd == "enter" {
		return true, a.Enter(ctx)
	}
	return false, nil
}

func authCommand(ctx context.Context, a execIface, cmd string, args []string) (bool, error) {
	switch cmd {
	case "signin":
		return true, a.SignIn(ctx)
	case "signup":
		return true, a.SignUp(ctx)
	case "google":
		return true, a.Google(ctx)
	case "method":
		return true, a.SetMethod(firstArg(args))
	case "role":
		return true, a.SetRole(firstArg(args))
	case "verify":
		return true, a.Verify(ctx)
	case "resend":
		return true, a.Resend(ctx)
	case "back":
		return true, a.Back(ctx)
	}
	return false, nil
}

func donorCommand(ctx context.Context, a execIface, cmd string) (bool, error) {
	switch cmd {
	case "post":
		return true, a.Post(ctx)
	case "l", "list":
		return true, a.List(ctx)
	case "logout":
		return true, a.Logout(ctx)
	}
	return false, nil
}

func receiverCommand(ctx context.Context, a execIface, cmd string, args []string) (bool, error) {
	switch cmd {
	case "l", "list":
		return true, a.List(ctx)
	case "search":
		return true, a.Search(ctx, strings.Join(args, " "))
	case "request":
		return true, a.Request(ctx)
	case "apply":
		return true, a.Apply(ctx, firstArg(args))
	case "map":
		return true, a.Map(ctx, firstArg(args))
	case "logout":
		return true, a.Logout(ctx)
	}
	return false, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
