package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/vital/internal/auth"
	"github.com/dmitrijs2005/vital/internal/logging"
	"github.com/dmitrijs2005/vital/internal/models"
	"github.com/dmitrijs2005/vital/internal/router"
	"github.com/dmitrijs2005/vital/internal/services"
)

type App struct {
	router   *router.Router
	machine  *auth.Machine
	donor    services.DonorService
	receiver services.ReceiverService
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// role is the dashboard picked on the auth screen.
	role models.Role
	// draft is the donor's unfinished listing; it survives failed posts.
	draft models.ItemDraft

	closers []func() error
}

func (a *App) Screen() router.Screen {
	return a.router.Current()
}

// Run prints the welcome banner and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Warn(ctx, "shutdown", "error", err)
		}
	}()

	printlnFn("Welcome to VITAL, the sustainable nutrition network (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

// Close releases backends opened by NewApp.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) status() string {
	switch s := a.Screen().(type) {
	case router.Authenticating:
		st := a.machine.State()
		status := fmt.Sprintf("(%s %s as %s, %s)", st.Mode, st.Method, a.role, st.Step)
		if st.Err != nil {
			status += " !"
		}
		return status
	case router.Dashboard:
		return fmt.Sprintf("(%s, %s)", s.User.Name, s.User.Role)
	default:
		return ""
	}
}

func (a *App) Enter(ctx context.Context) error {
	a.router.Enter()
	fmt.Fprintln(a.out, "Join the movement: signin, signup or google. Pick a role with 'role donor|receiver'.")
	return nil
}

func (a *App) welcome(user models.User) {
	a.router.SignIn(user)
	a.draft = models.ItemDraft{}
	fmt.Fprintf(a.out, "Welcome, %s! You are signed in as a %s.\n", user.Name, user.Role)
}

func (a *App) Logout(ctx context.Context) error {
	a.router.Logout()
	a.draft = models.ItemDraft{}
	fmt.Fprintln(a.out, "Signed out.")
	return a.machine.Reset(ctx)
}
