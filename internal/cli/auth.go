package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vital/internal/auth"
	"github.com/dmitrijs2005/vital/internal/common"
	"github.com/dmitrijs2005/vital/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) SignIn(ctx context.Context) error {
	return a.submit(ctx, auth.ModeSignIn)
}

func (a *App) SignUp(ctx context.Context) error {
	return a.submit(ctx, auth.ModeSignUp)
}

// submit collects credentials for mode and asks the machine to send a code.
// The password bytes are wiped before returning.
func (a *App) submit(ctx context.Context, mode auth.Mode) error {
	if err := a.machine.SetMode(mode); err != nil {
		return err
	}
	method := a.machine.State().Method

	var (
		name string
		err  error
	)
	if mode == auth.ModeSignUp {
		if name, err = getSimpleText(a.reader, "Organization or user name", a.out); err != nil {
			return err
		}
	}

	label := "Email address"
	if method == auth.MethodPhone {
		label = "Mobile number"
	}
	identifier, err := getSimpleText(a.reader, label, a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	fmt.Fprintln(a.out, "Sending verification code...")
	err = a.machine.SubmitCredentials(ctx, auth.Draft{
		Identifier: identifier,
		Password:   string(password),
		Name:       name,
		Role:       a.role,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "A 6-digit code was sent to %s. Type 'verify' to enter it.\n", identifier)
	return nil
}

func (a *App) Google(ctx context.Context) error {
	fmt.Fprintln(a.out, "Redirecting to Google...")
	user, err := a.machine.FederatedSignIn(ctx, a.role)
	if err != nil {
		return err
	}
	a.welcome(user)
	return nil
}

func (a *App) SetMethod(arg string) error {
	method, err := auth.ParseMethod(arg)
	if err != nil {
		return err
	}
	return a.machine.SetMethod(method)
}

func (a *App) SetRole(arg string) error {
	role, err := models.ParseRole(arg)
	if err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *App) Verify(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Enter the 6-digit code", a.out)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Verifying...")
	user, err := a.machine.VerifyCode(ctx, code)
	if err != nil {
		return err
	}
	a.welcome(user)
	return nil
}

func (a *App) Resend(ctx context.Context) error {
	fmt.Fprintln(a.out, "Requesting a new code...")
	if err := a.machine.ResendCode(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "A new code was sent. The previous code no longer works.")
	return nil
}

func (a *App) Back(ctx context.Context) error {
	if err := a.machine.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Start over: signin, signup or google.")
	return nil
}
