package auth

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/vital/internal/models"
)

type Step string

const (
	StepCredentials  Step = "credentials"
	StepVerification Step = "verification"
)

type Mode string

const (
	ModeSignIn Mode = "signin"
	ModeSignUp Mode = "signup"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeSignIn, ModeSignUp:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

type Method string

const (
	MethodEmail Method = "email"
	MethodPhone Method = "phone"
)

func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodEmail, MethodPhone:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Draft is the credential form. Identifier is the e-mail address or phone
// number depending on the active Method. An empty Role means donor.
type Draft struct {
	Identifier string
	Password   string
	Name       string
	Role       models.Role
}

// State is a snapshot of the Machine.
type State struct {
	Step        Step
	Mode        Mode
	Method      Method
	Loading     bool
	Err         error
	Destination string
	Candidate   string
}
