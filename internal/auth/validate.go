package auth

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/vital/internal/common"
)

const minPasswordLen = 8

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
	otpRe   = regexp.MustCompile(`^[0-9]{6}$`)
)

// validateCredentials returns the first failing rule. Password rules come
// first so a short password is reported as such whatever the other fields.
func validateCredentials(mode Mode, method Method, d Draft) error {
	if common.Blank(d.Password) {
		return ErrMissingPassword
	}
	if utf8.RuneCountInString(d.Password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	if mode == ModeSignUp && common.Blank(d.Name) {
		return ErrMissingName
	}

	switch method {
	case MethodPhone:
		if !phoneRe.MatchString(d.Identifier) {
			return ErrInvalidPhoneFormat
		}
	default:
		if !emailRe.MatchString(d.Identifier) {
			return ErrInvalidEmailFormat
		}
	}
	return nil
}

func validOtp(candidate string) bool {
	return otpRe.MatchString(candidate)
}

// deriveName picks the display name for a verified user.
func deriveName(method Method, d Draft) string {
	if d.Name != "" {
		return d.Name
	}
	if method == MethodPhone {
		return "User " + common.LastN(d.Identifier, 4)
	}
	local, _, _ := strings.Cut(d.Identifier, "@")
	return local
}
