package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vital/internal/common"
)

// Validation errors. At most one is active at a time.
var (
	ErrMissingPassword    = errors.New("password is required")
	ErrMissingName        = errors.New("organization or user name is required")
	ErrInvalidEmailFormat = errors.New("please enter a valid email address")
	ErrInvalidPhoneFormat = errors.New("please enter a valid mobile number (min 10 digits)")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidOtpFormat   = errors.New("invalid format, please enter the 6-digit numeric code")
	ErrOtpMismatch        = errors.New("the code provided does not match the one sent")
)

var (
	ErrWrongStep          = fmt.Errorf("auth: %w", common.ErrWrongState)
	ErrAborted            = errors.New("flow was reset while the step was in progress")
	ErrUnknownMode        = errors.New("unknown auth mode")
	ErrUnknownMethod      = errors.New("unknown login method")
	ErrGeneratorExhausted = errors.New("code generator exhausted")
)

// IsValidation reports whether err is one of the validation errors.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrMissingPassword, ErrMissingName, ErrInvalidEmailFormat, ErrInvalidPhoneFormat,
		ErrPasswordTooShort, ErrInvalidOtpFormat, ErrOtpMismatch,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
