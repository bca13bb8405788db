package validation

import "unicode/utf8"

const (
	PasswordField             = "password1"
	PasswordConfirmationField = "password2"
	MinPasswordLength         = 8

	MsgPasswordTooShort = "This password is too short. It must contain at least 8 characters."
	MsgPasswordMismatch = "The two password fields didn't match."
)

// ValidatePassword checks a new password and its confirmation.
func ValidatePassword(password, confirmation string) error {
	var errs Errors
	if password == "" {
		errs.Add(PasswordField, MsgRequired)
	} else if utf8.RuneCountInString(password) < MinPasswordLength {
		errs.Add(PasswordField, MsgPasswordTooShort)
	}
	if password != confirmation {
		errs.Add(PasswordConfirmationField, MsgPasswordMismatch)
	}
	return errs.Err()
}
