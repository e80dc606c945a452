package services

import "errors"

var (
	// ErrForbidden signals an ownership or admin-flag violation.
	ErrForbidden = errors.New("forbidden")
	// ErrWrongPassword is a login credential mismatch; no session results.
	ErrWrongPassword = errors.New("password did not match")
	ErrUsernameTaken = errors.New("username is taken")
	ErrEmailTaken    = errors.New("email is taken")
)
