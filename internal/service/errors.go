package service

import "errors"

var (
	// ErrInvalidDataProvided signals a payload that fails use-case level
	// validation before any repository call is made.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The two cases are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrUnauthenticated signals that a presented access token could not be
	// resolved to a live account: bad signature, expired, wrong purpose, or
	// the subject account no longer exists.
	ErrUnauthenticated = errors.New("could not validate credentials")

	// ErrInvalidResetToken signals a password-reset token that failed
	// validation or carries the wrong purpose.
	ErrInvalidResetToken = errors.New("invalid password reset token")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
