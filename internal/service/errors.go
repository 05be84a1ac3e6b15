package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request fails basic input
	// validation (empty email, missing password, oversized title, empty
	// partial update).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password at login. The two cases are deliberately indistinguishable
	// so that login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated covers every token failure on an authenticated
	// request: missing, malformed, expired, wrongly signed, or revoked by
	// a token_version bump. Callers get one uniform signal.
	ErrUnauthenticated = errors.New("could not validate credentials")

	// ErrTokenCreationFailed is returned when signing a JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
