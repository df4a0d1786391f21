package usecase

import "errors"

// Business-rule failures are recovered at the operation boundary and
// mapped to client-visible errors by the adaptor. Messages carry no
// internal detail.
var (
	// ErrUnauthorized means the caller's identity or role does not allow
	// the operation.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned on login failure. It deliberately
	// does not distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken means a session token is malformed or unverifiable.
	ErrInvalidToken = errors.New("invalid token")

	// ErrDuplicateName means a food with that name already exists.
	ErrDuplicateName = errors.New("food name already exists")

	// ErrDuplicateUsername means the username is taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrNotFound means a referenced entity is absent on an operation
	// that requires it to exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation wraps request validation failures.
	ErrValidation = errors.New("validation failed")
)
