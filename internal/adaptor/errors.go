package adaptor

import (
	"errors"

	"restaurant-orders/internal/usecase"

	"go.uber.org/zap"
)

// Extension codes surfaced to GraphQL clients.
const (
	codeUnauthenticated = "UNAUTHENTICATED"
	codeBadUserInput    = "BAD_USER_INPUT"
	codeNotFound        = "NOT_FOUND"
	codeInternal        = "INTERNAL_SERVER_ERROR"
)

type resolverError struct {
	message string
	code    string
}

func (e *resolverError) Error() string {
	return e.message
}

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// mapError translates usecase failures into client-visible GraphQL
// errors. Anything outside the taxonomy is logged and reported as a
// generic internal error so store details never leak.
func mapError(log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized),
		errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrInvalidToken):
		return &resolverError{message: err.Error(), code: codeUnauthenticated}

	case errors.Is(err, usecase.ErrDuplicateName),
		errors.Is(err, usecase.ErrDuplicateUsername),
		errors.Is(err, usecase.ErrValidation):
		return &resolverError{message: err.Error(), code: codeBadUserInput}

	case errors.Is(err, usecase.ErrNotFound):
		return &resolverError{message: err.Error(), code: codeNotFound}

	default:
		log.Error("Unhandled resolver error", zap.Error(err))
		return &resolverError{message: "internal server error", code: codeInternal}
	}
}
