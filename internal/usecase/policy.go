package usecase

import (
	"restaurant-orders/internal/data/entity"
)

// Authorize passes when the current user holds at least the required
// role. A nil user (anonymous request) always denies.
func Authorize(user *entity.User, required entity.Role) error {
	if user == nil || !user.Role.AtLeast(required) {
		return ErrUnauthorized
	}
	return nil
}

// AuthorizeExact passes only when the current user holds exactly the
// required role. Outranking is not enough: a coOwner cannot perform an
// owner-only operation.
func AuthorizeExact(user *entity.User, required entity.Role) error {
	if user == nil || user.Role != required {
		return ErrUnauthorized
	}
	return nil
}
