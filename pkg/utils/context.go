package utils

import (
	"context"

	"restaurant-orders/internal/data/entity"
)

type contextKey string

const currentUserKey contextKey = "current_user"

// SetCurrentUser attaches the authenticated user to the request context.
func SetCurrentUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// CurrentUser returns the authenticated user for this request. The second
// return is false for anonymous requests; callers must not assume a user
// is present.
func CurrentUser(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(currentUserKey).(*entity.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
