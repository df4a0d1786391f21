package repository

import (
	"errors"

	"restaurant-orders/pkg/database"

	"go.uber.org/zap"
)

// ErrDuplicate is returned when an insert violates a uniqueness
// constraint in the store.
var ErrDuplicate = errors.New("duplicate key")

type Repository struct {
	User  UserRepository
	Food  FoodRepository
	Order OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		Food:  NewFoodRepository(db, log),
		Order: NewOrderRepository(db, log),
	}
}
