package usecase

import (
	"context"

	"restaurant-orders/internal/data/entity"
	"restaurant-orders/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory stands-ins for the pgx repositories. They mirror the store
// contracts: nil-without-error for not-found lookups, ErrDuplicate on
// unique violations.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, exists := f.users[user.Username]; exists {
		return repository.ErrDuplicate
	}
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeFoodRepo struct {
	foods map[string]*entity.Food
}

func newFakeFoodRepo() *fakeFoodRepo {
	return &fakeFoodRepo{foods: make(map[string]*entity.Food)}
}

func (f *fakeFoodRepo) Create(ctx context.Context, food *entity.Food) error {
	if _, exists := f.foods[food.Name]; exists {
		return repository.ErrDuplicate
	}
	copied := *food
	f.foods[food.Name] = &copied
	return nil
}

func (f *fakeFoodRepo) FindByName(ctx context.Context, name string) (*entity.Food, error) {
	food, ok := f.foods[name]
	if !ok {
		return nil, nil
	}
	copied := *food
	return &copied, nil
}

func (f *fakeFoodRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Food, error) {
	var foods []*entity.Food
	for _, id := range ids {
		for _, food := range f.foods {
			if food.ID == id {
				copied := *food
				foods = append(foods, &copied)
			}
		}
	}
	return foods, nil
}

func (f *fakeFoodRepo) FindByCategory(ctx context.Context, category string) ([]*entity.Food, error) {
	var foods []*entity.Food
	for _, food := range f.foods {
		if food.Category == category {
			copied := *food
			foods = append(foods, &copied)
		}
	}
	return foods, nil
}

func (f *fakeFoodRepo) FindAll(ctx context.Context) ([]*entity.Food, error) {
	var foods []*entity.Food
	for _, food := range f.foods {
		copied := *food
		foods = append(foods, &copied)
	}
	return foods, nil
}

func (f *fakeFoodRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, food := range f.foods {
		if !seen[food.Category] {
			seen[food.Category] = true
			categories = append(categories, food.Category)
		}
	}
	return categories, nil
}

func (f *fakeFoodRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.foods)), nil
}

func (f *fakeFoodRepo) Update(ctx context.Context, food *entity.Food) error {
	for name, existing := range f.foods {
		if existing.ID == food.ID {
			copied := *food
			f.foods[name] = &copied
			return nil
		}
	}
	return repository.ErrDuplicate
}

func (f *fakeFoodRepo) DeleteByName(ctx context.Context, name string) (*entity.Food, error) {
	food, ok := f.foods[name]
	if !ok {
		return nil, nil
	}
	delete(f.foods, name)
	return food, nil
}

func (f *fakeFoodRepo) AppendRating(ctx context.Context, name string, rating int32) (*entity.Food, error) {
	food, ok := f.foods[name]
	if !ok {
		return nil, nil
	}
	food.Ratings = append(food.Ratings, rating)
	copied := *food
	return &copied, nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	copied := *order
	f.orders[order.ID] = &copied
	return nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range f.orders {
		copied := *order
		orders = append(orders, &copied)
	}
	return orders, nil
}

func (f *fakeOrderRepo) DeleteByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	delete(f.orders, id)
	return order, nil
}
