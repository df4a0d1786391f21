package usecase

import (
	"context"
	"fmt"
	"time"

	"restaurant-orders/internal/data/entity"
	"restaurant-orders/internal/data/repository"
	"restaurant-orders/internal/dto/request"
	"restaurant-orders/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	Count(ctx context.Context) (int64, error)
	ListAll(ctx context.Context) ([]*entity.Food, error)
	Categories(ctx context.Context) ([]string, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Food, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Food, error)
	Add(ctx context.Context, current *entity.User, req *request.AddFoodRequest) (*entity.Food, error)
	Edit(ctx context.Context, current *entity.User, req *request.EditFoodRequest) (*entity.Food, error)
	Remove(ctx context.Context, current *entity.User, name string) (*entity.Food, error)
	Rate(ctx context.Context, name string, rating int32) (*entity.Food, error)
}

type catalogService struct {
	foods repository.FoodRepository
	log   *zap.Logger
}

func NewCatalogService(foods repository.FoodRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		foods: foods,
		log:   log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) Count(ctx context.Context) (int64, error) {
	return s.foods.CountAll(ctx)
}

func (s *catalogService) ListAll(ctx context.Context) ([]*entity.Food, error) {
	return s.foods.FindAll(ctx)
}

func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	return s.foods.DistinctCategories(ctx)
}

func (s *catalogService) ListByCategory(ctx context.Context, category string) ([]*entity.Food, error) {
	return s.foods.FindByCategory(ctx, category)
}

func (s *catalogService) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Food, error) {
	return s.foods.FindByIDs(ctx, ids)
}

// Add creates a menu item. Requires chef or above. Omitted diet and
// ingredient lists default to empty, never null.
func (s *catalogService) Add(ctx context.Context, current *entity.User, req *request.AddFoodRequest) (*entity.Food, error) {
	if err := Authorize(current, entity.RoleChef); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.foods.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check food name: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	diet := req.Diet
	if diet == nil {
		diet = []string{}
	}
	ingredients := req.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	now := time.Now()
	food := &entity.Food{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Diet:        diet,
		Ingredients: ingredients,
		Ratings:     []int32{},
	}

	if err := s.foods.Create(ctx, food); err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("create food: %w", err)
	}

	s.log.Info("Food added",
		zap.String("name", food.Name),
		zap.String("category", food.Category),
		zap.String("by", current.Username),
	)

	return food, nil
}

// Edit overwrites the mutable fields of a food, looked up by name.
// Returns nil without error when no such food exists.
func (s *catalogService) Edit(ctx context.Context, current *entity.User, req *request.EditFoodRequest) (*entity.Food, error) {
	if err := Authorize(current, entity.RoleChef); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	food, err := s.foods.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("find food to edit: %w", err)
	}
	if food == nil {
		return nil, nil
	}

	food.Price = req.Price
	food.Category = req.Category
	food.Diet = req.Diet
	food.Ingredients = req.Ingredients
	if food.Diet == nil {
		food.Diet = []string{}
	}
	if food.Ingredients == nil {
		food.Ingredients = []string{}
	}
	food.UpdatedAt = time.Now()

	if err := s.foods.Update(ctx, food); err != nil {
		return nil, fmt.Errorf("update food: %w", err)
	}

	s.log.Info("Food edited", zap.String("name", food.Name), zap.String("by", current.Username))
	return food, nil
}

// Remove deletes a food by name. Returns nil without error when no such
// food exists.
func (s *catalogService) Remove(ctx context.Context, current *entity.User, name string) (*entity.Food, error) {
	if err := Authorize(current, entity.RoleChef); err != nil {
		return nil, err
	}

	food, err := s.foods.DeleteByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("remove food: %w", err)
	}
	if food == nil {
		return nil, nil
	}

	s.log.Info("Food removed", zap.String("name", name), zap.String("by", current.Username))
	return food, nil
}

// Rate appends a rating to a food. Open to any caller. Unlike the
// sibling mutations a missing food is an error here, since the caller
// named a specific item they expect to exist.
func (s *catalogService) Rate(ctx context.Context, name string, rating int32) (*entity.Food, error) {
	food, err := s.foods.AppendRating(ctx, name, rating)
	if err != nil {
		return nil, fmt.Errorf("rate food: %w", err)
	}
	if food == nil {
		return nil, ErrNotFound
	}

	return food, nil
}
