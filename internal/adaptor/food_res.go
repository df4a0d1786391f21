package adaptor

import (
	"context"

	"restaurant-orders/internal/dto/request"
	"restaurant-orders/pkg/utils"
)

type foodMutationArgs struct {
	Name        string
	Price       float64
	Category    string
	Diet        *[]string
	Ingredients *[]string
}

func (r *Resolver) AddFood(ctx context.Context, args foodMutationArgs) (*foodResolver, error) {
	current, _ := utils.CurrentUser(ctx)

	req := &request.AddFoodRequest{
		Name:        args.Name,
		Price:       args.Price,
		Category:    args.Category,
		Diet:        derefList(args.Diet),
		Ingredients: derefList(args.Ingredients),
	}

	food, err := r.service.Catalog.Add(ctx, current, req)
	if err != nil {
		return nil, mapError(r.log, err)
	}
	return &foodResolver{food: food}, nil
}

func (r *Resolver) EditFood(ctx context.Context, args foodMutationArgs) (*foodResolver, error) {
	current, _ := utils.CurrentUser(ctx)

	req := &request.EditFoodRequest{
		Name:        args.Name,
		Price:       args.Price,
		Category:    args.Category,
		Diet:        derefList(args.Diet),
		Ingredients: derefList(args.Ingredients),
	}

	food, err := r.service.Catalog.Edit(ctx, current, req)
	if err != nil {
		return nil, mapError(r.log, err)
	}
	if food == nil {
		return nil, nil
	}
	return &foodResolver{food: food}, nil
}

type removeFoodArgs struct {
	Name string
}

func (r *Resolver) RemoveFood(ctx context.Context, args removeFoodArgs) (*foodResolver, error) {
	current, _ := utils.CurrentUser(ctx)

	food, err := r.service.Catalog.Remove(ctx, current, args.Name)
	if err != nil {
		return nil, mapError(r.log, err)
	}
	if food == nil {
		return nil, nil
	}
	return &foodResolver{food: food}, nil
}

type rateFoodArgs struct {
	Name   string
	Rating int32
}

func (r *Resolver) RateFood(ctx context.Context, args rateFoodArgs) (*foodResolver, error) {
	food, err := r.service.Catalog.Rate(ctx, args.Name, args.Rating)
	if err != nil {
		return nil, mapError(r.log, err)
	}
	return &foodResolver{food: food}, nil
}

func derefList(list *[]string) []string {
	if list == nil {
		return nil
	}
	return *list
}
