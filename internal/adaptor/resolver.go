package adaptor

import (
	"context"

	"restaurant-orders/internal/data/entity"
	"restaurant-orders/internal/usecase"
	"restaurant-orders/pkg/utils"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

// Resolver is the GraphQL root. The current user, when any, rides on the
// request context; resolvers never assume one is present.
type Resolver struct {
	service *usecase.Service
	log     *zap.Logger
}

func NewResolver(service *usecase.Service, log *zap.Logger) *Resolver {
	return &Resolver{
		service: service,
		log:     log.With(zap.String("adaptor", "graphql")),
	}
}

// ==================== QUERIES ====================

func (r *Resolver) FoodCount(ctx context.Context) (int32, error) {
	count, err := r.service.Catalog.Count(ctx)
	if err != nil {
		return 0, mapError(r.log, err)
	}
	return int32(count), nil
}

func (r *Resolver) AllFoods(ctx context.Context) ([]*foodResolver, error) {
	foods, err := r.service.Catalog.ListAll(ctx)
	if err != nil {
		return nil, mapError(r.log, err)
	}
	return wrapFoods(foods), nil
}

func (r *Resolver) AllCategories(ctx context.Context) ([]string, error) {
	categories, err := r.service.Catalog.Categories(ctx)
	if err != nil {
		return nil, mapError(r.log, err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

type foodsByCategoryArgs struct {
	Category string
}

func (r *Resolver) FoodsByCategory(ctx context.Context, args foodsByCategoryArgs) ([]*foodResolver, error) {
	foods, err := r.service.Catalog.ListByCategory(ctx, args.Category)
	if err != nil {
		return nil, mapError(r.log, err)
	}
	return wrapFoods(foods), nil
}

func (r *Resolver) AllOrders(ctx context.Context) ([]*orderResolver, error) {
	orders, err := r.service.Order.List(ctx)
	if err != nil {
		return nil, mapError(r.log, err)
	}

	resolvers := make([]*orderResolver, 0, len(orders))
	for _, order := range orders {
		resolvers = append(resolvers, &orderResolver{order: order, catalog: r.service.Catalog})
	}
	return resolvers, nil
}

func (r *Resolver) Me(ctx context.Context) *userResolver {
	user, ok := utils.CurrentUser(ctx)
	if !ok {
		return nil
	}
	return &userResolver{user: user}
}

// ==================== TYPE WRAPPERS ====================

type foodResolver struct {
	food *entity.Food
}

func (f *foodResolver) ID() graphql.ID {
	return graphql.ID(f.food.ID.String())
}

func (f *foodResolver) Name() string {
	return f.food.Name
}

func (f *foodResolver) Price() float64 {
	return f.food.Price
}

func (f *foodResolver) Category() string {
	return f.food.Category
}

func (f *foodResolver) Diet() []string {
	if f.food.Diet == nil {
		return []string{}
	}
	return f.food.Diet
}

func (f *foodResolver) Ingredients() []string {
	if f.food.Ingredients == nil {
		return []string{}
	}
	return f.food.Ingredients
}

func (f *foodResolver) Ratings() []int32 {
	if f.food.Ratings == nil {
		return []int32{}
	}
	return f.food.Ratings
}

func wrapFoods(foods []*entity.Food) []*foodResolver {
	resolvers := make([]*foodResolver, 0, len(foods))
	for _, food := range foods {
		resolvers = append(resolvers, &foodResolver{food: food})
	}
	return resolvers
}

type userResolver struct {
	user *entity.User
}

func (u *userResolver) ID() graphql.ID {
	return graphql.ID(u.user.ID.String())
}

func (u *userResolver) Username() string {
	return u.user.Username
}

func (u *userResolver) Role() int32 {
	return int32(u.user.Role)
}

type tokenResolver struct {
	value string
}

func (t *tokenResolver) Value() string {
	return t.value
}

type orderResolver struct {
	order   *entity.Order
	catalog usecase.CatalogService
}

func (o *orderResolver) ID() graphql.ID {
	return graphql.ID(o.order.ID.String())
}

func (o *orderResolver) Orderer() string {
	return o.order.Orderer
}

func (o *orderResolver) PhoneNr() string {
	return o.order.PhoneNr
}

// Items populates the referenced foods, preserving the stored item
// order. References whose food has since been removed are skipped.
func (o *orderResolver) Items(ctx context.Context) ([]*foodResolver, error) {
	foods, err := o.catalog.ListByIDs(ctx, o.order.Items)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entity.Food, len(foods))
	for _, food := range foods {
		byID[food.ID] = food
	}

	resolvers := make([]*foodResolver, 0, len(o.order.Items))
	for _, id := range o.order.Items {
		if food, ok := byID[id]; ok {
			resolvers = append(resolvers, &foodResolver{food: food})
		}
	}
	return resolvers, nil
}
