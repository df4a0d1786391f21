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

type OrderService interface {
	Create(ctx context.Context, req *request.CreateOrderRequest) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	Remove(ctx context.Context, id string) (*entity.Order, error)
}

type orderService struct {
	orders repository.OrderRepository
	foods  repository.FoodRepository
	log    *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, foods repository.FoodRepository, log *zap.Logger) OrderService {
	return &orderService{
		orders: orders,
		foods:  foods,
		log:    log.With(zap.String("service", "order")),
	}
}

// Create resolves the requested item names against the catalog and
// persists an order referencing the foods that matched. Resolution is
// lenient: names that match nothing are dropped, not errors. There is no
// transaction across the per-item lookups and the insert; an item removed
// from the catalog in between still ends up referenced.
func (s *orderService) Create(ctx context.Context, req *request.CreateOrderRequest) (*entity.Order, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	items := make([]uuid.UUID, 0, len(req.Items))
	for _, name := range req.Items {
		food, err := s.foods.FindByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolve order item %s: %w", name, err)
		}
		if food == nil {
			s.log.Debug("Dropping unresolvable order item", zap.String("name", name))
			continue
		}
		items = append(items, food.ID)
	}

	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Orderer: req.Orderer,
		PhoneNr: req.PhoneNr,
		Items:   items,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("orderer", order.Orderer),
		zap.Int("requested_items", len(req.Items)),
		zap.Int("resolved_items", len(items)),
	)

	return order, nil
}

func (s *orderService) List(ctx context.Context) ([]*entity.Order, error) {
	return s.orders.FindAll(ctx)
}

// Remove deletes an order by ID. Returns nil without error when no such
// order exists. An unparsable ID resolves to nothing the same way.
func (s *orderService) Remove(ctx context.Context, id string) (*entity.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	order, err := s.orders.DeleteByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("remove order: %w", err)
	}

	return order, nil
}
