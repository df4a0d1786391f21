package repository

import (
	"context"
	"fmt"

	"restaurant-orders/internal/data/entity"
	"restaurant-orders/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindAll(ctx context.Context) ([]*entity.Order, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `id, orderer, phone_nr, items, created_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var order entity.Order
	err := row.Scan(
		&order.ID,
		&order.Orderer,
		&order.PhoneNr,
		&order.Items,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (or *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, orderer, phone_nr, items, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := or.db.Exec(ctx, query,
		order.ID,
		order.Orderer,
		order.PhoneNr,
		order.Items,
		order.CreatedAt,
	)

	if err != nil {
		or.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("orderer", order.Orderer),
		)
		return fmt.Errorf("create order for %s: %w", order.Orderer, err)
	}

	return nil
}

func (or *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`

	rows, err := or.db.Query(ctx, query)
	if err != nil {
		or.log.Error("Failed to find all orders", zap.Error(err))
		return nil, fmt.Errorf("find all orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (or *orderRepository) DeleteByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `DELETE FROM orders WHERE id = $1 RETURNING ` + orderColumns

	order, err := scanOrder(or.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		or.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("delete order %s: %w", id.String(), err)
	}

	or.log.Info("Order deleted", zap.String("order_id", id.String()))
	return order, nil
}
