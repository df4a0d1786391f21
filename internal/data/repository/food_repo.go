package repository

import (
	"context"
	"errors"
	"fmt"

	"restaurant-orders/internal/data/entity"
	"restaurant-orders/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type FoodRepository interface {
	Create(ctx context.Context, food *entity.Food) error
	FindByName(ctx context.Context, name string) (*entity.Food, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Food, error)
	FindByCategory(ctx context.Context, category string) ([]*entity.Food, error)
	FindAll(ctx context.Context) ([]*entity.Food, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, food *entity.Food) error
	DeleteByName(ctx context.Context, name string) (*entity.Food, error)
	AppendRating(ctx context.Context, name string, rating int32) (*entity.Food, error)
}

type foodRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFoodRepository(db database.PgxIface, log *zap.Logger) FoodRepository {
	return &foodRepository{
		db:  db,
		log: log.With(zap.String("repository", "food")),
	}
}

const foodColumns = `id, name, price, category, diet, ingredients, ratings, created_at, updated_at`

func scanFood(row pgx.Row) (*entity.Food, error) {
	var food entity.Food
	err := row.Scan(
		&food.ID,
		&food.Name,
		&food.Price,
		&food.Category,
		&food.Diet,
		&food.Ingredients,
		&food.Ratings,
		&food.CreatedAt,
		&food.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (fr *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	query := `
		INSERT INTO foods (id, name, price, category, diet, ingredients, ratings,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := fr.db.Exec(ctx, query,
		food.ID,
		food.Name,
		food.Price,
		food.Category,
		food.Diet,
		food.Ingredients,
		food.Ratings,
		food.CreatedAt,
		food.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		fr.log.Error("Failed to create food",
			zap.Error(err),
			zap.String("name", food.Name),
		)
		return fmt.Errorf("create food %s: %w", food.Name, err)
	}

	return nil
}

func (fr *foodRepository) FindByName(ctx context.Context, name string) (*entity.Food, error) {
	query := `SELECT ` + foodColumns + ` FROM foods WHERE name = $1`

	food, err := scanFood(fr.db.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		fr.log.Error("Failed to find food by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find food by name %s: %w", name, err)
	}

	return food, nil
}

func (fr *foodRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Food, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + foodColumns + ` FROM foods WHERE id = ANY($1)`

	rows, err := fr.db.Query(ctx, query, ids)
	if err != nil {
		fr.log.Error("Failed to find foods by IDs", zap.Error(err), zap.Int("count", len(ids)))
		return nil, fmt.Errorf("find foods by IDs: %w", err)
	}
	defer rows.Close()

	return collectFoods(rows)
}

func (fr *foodRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Food, error) {
	query := `SELECT ` + foodColumns + ` FROM foods WHERE category = $1 ORDER BY name`

	rows, err := fr.db.Query(ctx, query, category)
	if err != nil {
		fr.log.Error("Failed to find foods by category",
			zap.Error(err),
			zap.String("category", category),
		)
		return nil, fmt.Errorf("find foods by category %s: %w", category, err)
	}
	defer rows.Close()

	return collectFoods(rows)
}

func (fr *foodRepository) FindAll(ctx context.Context) ([]*entity.Food, error) {
	query := `SELECT ` + foodColumns + ` FROM foods ORDER BY name`

	rows, err := fr.db.Query(ctx, query)
	if err != nil {
		fr.log.Error("Failed to find all foods", zap.Error(err))
		return nil, fmt.Errorf("find all foods: %w", err)
	}
	defer rows.Close()

	return collectFoods(rows)
}

// DistinctCategories is an indexed distinct-value query, replacing the
// full-scan-and-dedup the catalog originally did.
func (fr *foodRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM foods`

	rows, err := fr.db.Query(ctx, query)
	if err != nil {
		fr.log.Error("Failed to list distinct categories", zap.Error(err))
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

func (fr *foodRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM foods`

	var count int64
	err := fr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		fr.log.Error("Failed to count foods", zap.Error(err))
		return 0, fmt.Errorf("count all foods: %w", err)
	}

	return count, nil
}

func (fr *foodRepository) Update(ctx context.Context, food *entity.Food) error {
	query := `
		UPDATE foods
		SET price = $2, category = $3, diet = $4, ingredients = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := fr.db.Exec(ctx, query,
		food.ID,
		food.Price,
		food.Category,
		food.Diet,
		food.Ingredients,
		food.UpdatedAt,
	)

	if err != nil {
		fr.log.Error("Failed to update food",
			zap.Error(err),
			zap.String("name", food.Name),
		)
		return fmt.Errorf("update food %s: %w", food.Name, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("food %s not found", food.Name)
	}

	return nil
}

func (fr *foodRepository) DeleteByName(ctx context.Context, name string) (*entity.Food, error) {
	query := `DELETE FROM foods WHERE name = $1 RETURNING ` + foodColumns

	food, err := scanFood(fr.db.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		fr.log.Error("Failed to delete food",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("delete food %s: %w", name, err)
	}

	fr.log.Info("Food deleted", zap.String("name", name))
	return food, nil
}

// AppendRating appends in a single statement so concurrent raters cannot
// lose each other's update.
func (fr *foodRepository) AppendRating(ctx context.Context, name string, rating int32) (*entity.Food, error) {
	query := `
		UPDATE foods
		SET ratings = array_append(ratings, $2), updated_at = NOW()
		WHERE name = $1
		RETURNING ` + foodColumns

	food, err := scanFood(fr.db.QueryRow(ctx, query, name, rating))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		fr.log.Error("Failed to append rating",
			zap.Error(err),
			zap.String("name", name),
			zap.Int32("rating", rating),
		)
		return nil, fmt.Errorf("append rating to food %s: %w", name, err)
	}

	return food, nil
}

func collectFoods(rows pgx.Rows) ([]*entity.Food, error) {
	var foods []*entity.Food
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food row: %w", err)
		}
		foods = append(foods, food)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food rows: %w", err)
	}
	return foods, nil
}
