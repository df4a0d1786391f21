package usecase

import (
	"restaurant-orders/internal/data/repository"
	"restaurant-orders/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Order   OrderService
}

func NewService(repo *repository.Repository, codec *token.Codec, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, codec, log),
		Catalog: NewCatalogService(repo.Food, log),
		Order:   NewOrderService(repo.Order, repo.Food, log),
	}
}
