package usecase

import (
	"context"
	"fmt"
	"time"

	"restaurant-orders/internal/data/entity"
	"restaurant-orders/internal/data/repository"
	"restaurant-orders/internal/dto/request"
	"restaurant-orders/pkg/token"
	"restaurant-orders/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (string, error)
	CreateUser(ctx context.Context, current *entity.User, req *request.CreateUserRequest) (*entity.User, error)
	EnsureOwner(ctx context.Context, username, password string) error
}

type authService struct {
	users repository.UserRepository
	codec *token.Codec
	log   *zap.Logger
}

func NewAuthService(users repository.UserRepository, codec *token.Codec, log *zap.Logger) AuthService {
	return &authService{
		users: users,
		codec: codec,
		log:   log.With(zap.String("service", "auth")),
	}
}

// Login verifies credentials and issues a session token. An unknown
// username and a wrong password fail identically.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return "", fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return "", fmt.Errorf("login lookup: %w", err)
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(user.Username, user.ID)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("username", user.Username))
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return signed, nil
}

// CreateUser registers a staff account. Only an owner may call it, and
// outranking is not enough: the check is exact.
func (s *authService) CreateUser(ctx context.Context, current *entity.User, req *request.CreateUserRequest) (*entity.User, error) {
	if err := AuthorizeExact(current, entity.RoleOwner); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	role := entity.Role(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role must be between %d and %d", ErrValidation, entity.RoleCustomer, entity.RoleOwner)
	}

	existing, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The pre-check can race with a concurrent create; the store's
		// unique constraint is the source of truth.
		if err == repository.ErrDuplicate {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", user.Role.String()),
	)

	return user, nil
}

// EnsureOwner seeds the first owner account when the user store is
// empty. createUser is owner-gated, so a fresh deployment has no way to
// mint its first account otherwise.
func (s *authService) EnsureOwner(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	count, err := s.users.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	now := time.Now()
	owner := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		PasswordHash: hash,
		Role:         entity.RoleOwner,
	}

	if err := s.users.Create(ctx, owner); err != nil {
		return fmt.Errorf("create bootstrap owner: %w", err)
	}

	s.log.Info("Bootstrap owner created", zap.String("username", username))
	return nil
}
