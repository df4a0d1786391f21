package adaptor

import (
	"context"

	"restaurant-orders/internal/dto/request"
	"restaurant-orders/pkg/utils"
)

type createUserArgs struct {
	Username string
	Password string
	Role     int32
}

func (r *Resolver) CreateUser(ctx context.Context, args createUserArgs) (*userResolver, error) {
	current, _ := utils.CurrentUser(ctx)

	req := &request.CreateUserRequest{
		Username: args.Username,
		Password: args.Password,
		Role:     args.Role,
	}

	user, err := r.service.Auth.CreateUser(ctx, current, req)
	if err != nil {
		return nil, mapError(r.log, err)
	}
	return &userResolver{user: user}, nil
}

type loginArgs struct {
	Username string
	Password string
}

func (r *Resolver) Login(ctx context.Context, args loginArgs) (*tokenResolver, error) {
	req := &request.LoginRequest{
		Username: args.Username,
		Password: args.Password,
	}

	value, err := r.service.Auth.Login(ctx, req)
	if err != nil {
		return nil, mapError(r.log, err)
	}
	return &tokenResolver{value: value}, nil
}
