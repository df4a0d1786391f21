package adaptor

import (
	"context"

	"restaurant-orders/internal/dto/request"

	graphql "github.com/graph-gophers/graphql-go"
)

type createOrderArgs struct {
	Orderer string
	PhoneNr string
	Items   []string
}

func (r *Resolver) CreateOrder(ctx context.Context, args createOrderArgs) (*orderResolver, error) {
	req := &request.CreateOrderRequest{
		Orderer: args.Orderer,
		PhoneNr: args.PhoneNr,
		Items:   args.Items,
	}

	order, err := r.service.Order.Create(ctx, req)
	if err != nil {
		return nil, mapError(r.log, err)
	}
	return &orderResolver{order: order, catalog: r.service.Catalog}, nil
}

type removeOrderArgs struct {
	ID graphql.ID
}

func (r *Resolver) RemoveOrder(ctx context.Context, args removeOrderArgs) (*orderResolver, error) {
	order, err := r.service.Order.Remove(ctx, string(args.ID))
	if err != nil {
		return nil, mapError(r.log, err)
	}
	if order == nil {
		return nil, nil
	}
	return &orderResolver{order: order, catalog: r.service.Catalog}, nil
}
