package usecase

import (
	"context"
	"testing"

	"restaurant-orders/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOrderFixture(t *testing.T) (*fakeOrderRepo, *fakeFoodRepo, OrderService) {
	t.Helper()
	orders := newFakeOrderRepo()
	foods := newFakeFoodRepo()
	return orders, foods, NewOrderService(orders, foods, zap.NewNop())
}

func TestCreateOrderResolvesItemsByName(t *testing.T) {
	_, foods, service := newOrderFixture(t)
	soup := seedFood(t, foods, "Soup", "starter", 4.5)
	steak := seedFood(t, foods, "Steak", "main", 18.0)

	order, err := service.Create(context.Background(), &request.CreateOrderRequest{
		Orderer: "alice",
		PhoneNr: "555-0101",
		Items:   []string{"Soup", "Steak", "Soup"},
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", order.Orderer)
	assert.Equal(t, "555-0101", order.PhoneNr)
	// Duplicates stay duplicated; the order references what was asked for.
	assert.Equal(t, []uuid.UUID{soup.ID, steak.ID, soup.ID}, order.Items)
}

func TestCreateOrderDropsUnresolvableItems(t *testing.T) {
	orders, foods, service := newOrderFixture(t)
	soup := seedFood(t, foods, "Soup", "starter", 4.5)

	order, err := service.Create(context.Background(), &request.CreateOrderRequest{
		Orderer: "alice",
		PhoneNr: "555-0101",
		Items:   []string{"Soup", "ghost-item"},
	})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{soup.ID}, order.Items)

	stored, err := orders.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, order.ID, stored[0].ID)
}

func TestCreateOrderWithNoResolvableItems(t *testing.T) {
	_, _, service := newOrderFixture(t)

	order, err := service.Create(context.Background(), &request.CreateOrderRequest{
		Orderer: "alice",
		PhoneNr: "555-0101",
		Items:   []string{"ghost-item"},
	})
	require.NoError(t, err)

	assert.NotNil(t, order.Items)
	assert.Empty(t, order.Items)
}

func TestCreateOrderRejectsMissingFields(t *testing.T) {
	_, _, service := newOrderFixture(t)

	tests := []struct {
		name string
		req  *request.CreateOrderRequest
	}{
		{name: "no orderer", req: &request.CreateOrderRequest{PhoneNr: "555-0101", Items: []string{"Soup"}}},
		{name: "no phone number", req: &request.CreateOrderRequest{Orderer: "alice", Items: []string{"Soup"}}},
		{name: "no items", req: &request.CreateOrderRequest{Orderer: "alice", PhoneNr: "555-0101"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), testCase.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRemoveOrder(t *testing.T) {
	t.Run("removes and returns the order", func(t *testing.T) {
		orders, foods, service := newOrderFixture(t)
		seedFood(t, foods, "Soup", "starter", 4.5)

		order, err := service.Create(context.Background(), &request.CreateOrderRequest{
			Orderer: "alice",
			PhoneNr: "555-0101",
			Items:   []string{"Soup"},
		})
		require.NoError(t, err)

		removed, err := service.Remove(context.Background(), order.ID.String())
		require.NoError(t, err)
		require.NotNil(t, removed)
		assert.Equal(t, order.ID, removed.ID)

		remaining, err := orders.FindAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("unknown id resolves to nil", func(t *testing.T) {
		_, _, service := newOrderFixture(t)

		removed, err := service.Remove(context.Background(), uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, removed)
	})

	t.Run("unparsable id resolves to nil", func(t *testing.T) {
		_, _, service := newOrderFixture(t)

		removed, err := service.Remove(context.Background(), "not-a-uuid")
		require.NoError(t, err)
		assert.Nil(t, removed)
	})
}
