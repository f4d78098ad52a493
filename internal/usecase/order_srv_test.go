package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"nalam-grocery/internal/data/entity"
	"nalam-grocery/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(env *testEnv, userID, productID uuid.UUID) *entity.Order {
	order := &entity.Order{
		ID:         uuid.New(),
		UserID:     userID,
		ProductID:  productID,
		Quantity:   1,
		TotalPrice: 120,
		Status:     entity.OrderPending,
		OrderedAt:  time.Now(),
	}
	env.order.CreateBatch(context.Background(), []*entity.Order{order})
	return order
}

func TestUpdateOrderOwnOrder(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("alice@example.com", "password123")
	product := env.seedProduct("Basmati Rice", 120, 10)
	order := seedOrder(env, user.ID, product.ID)
	svc := NewOrderService(env.repo, env.log)

	resp, err := svc.UpdateOrder(context.Background(), user.ID, order.ID, &request.UpdateOrderRequest{
		Status: "Cancelled",
	})

	require.NoError(t, err)
	assert.Equal(t, "Cancelled", resp.Status)
}

func TestUpdateOrderForeignOrderForbidden(t *testing.T) {
	env := newTestEnv()
	alice := env.seedUser("alice@example.com", "password123")
	mallory := env.seedUser("mallory@example.com", "password123")
	product := env.seedProduct("Basmati Rice", 120, 10)
	order := seedOrder(env, alice.ID, product.ID)
	svc := NewOrderService(env.repo, env.log)

	_, err := svc.UpdateOrder(context.Background(), mallory.ID, order.ID, &request.UpdateOrderRequest{
		Status: "Cancelled",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestUpdateOrderInvalidStatus(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("alice@example.com", "password123")
	product := env.seedProduct("Basmati Rice", 120, 10)
	order := seedOrder(env, user.ID, product.ID)
	svc := NewOrderService(env.repo, env.log)

	_, err := svc.UpdateOrder(context.Background(), user.ID, order.ID, &request.UpdateOrderRequest{
		Status: "Teleported",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestAdminListOrdersFiltersByStatus(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("alice@example.com", "password123")
	product := env.seedProduct("Basmati Rice", 120, 10)
	pending := seedOrder(env, user.ID, product.ID)
	shipped := seedOrder(env, user.ID, product.ID)
	env.order.UpdateStatus(context.Background(), shipped.ID, entity.OrderShipped)
	svc := NewOrderService(env.repo, env.log)
	ctx := context.Background()

	all, err := svc.AdminListOrders(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyPending, err := svc.AdminListOrders(ctx, "Pending")
	require.NoError(t, err)
	require.Len(t, onlyPending, 1)
	assert.Equal(t, pending.ID.String(), onlyPending[0].ID)

	_, err = svc.AdminListOrders(ctx, "Bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestAdminUpdateOrderUnknownOrder(t *testing.T) {
	env := newTestEnv()
	svc := NewOrderService(env.repo, env.log)

	_, err := svc.AdminUpdateOrder(context.Background(), uuid.New(), &request.UpdateOrderRequest{
		Status: "Shipped",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
