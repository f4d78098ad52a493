package usecase

import (
	"context"
	"errors"
	"testing"

	"nalam-grocery/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCartAddsLine(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("alice@example.com", "password123")
	product := env.seedProduct("Basmati Rice", 120, 50)
	svc := NewCartService(env.repo, env.log)

	cart, err := svc.UpdateCart(context.Background(), user.ID, &request.UpdateCartRequest{
		ProductID: product.ID.String(),
		Quantity:  3,
	})

	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, product.ID.String(), cart[0].Product)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestUpdateCartReplacesQuantity(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("alice@example.com", "password123")
	product := env.seedProduct("Basmati Rice", 120, 50)
	svc := NewCartService(env.repo, env.log)
	ctx := context.Background()

	_, err := svc.UpdateCart(ctx, user.ID, &request.UpdateCartRequest{
		ProductID: product.ID.String(),
		Quantity:  3,
	})
	require.NoError(t, err)

	cart, err := svc.UpdateCart(ctx, user.ID, &request.UpdateCartRequest{
		ProductID: product.ID.String(),
		Quantity:  5,
	})
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)
}

func TestUpdateCartZeroQuantityRemovesLine(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("alice@example.com", "password123")
	product := env.seedProduct("Basmati Rice", 120, 50)
	svc := NewCartService(env.repo, env.log)
	ctx := context.Background()

	_, err := svc.UpdateCart(ctx, user.ID, &request.UpdateCartRequest{
		ProductID: product.ID.String(),
		Quantity:  3,
	})
	require.NoError(t, err)

	cart, err := svc.UpdateCart(ctx, user.ID, &request.UpdateCartRequest{
		ProductID: product.ID.String(),
		Quantity:  0,
	})
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestUpdateCartUnknownProduct(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("alice@example.com", "password123")
	svc := NewCartService(env.repo, env.log)

	_, err := svc.UpdateCart(context.Background(), user.ID, &request.UpdateCartRequest{
		ProductID: uuid.NewString(),
		Quantity:  1,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
