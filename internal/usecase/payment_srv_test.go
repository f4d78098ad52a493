package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"nalam-grocery/internal/data/entity"
	"nalam-grocery/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatewaySign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreatePaymentOrderConvertsToPaise(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("alice@example.com", "password123")
	env.gateway.nextID = "order_abc123"
	svc := NewPaymentService(env.repo, env.config, env.log, env.gateway)

	resp, err := svc.CreateOrder(context.Background(), user.ID, &request.CreatePaymentOrderRequest{
		Amount: 499.99,
	})
	require.NoError(t, err)

	assert.Equal(t, "order_abc123", resp.OrderID)
	assert.Equal(t, int64(49999), resp.Amount)
	assert.Equal(t, "INR", resp.Currency)
	assert.Equal(t, env.config.Razorpay.KeyID, resp.KeyID)

	record, err := env.payment.FindByGatewayOrderID(context.Background(), "order_abc123")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, user.ID, record.UserID)
	assert.Equal(t, entity.PaymentCreated, record.Status)
}

func TestVerifyPaymentPlacesOrders(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("alice@example.com", "password123")
	product := env.seedProduct("Basmati Rice", 120, 10)
	env.gateway.nextID = "order_abc123"
	svc := NewPaymentService(env.repo, env.config, env.log, env.gateway)
	cartSvc := NewCartService(env.repo, env.log)
	ctx := context.Background()

	_, err := cartSvc.UpdateCart(ctx, user.ID, &request.UpdateCartRequest{
		ProductID: product.ID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)

	_, err = svc.CreateOrder(ctx, user.ID, &request.CreatePaymentOrderRequest{Amount: 240})
	require.NoError(t, err)

	resp, err := svc.Verify(ctx, user.ID, &request.VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc123",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: gatewaySign("order_abc123", "pay_xyz", env.config.Razorpay.KeySecret),
		Orders: []request.OrderLinePayload{
			{ProductID: product.ID.String(), Quantity: 2, TotalPrice: 240},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "Pending", resp.Orders[0].Status)

	// Stock decremented and the bought line cleared from the cart.
	stored, _ := env.product.FindByID(ctx, product.ID)
	assert.Equal(t, 8, stored.StockLeft)

	cart, _ := env.cart.ListByUser(ctx, user.ID)
	assert.Empty(t, cart)
}

func TestVerifyPaymentBadSignature(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("alice@example.com", "password123")
	product := env.seedProduct("Basmati Rice", 120, 10)
	svc := NewPaymentService(env.repo, env.config, env.log, env.gateway)

	_, err := svc.Verify(context.Background(), user.ID, &request.VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc123",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: "forged",
		Orders: []request.OrderLinePayload{
			{ProductID: product.ID.String(), Quantity: 1, TotalPrice: 120},
		},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPaymentSignature))
}

func TestVerifyPaymentReplayRejected(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("alice@example.com", "password123")
	product := env.seedProduct("Basmati Rice", 120, 10)
	env.gateway.nextID = "order_abc123"
	svc := NewPaymentService(env.repo, env.config, env.log, env.gateway)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, user.ID, &request.CreatePaymentOrderRequest{Amount: 120})
	require.NoError(t, err)

	req := &request.VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc123",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: gatewaySign("order_abc123", "pay_xyz", env.config.Razorpay.KeySecret),
		Orders: []request.OrderLinePayload{
			{ProductID: product.ID.String(), Quantity: 1, TotalPrice: 120},
		},
	}

	_, err = svc.Verify(ctx, user.ID, req)
	require.NoError(t, err)

	_, err = svc.Verify(ctx, user.ID, req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	// The replay must not place a second batch of orders.
	orders, _ := env.order.ListByUser(ctx, user.ID)
	assert.Len(t, orders, 1)
}

func TestVerifyPaymentForeignOrderForbidden(t *testing.T) {
	env := newTestEnv()
	alice := env.seedUser("alice@example.com", "password123")
	mallory := env.seedUser("mallory@example.com", "password123")
	product := env.seedProduct("Basmati Rice", 120, 10)
	env.gateway.nextID = "order_abc123"
	svc := NewPaymentService(env.repo, env.config, env.log, env.gateway)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, alice.ID, &request.CreatePaymentOrderRequest{Amount: 120})
	require.NoError(t, err)

	_, err = svc.Verify(ctx, mallory.ID, &request.VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc123",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: gatewaySign("order_abc123", "pay_xyz", env.config.Razorpay.KeySecret),
		Orders: []request.OrderLinePayload{
			{ProductID: product.ID.String(), Quantity: 1, TotalPrice: 120},
		},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestVerifyPaymentInsufficientStock(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("alice@example.com", "password123")
	product := env.seedProduct("Basmati Rice", 120, 1)
	env.gateway.nextID = "order_abc123"
	svc := NewPaymentService(env.repo, env.config, env.log, env.gateway)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, user.ID, &request.CreatePaymentOrderRequest{Amount: 240})
	require.NoError(t, err)

	_, err = svc.Verify(ctx, user.ID, &request.VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc123",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: gatewaySign("order_abc123", "pay_xyz", env.config.Razorpay.KeySecret),
		Orders: []request.OrderLinePayload{
			{ProductID: product.ID.String(), Quantity: 2, TotalPrice: 240},
		},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}
