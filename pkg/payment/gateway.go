package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// Order is a payment order created at the gateway, awaiting capture.
type Order struct {
	ID       string
	Amount   int64 // smallest currency unit (paise)
	Currency string
}

// Gateway creates payment orders at an external provider.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error)
}

type razorpayGateway struct {
	client *razorpay.Client
	log    *zap.Logger
}

func NewRazorpayGateway(keyID, keySecret string, log *zap.Logger) Gateway {
	return &razorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		log:    log.With(zap.String("gateway", "razorpay")),
	}
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		g.log.Error("Failed to create gateway order",
			zap.Error(err),
			zap.Int64("amount", amount),
			zap.String("receipt", receipt),
		)
		return nil, fmt.Errorf("create gateway order: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return nil, fmt.Errorf("gateway order response missing id")
	}

	return &Order{
		ID:       orderID,
		Amount:   amount,
		Currency: currency,
	}, nil
}

// VerifySignature checks the gateway's HMAC-SHA256 over "orderID|paymentID"
// in constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
