package entity

import "github.com/google/uuid"

type PaymentOrderStatus string

const (
	PaymentCreated PaymentOrderStatus = "created"
	PaymentPaid    PaymentOrderStatus = "paid"
)

// PaymentOrder tracks a gateway order from creation until its signature is
// verified and the purchase is placed.
type PaymentOrder struct {
	BaseSimple
	UserID         uuid.UUID          `db:"user_id"`
	GatewayOrderID string             `db:"gateway_order_id"`
	Amount         int64              `db:"amount"` // paise
	Currency       string             `db:"currency"`
	Receipt        string             `db:"receipt"`
	Status         PaymentOrderStatus `db:"status"`
}
