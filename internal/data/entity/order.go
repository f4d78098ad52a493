package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

type Order struct {
	ID         uuid.UUID   `db:"id"`
	UserID     uuid.UUID   `db:"user_id"`
	ProductID  uuid.UUID   `db:"product_id"`
	Quantity   int         `db:"quantity"`
	TotalPrice float64     `db:"total_price"`
	Status     OrderStatus `db:"status"`
	OrderedAt  time.Time   `db:"ordered_at"`
}
