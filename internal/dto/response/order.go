package response

import "time"

type OrderResponse struct {
	ID         string    `json:"_id"`
	Product    string    `json:"product"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	OrderedAt  time.Time `json:"orderedAt"`
}

type UpdateOrderResponse struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}
